package pipeline

import "image"

// Orientation classifies a photograph by comparing its width to its height.
type Orientation int

// Supported orientations. Square images have no tuned parameter set and
// cannot be processed.
const (
	Landscape Orientation = iota
	Portrait
	Square
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "square"
	}
}

// Classify returns the orientation of an image: Landscape when the width
// is strictly greater than the height, Portrait when strictly less,
// Square when equal.
func Classify(img image.Image) Orientation {
	bounds := img.Bounds()
	switch {
	case bounds.Dx() > bounds.Dy():
		return Landscape
	case bounds.Dx() < bounds.Dy():
		return Portrait
	default:
		return Square
	}
}
