package pipeline

import "errors"

// ErrSquareImage is returned when an image cannot be classified as
// landscape or portrait. There is no parameter set for square sources,
// so processing cannot proceed.
var ErrSquareImage = errors.New("cannot process square image")

// Margins are the pixels removed from each edge of the source image
// before scaling. All values must be non-negative and must leave a
// positive image area.
type Margins struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Params is the parameter set tuned for one source orientation. A fresh
// Params value is resolved for every image and threaded through the
// pipeline call chain; nothing is shared between images.
type Params struct {
	FramePath   string
	Crop        Margins
	ScaleFactor float64
}

// ResolveParams selects the parameter set matching the source
// orientation. Square orientation has no variant and yields
// ErrSquareImage.
func ResolveParams(o Orientation, landscape, portrait Params) (Params, error) {
	switch o {
	case Landscape:
		return landscape, nil
	case Portrait:
		return portrait, nil
	default:
		return Params{}, ErrSquareImage
	}
}
