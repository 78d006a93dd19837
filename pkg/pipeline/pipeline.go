// Package pipeline implements the image transformation pipeline that
// turns a photograph into a framed, magnet-sized print: crop fixed
// margins, scale to fit the frame canvas, pad to the canvas size,
// composite the frame artwork on top and optionally rotate the result
// to landscape. Each stage takes the previous stage's output and
// returns a new image; nothing is mutated in place except the final
// flatten.
package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Stage identifies an intermediate pipeline result. The numeric value
// is the ordinal used in debug snapshot filenames.
type Stage int

const (
	StageOriginal Stage = iota
	StageCropped
	StageScaled
	StagePadded
)

func (s Stage) String() string {
	switch s {
	case StageOriginal:
		return "original"
	case StageCropped:
		return "cropped"
	case StageScaled:
		return "scaled"
	case StagePadded:
		return "padded"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Pad fill colors. The debug fill is deliberately conspicuous so that
// padding is visible when auditing intermediate snapshots.
var (
	DefaultFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	DebugFill   = color.NRGBA{R: 255, A: 255}
)

// Options control a single Process run.
type Options struct {
	// Fill is the padding color. Nil means DefaultFill.
	Fill color.Color

	// Rotate rotates the final composite 90 degrees. Set when the
	// source was portrait and output should be normalized to landscape.
	Rotate bool

	// Snapshot, when non-nil, receives the original image and each
	// intermediate result before the frame is composited. An error
	// aborts processing.
	Snapshot func(Stage, image.Image) error
}

// Crop removes the given margins from each edge of the image. Margins
// that leave no image area are rejected.
func Crop(img image.Image, m Margins) (image.Image, error) {
	bounds := img.Bounds()
	width := bounds.Dx() - m.Left - m.Right
	height := bounds.Dy() - m.Top - m.Bottom
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("crop margins {%d %d %d %d} leave no image area for %dx%d source",
			m.Left, m.Top, m.Right, m.Bottom, bounds.Dx(), bounds.Dy())
	}
	rect := image.Rect(m.Left, m.Top, bounds.Dx()-m.Right, bounds.Dy()-m.Bottom)
	return imaging.Crop(img, rect), nil
}

// Scale resizes the image so it fits entirely inside the frame's
// bounding box, preserving the aspect ratio exactly. The multiplier is
// applied on top of the best-fit ratio to allow deliberate over- or
// under-fill. New dimensions are floor(original * factor).
func Scale(img, frame image.Image, multiplier float64) image.Image {
	ib, fb := img.Bounds(), frame.Bounds()
	factor := multiplier * math.Min(
		float64(fb.Dx())/float64(ib.Dx()),
		float64(fb.Dy())/float64(ib.Dy()),
	)
	width := int(float64(ib.Dx()) * factor)
	height := int(float64(ib.Dy()) * factor)
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Pad centers the image on an opaque canvas of exactly the frame's
// dimensions, filled with the given color. Leading paddings are
// floor((frame-image)/2); odd remainders land on the trailing edges so
// the canvas is always exactly frame-sized.
func Pad(img, frame image.Image, fill color.Color) image.Image {
	ib, fb := img.Bounds(), frame.Bounds()
	canvas := imaging.New(fb.Dx(), fb.Dy(), fill)
	left := (fb.Dx() - ib.Dx()) / 2
	top := (fb.Dy() - ib.Dy()) / 2
	return imaging.Paste(canvas, img, image.Pt(left, top))
}

// Composite overlays the frame artwork on the padded canvas, centered,
// blending with the frame's own alpha channel. The result is flattened
// to a fully opaque image. In the normal case the frame and canvas
// share dimensions and the offset is (0,0).
func Composite(canvas, frame image.Image) image.Image {
	cb, fb := canvas.Bounds(), frame.Bounds()
	x := (cb.Dx() - fb.Dx()) / 2
	y := (cb.Dy() - fb.Dy()) / 2
	out := imaging.Overlay(canvas, frame, image.Pt(x, y), 1.0)
	return flatten(out)
}

// Rotate90 rotates the image 90 degrees counter-clockwise, expanding
// the canvas to fit. The direction is fixed.
func Rotate90(img image.Image) image.Image {
	return imaging.Rotate90(img)
}

// Process runs the full pipeline in fixed order: crop, scale, pad,
// composite, optional rotate. The frame must already be loaded; Params
// supplies the crop margins and scale factor resolved for the source
// orientation.
func Process(src, frame image.Image, p Params, opts Options) (image.Image, error) {
	fill := opts.Fill
	if fill == nil {
		fill = DefaultFill
	}

	if err := snapshot(opts, StageOriginal, src); err != nil {
		return nil, err
	}

	cropped, err := Crop(src, p.Crop)
	if err != nil {
		return nil, err
	}
	if err := snapshot(opts, StageCropped, cropped); err != nil {
		return nil, err
	}

	scaled := Scale(cropped, frame, p.ScaleFactor)
	if err := snapshot(opts, StageScaled, scaled); err != nil {
		return nil, err
	}

	padded := Pad(scaled, frame, fill)
	if err := snapshot(opts, StagePadded, padded); err != nil {
		return nil, err
	}

	framed := Composite(padded, frame)
	if opts.Rotate {
		framed = Rotate90(framed)
	}
	return framed, nil
}

func snapshot(opts Options, stage Stage, img image.Image) error {
	if opts.Snapshot == nil {
		return nil
	}
	if err := opts.Snapshot(stage, img); err != nil {
		return fmt.Errorf("snapshot %s: %w", stage, err)
	}
	return nil
}

// flatten forces every pixel fully opaque. The canvas under the frame
// is already opaque, so this only discards residual transparency from
// the overlay.
func flatten(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
