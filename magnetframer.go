// Package magnetframer prepares photographs for printing on framed
// magnets.
//
// Each source image is cropped by fixed margins, scaled to fit inside a
// decorative frame, padded to the frame's canvas size, composited under
// the frame artwork and optionally rotated to landscape. The frame,
// crop margins and scale factor are selected by the orientation of the
// source photo.
//
// Basic usage:
//
//	settings, err := config.Load("config.json", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	framer := magnetframer.New(settings, logger)
//	if err := framer.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Run processes every JPEG in the input directory strictly one at a
// time and writes `<name>_framed.jpg` files to the output directory. In
// debug mode every intermediate pipeline stage is written alongside the
// final image for visual auditing.
package magnetframer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/meni-adin/magnet-framer/internal/config"
	"github.com/meni-adin/magnet-framer/internal/utils"
	"github.com/meni-adin/magnet-framer/pkg/imageio"
	"github.com/meni-adin/magnet-framer/pkg/pipeline"
)

// Version of the magnet framer
const Version = "1.0.0"

const finalPostfix = "_framed"

// Framer runs the framing pipeline over a directory of photographs.
type Framer struct {
	settings *config.Settings
	log      *zap.SugaredLogger
}

// New creates a Framer. The settings must already be validated.
func New(settings *config.Settings, logger *zap.Logger) *Framer {
	return &Framer{
		settings: settings,
		log:      logger.Sugar(),
	}
}

// Run processes every JPEG in the input directory, strictly one file at
// a time. Entries with any other extension are skipped silently. The
// first failure aborts the whole batch.
func (f *Framer) Run() error {
	entries, err := os.ReadDir(f.settings.InputPath)
	if err != nil {
		return fmt.Errorf("reading input directory %s: %w", f.settings.InputPath, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !utils.IsJPEG(entry.Name()) {
			continue
		}
		if err := f.ProcessFile(entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

// ProcessFile runs the full pipeline for one file from the input
// directory: load, classify, resolve parameters, transform, save.
func (f *Framer) ProcessFile(filename string) error {
	srcPath := filepath.Join(f.settings.InputPath, filename)
	f.log.Infof("file %s status: processing...", srcPath)

	src, err := imageio.Load(srcPath)
	if err != nil {
		return fmt.Errorf("loading image %s: %w", srcPath, err)
	}
	orientation := pipeline.Classify(src)
	f.log.Debugf("image size: %dx%d", src.Bounds().Dx(), src.Bounds().Dy())
	f.log.Debugf("image orientation: %s", orientation)

	params, err := pipeline.ResolveParams(orientation,
		toParams(f.settings.Landscape), toParams(f.settings.Portrait))
	if err != nil {
		return fmt.Errorf("classifying %s: %w", srcPath, err)
	}

	frame, err := imageio.Load(params.FramePath)
	if err != nil {
		return fmt.Errorf("loading frame %s: %w", params.FramePath, err)
	}
	f.log.Debugf("frame size: %dx%d", frame.Bounds().Dx(), frame.Bounds().Dy())
	f.log.Debugf("frame orientation: %s", pipeline.Classify(frame))

	opts := pipeline.Options{
		Fill:   pipeline.DefaultFill,
		Rotate: f.settings.RotateToLandscape && orientation == pipeline.Portrait,
	}
	if f.settings.Debug {
		opts.Fill = pipeline.DebugFill
		opts.Snapshot = func(stage pipeline.Stage, img image.Image) error {
			f.log.Debugf("stage %s size: %dx%d", stage, img.Bounds().Dx(), img.Bounds().Dy())
			return f.save(img, filename, fmt.Sprintf("_%d_%s", int(stage), stage))
		}
	}

	final, err := pipeline.Process(src, frame, params, opts)
	if err != nil {
		return fmt.Errorf("processing %s: %w", srcPath, err)
	}

	postfix := finalPostfix
	if f.settings.Debug {
		// Debug output keeps the stage ordering: the final image follows
		// the four intermediate snapshots.
		postfix = fmt.Sprintf("_%d%s", int(pipeline.StagePadded)+1, finalPostfix)
	}
	if err := f.save(final, filename, postfix); err != nil {
		return err
	}

	f.log.Infof("file %s status: done", srcPath)
	return nil
}

func (f *Framer) save(img image.Image, filename, postfix string) error {
	out := utils.OutputFilename(f.settings.OutputPath, filename, postfix)
	f.log.Debugf("writing %s", out)
	if err := imageio.Save(img, out, f.settings.JPEGQuality); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	return nil
}

// toParams converts configured orientation settings into the pipeline
// parameter set.
func toParams(s config.OrientationSettings) pipeline.Params {
	return pipeline.Params{
		FramePath: s.FramePath,
		Crop: pipeline.Margins{
			Left:   s.Crop.Left,
			Top:    s.Crop.Top,
			Right:  s.Crop.Right,
			Bottom: s.Crop.Bottom,
		},
		ScaleFactor: s.ScaleFactor,
	}
}
