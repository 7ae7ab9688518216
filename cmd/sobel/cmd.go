package main

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/disintegration/imaging"

	gradient "github.com/ironsheep/sobel-edge-mcp/internal/imaging"
	"github.com/ironsheep/sobel-edge-mcp/internal/sobel"
)

type InputParams struct {
	In       string `help:"Source image" required:"" type:"existingfile"`
	Channel  int    `help:"Samples per pixel in the buffer handed to the Sobel pass (1-4)" default:"1"`
	Parallel bool   `help:"Split the Sobel pass across goroutines, one band of rows each" env:"SOBEL_PARALLEL"`
}

func (p *InputParams) validate() error {
	in, err := filepath.Abs(p.In)
	if err != nil {
		return fmt.Errorf("invalid input path %q: %w", p.In, err)
	}
	p.In = in

	if p.Channel < 1 || p.Channel > 4 {
		return fmt.Errorf("invalid channel: %d", p.Channel)
	}
	return nil
}

// compute loads the input image and runs the Sobel pass over it.
func (p *InputParams) compute() (sobel.Result, *gradient.RawImage, error) {
	img, err := imaging.Open(p.In, imaging.AutoOrientation(true))
	if err != nil {
		return sobel.Result{}, nil, fmt.Errorf("could not open image %q: %w", p.In, err)
	}

	logger := slog.Default().With("file", p.In)
	svc := sobel.New(
		sobel.WithWarner(sobel.WarnFunc(func(msg string) {
			logger.Warn("sobel rejected input", "reason", msg)
		})),
		sobel.WithParallel(p.Parallel),
	)

	res, raw, err := gradient.Gradient(img, gradient.EdgeOptions{Channels: p.Channel, Service: svc})
	if err != nil {
		return sobel.Result{}, nil, err
	}
	logger.Debug("gradient computed", "width", raw.Width, "height", raw.Height, "channel", raw.Channels)
	return res, raw, nil
}

type OutputParams struct {
	Out string `help:"Destination image. Format follows the extension (png, jpg, gif, tif, bmp)" required:""`
}

func (p *OutputParams) validate() error {
	out, err := filepath.Abs(p.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", p.Out, err)
	}
	if _, err := imaging.FormatFromFilename(out); err != nil {
		return fmt.Errorf("invalid output path %q: %w", p.Out, err)
	}
	p.Out = out
	return nil
}

func (p *OutputParams) save(img image.Image) error {
	if err := imaging.Save(img, p.Out); err != nil {
		return fmt.Errorf("could not save image %q: %w", p.Out, err)
	}
	slog.Info("saved", "file", p.Out)
	return nil
}

type ApplyCmd struct {
	InputParams
	OutputParams
	Thetas string `help:"Also write the per-pixel {x, y, theta} records to this JSON file"`
}

func (c *ApplyCmd) Validate(kctx *kong.Context) error {
	if err := c.InputParams.validate(); err != nil {
		return err
	}
	if err := c.OutputParams.validate(); err != nil {
		return err
	}
	if c.Thetas != "" {
		thetas, err := filepath.Abs(c.Thetas)
		if err != nil {
			return fmt.Errorf("invalid thetas path %q: %w", c.Thetas, err)
		}
		c.Thetas = thetas
	}
	return nil
}

func (c *ApplyCmd) Run() error {
	res, raw, err := c.compute()
	if err != nil {
		return err
	}

	img, err := gradient.FromRGBA(res.ImageData, raw.Width, raw.Height)
	if err != nil {
		return err
	}
	if err := c.save(img); err != nil {
		return err
	}

	if c.Thetas == "" {
		return nil
	}
	return writeThetas(c.Thetas, res.Thetas)
}

func writeThetas(path string, thetas []sobel.ThetaMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create thetas file %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close thetas file %q: %w", path, closeErr)
		}
	}()

	if err := json.NewEncoder(f).Encode(thetas); err != nil {
		return fmt.Errorf("could not write thetas file %q: %w", path, err)
	}
	slog.Info("saved", "file", path, "records", len(thetas))
	return nil
}

type DirectionCmd struct {
	InputParams
	OutputParams
}

func (c *DirectionCmd) Validate(kctx *kong.Context) error {
	if err := c.InputParams.validate(); err != nil {
		return err
	}
	return c.OutputParams.validate()
}

func (c *DirectionCmd) Run() error {
	res, raw, err := c.compute()
	if err != nil {
		return err
	}

	img, err := gradient.DirectionMap(res, raw.Width, raw.Height)
	if err != nil {
		return err
	}
	return c.save(img)
}

type StatsCmd struct {
	InputParams
	Threshold int       `help:"Magnitude at or above which a pixel counts as an edge (0-255)" default:"128"`
	Output    io.Writer `kong:"-"`
}

func (c *StatsCmd) Validate(kctx *kong.Context) error {
	if err := c.InputParams.validate(); err != nil {
		return err
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("invalid threshold: %d", c.Threshold)
	}
	return nil
}

func (c *StatsCmd) Run() error {
	res, raw, err := c.compute()
	if err != nil {
		return err
	}

	stats, err := gradient.GradientStats(res, raw.Width, raw.Height, c.Threshold)
	if err != nil {
		return err
	}

	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
