// Package main renders a distortion profile's smoothed curves and radial
// maps to PNG files, for checking authored control points before loading
// them into the driver.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gregtakacs/distortion"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	outDir := flag.String("o", "plots", "output directory for PNG files")
	inner := flag.Int("inner", 20, "smoothing samples inserted between control points")
	resolution := flag.Float64("res", 2160, "panel resolution in pixels per dimension")
	verbose := flag.Bool("v", false, "log initialization diagnostics")
	flag.Parse()

	if *verbose {
		distortion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if err := run(*outDir, *inner, *resolution); err != nil {
		fmt.Fprintf(os.Stderr, "distortion-plot: %v\n", err)
		os.Exit(1)
	}
}

// demoProfile is a plausible wide-FOV profile with mild chromatic offsets,
// used until the tool grows a profile-file loader.
func demoProfile(inner int, resolution float64) *distortion.Profile {
	return &distortion.Profile{
		Name:        "demo",
		Description: "built-in demonstration profile",
		Distortions: distortion.Curve{
			distortion.DP(0, 0),
			distortion.DP(10, 26),
			distortion.DP(20, 50),
			distortion.DP(30, 71),
			distortion.DP(40, 88),
			distortion.DP(48, 100),
		},
		DistortionsRed: distortion.Curve{
			distortion.DP(0, 0.4),
			distortion.DP(48, 1.1),
		},
		DistortionsBlue: distortion.Curve{
			distortion.DP(0, -0.3),
			distortion.DP(48, -0.9),
		},
		InnerPoints: inner,
		Resolution:  resolution,
	}
}

func run(outDir string, inner int, resolution float64) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := demoProfile(inner, resolution)
	p.Initialize()
	defer p.Cleanup()

	if err := plotCurves(p, filepath.Join(outDir, "curves.png")); err != nil {
		return fmt.Errorf("plot curves: %w", err)
	}
	if err := plotRadialMaps(p, filepath.Join(outDir, "radial_maps.png")); err != nil {
		return fmt.Errorf("plot radial maps: %w", err)
	}
	if err := plotPPD(p, resolution, filepath.Join(outDir, "ppd.png")); err != nil {
		return fmt.Errorf("plot pixels per degree: %w", err)
	}
	return nil
}

// plotCurves draws the smoothed per-channel curves in authoring space:
// degrees against output displacement.
func plotCurves(p *distortion.Profile, file string) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s — distortion curves", p.Name)
	pl.X.Label.Text = "Angle (°)"
	pl.Y.Label.Text = "Output position (% of panel radius)"

	smoothed := distortion.Smooth(p.Distortions, p.InnerPoints)
	channels := []struct {
		name    string
		offsets distortion.Curve
	}{
		{"red", distortion.Smooth(p.DistortionsRed, p.InnerPoints)},
		{"green", nil},
		{"blue", distortion.Smooth(p.DistortionsBlue, p.InnerPoints)},
	}
	var lines []any
	for _, ch := range channels {
		pts := make(plotter.XYs, len(smoothed))
		for i, s := range smoothed {
			pos := s.Position
			if len(ch.offsets) >= 2 {
				pos *= distortion.Sample(ch.offsets, s.Degree)/100.0 + 1.0
			}
			pts[i] = plotter.XY{X: s.Degree, Y: pos}
		}
		lines = append(lines, ch.name, pts)
	}
	if err := plotutil.AddLinePoints(pl, lines...); err != nil {
		return err
	}
	return pl.Save(8*vg.Inch, 6*vg.Inch, file)
}

// plotRadialMaps draws the inverted lookup tables: normalized output radius
// against the input radius each channel samples from.
func plotRadialMaps(p *distortion.Profile, file string) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s — radial maps", p.Name)
	pl.X.Label.Text = "Output radius (normalized)"
	pl.Y.Label.Text = "Input radius (normalized)"

	const samples = 512
	radii := make([]float64, samples)
	floats.Span(radii, 0, 0.999)

	var lines []any
	for _, ch := range []distortion.ColorChannel{
		distortion.ChannelRed, distortion.ChannelGreen, distortion.ChannelBlue,
	} {
		pts := make(plotter.XYs, samples)
		for i, r := range radii {
			x, _ := p.ComputeDistortion(distortion.EyeLeft, ch, r, 0)
			pts[i] = plotter.XY{X: r, Y: x}
		}
		lines = append(lines, ch.String(), pts)
	}
	if err := plotutil.AddLines(pl, lines...); err != nil {
		return err
	}
	return pl.Save(8*vg.Inch, 6*vg.Inch, file)
}

// plotPPD draws the pixels-per-degree profile across the field of view.
func plotPPD(p *distortion.Profile, resolution float64, file string) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s — pixels per degree", p.Name)
	pl.X.Label.Text = "Angle (°)"
	pl.Y.Label.Text = "PPD"

	smoothed := distortion.Smooth(p.Distortions, p.InnerPoints)
	halfFov := p.HalfFov()
	const step = 0.5
	var pts plotter.XYs
	for deg := 0.0; deg+step <= halfFov; deg += step {
		pts = append(pts, plotter.XY{
			X: deg,
			Y: distortion.PixelsPerDegree(smoothed, deg, deg+step, resolution),
		})
	}
	if err := plotutil.AddLines(pl, "green", pts); err != nil {
		return err
	}
	return pl.Save(8*vg.Inch, 6*vg.Inch, file)
}
