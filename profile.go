package distortion

import (
	"fmt"
	"math"
)

// Eye identifies which eye a render request is for. The radial profile is
// symmetric, so both eyes share the same curves and maps; the parameter
// exists to match the compositor's calling convention.
type Eye int

const (
	EyeLeft Eye = iota
	EyeRight
)

// ColorChannel selects which channel's radial map a lookup uses.
type ColorChannel int

const (
	ChannelRed ColorChannel = iota
	ChannelGreen
	ChannelBlue
)

func (c ColorChannel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	}
	return fmt.Sprintf("ColorChannel(%d)", int(c))
}

const (
	// radialMapSize is the number of entries in each channel's radial map.
	// The map spans normalized output radii [0, 1), so each entry covers
	// less than 0.1% of the panel radius.
	radialMapSize = 1024

	// radialMapConversion scales a normalized output radius to a map index.
	radialMapConversion = float64(radialMapSize)

	// defaultInnerPoints is how many Bézier-interpolated samples are
	// inserted between adjacent control points when the profile does not
	// say otherwise.
	defaultInnerPoints = 20

	// defaultResolution is the assumed panel resolution (pixels per
	// dimension) for the pixels-per-degree diagnostics.
	defaultResolution = 2160
)

// Profile converts authored distortion control curves into per-channel
// radial lookup maps and answers per-pixel distortion queries from them.
//
// The exported fields describe the authored profile and must be set before
// [Profile.Initialize] is called. Initialize must complete before the first
// [Profile.ComputeDistortion] call; the profile performs no locking of its
// own, so concurrent use during initialization must be prevented by the
// caller, typically by building a fresh Profile and swapping a shared
// reference once it is ready.
type Profile struct {
	Name        string
	Description string

	// Distortions is the green channel's geometric curve, mapping view
	// angles to output displacements. DistortionsRed and DistortionsBlue
	// are percentage offsets relative to green (2 means +2%), not absolute
	// positions; an offset curve with fewer than two points leaves that
	// channel identical to green.
	Distortions     Curve
	DistortionsRed  Curve
	DistortionsBlue Curve

	// InnerPoints is the number of smoothing samples inserted between
	// adjacent control points. Zero selects the default.
	InnerPoints int

	// Resolution is the panel resolution in pixels per dimension, used only
	// by the pixels-per-degree diagnostics. Zero selects the default.
	Resolution float64

	halfFov float64

	radialUVMapR []float64
	radialUVMapG []float64
	radialUVMapB []float64
}

// Initialize rebuilds the radial maps from the authored curves. It is safe
// to call again after the curves change; the previous maps are discarded
// first. Initialize panics if the green curve has fewer than two points, as
// no distortion can be interpolated from it.
func (p *Profile) Initialize() {
	if len(p.Distortions) < 2 {
		panic("distortion: Initialize requires at least two green control points")
	}
	p.Cleanup()

	inner := p.InnerPoints
	if inner <= 0 {
		inner = defaultInnerPoints
	}
	resolution := p.Resolution
	if resolution <= 0 {
		resolution = defaultResolution
	}

	green := Smooth(p.Distortions, inner)
	redPercent := Smooth(p.DistortionsRed, inner)
	bluePercent := Smooth(p.DistortionsBlue, inner)

	// Correct for chromatic aberration. Red and blue start as copies of the
	// geometric curve and keep its degree axis, so the three channels stay
	// sample-aligned for the map builder. Offset curves too short to
	// interpolate leave the channel identical to green.
	red := append(Curve(nil), green...)
	blue := append(Curve(nil), green...)
	for i := range green {
		if len(redPercent) >= 2 {
			red[i].Position *= Sample(redPercent, red[i].Degree)/100.0 + 1.0
		}
		if len(bluePercent) >= 2 {
			blue[i].Position *= Sample(bluePercent, blue[i].Degree)/100.0 + 1.0
		}
	}

	p.halfFov = green.MaxDegree()

	log := Logger()
	for _, band := range [...][2]float64{{0, 1}, {10, 11}, {20, 21}, {30, 31}, {40, 41}} {
		log.Info("pixels per degree",
			"profile", p.Name,
			"degreeStart", band[0],
			"degreeEnd", band[1],
			"ppd", PixelsPerDegree(green, band[0], band[1], resolution))
	}
	log.Info("pixels per degree average",
		"profile", p.Name, "degreeStart", 0.0, "degreeEnd", 10.0,
		"ppd", PixelsPerDegree(green, 0, 10, resolution))
	log.Info("pixels per degree average",
		"profile", p.Name, "degreeStart", 0.0, "degreeEnd", 20.0,
		"ppd", PixelsPerDegree(green, 0, 20, resolution))

	// Convert the angular axis to normalized tangent-space input
	// coordinates: 1 is the edge of the field of view. Tangent is monotone
	// increasing on [0, halfFov], so the converted samples stay sorted.
	edgeTan := math.Tan(p.halfFov * math.Pi / 180.0)
	convert := func(c Curve) []inputSample {
		out := make([]inputSample, len(c))
		for i, pt := range c {
			out[i] = inputSample{
				Position: pt.Position,
				Input:    math.Tan(pt.Degree*math.Pi/180.0) / edgeTan,
			}
		}
		return out
	}
	greenIn := convert(green)
	redIn := convert(red)
	blueIn := convert(blue)

	if ratio := maxInputOutputRatio(greenIn); ratio > 0 {
		// The compositor counts oversampling in total pixels, not per
		// dimension, hence the squared percentage.
		log.Info("oversampling required for 1:1 distortion",
			"profile", p.Name,
			"percent", ratio*ratio*100.0,
			"width", int(ratio*resolution),
			"height", int(ratio*resolution))
	}

	p.radialUVMapR = buildRadialMap(redIn)
	p.radialUVMapG = buildRadialMap(greenIn)
	p.radialUVMapB = buildRadialMap(blueIn)
}

// buildRadialMap inverts a converted curve into a fixed-size table from
// evenly spaced output radii to input radii, the direction needed at render
// time.
func buildRadialMap(samples []inputSample) []float64 {
	m := make([]float64, radialMapSize)
	for i := range m {
		outputRadius := float64(i) / radialMapConversion * 100.0
		m[i] = inputForPosition(samples, outputRadius)
	}
	return m
}

// sampleFromMap interpolates a radial map at a normalized output radius.
// The index is clamped to the table, so out-of-range radii extrapolate along
// the edge entries.
func sampleFromMap(m []float64, radius float64) float64 {
	indexFloat := radius * radialMapConversion
	index := int(indexFloat)
	if index < 0 {
		index = 0
	} else if index >= radialMapSize-1 {
		index = radialMapSize - 2
	}
	return lerp(m[index], m[index+1], indexFloat-float64(index))
}

// ComputeDistortion maps a normalized UV offset from the optical center to
// the corrected input coordinate for one color channel. It allocates
// nothing; it runs once per distorted sample per frame per eye per channel.
func (p *Profile) ComputeDistortion(eye Eye, channel ColorChannel, fU, fV float64) (x, y float64) {
	radius := math.Sqrt(fU*fU + fV*fV)
	unitU := fU / radius
	unitV := fV / radius
	// At the exact center the direction is 0/0; zero it instead of letting
	// NaN through.
	if math.IsNaN(unitU) {
		unitU = 0
	}
	if math.IsNaN(unitV) {
		unitV = 0
	}

	switch channel {
	case ChannelRed:
		radius = sampleFromMap(p.radialUVMapR, radius)
	case ChannelGreen:
		radius = sampleFromMap(p.radialUVMapG, radius)
	case ChannelBlue:
		radius = sampleFromMap(p.radialUVMapB, radius)
	}

	return unitU * radius, unitV * radius
}

// GetProjectionRaw returns the tangent-space clip bounds of the profile's
// field of view. The profile is radially defined, so the bounds are
// symmetric and identical for both eyes.
func (p *Profile) GetProjectionRaw(eye Eye) (left, right, bottom, top float64) {
	Logger().Debug("projection bounds", "profile", p.Name, "fov", p.halfFov*2.0)
	halfFovRad := p.halfFov * math.Pi / 180.0
	return math.Tan(-halfFovRad), math.Tan(halfFovRad), math.Tan(-halfFovRad), math.Tan(halfFovRad)
}

// HalfFov returns the profile's half field of view in degrees, the largest
// angle covered by the smoothed green curve. It is zero before Initialize.
func (p *Profile) HalfFov() float64 {
	return p.halfFov
}

// Cleanup releases the radial maps. It is idempotent, and Initialize calls
// it before rebuilding, so re-initializing never retains stale maps.
// ComputeDistortion must not be called between Cleanup and the completion of
// the next Initialize.
func (p *Profile) Cleanup() {
	p.radialUVMapR = nil
	p.radialUVMapG = nil
	p.radialUVMapB = nil
}
