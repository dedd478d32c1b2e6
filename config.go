package distortion

// DistortionProfileConfig is the raw distortion profile handed over by the
// settings loader. The JSON tags mirror the profile files on disk; the
// loader, not this package, reads those files, tracks their modification
// times, and decodes the flat numeric arrays into [Curve] control points.
// The packing convention of the flat arrays is deliberately not defined
// here.
//
// Distortions is the green channel's geometric curve; DistortionsRed and
// DistortionsBlue are percentage offsets relative to green.
type DistortionProfileConfig struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	ModifiedTime float64 `json:"-"`

	Distortions     []float64 `json:"distortions"`
	DistortionsRed  []float64 `json:"distortionsRed"`
	DistortionsBlue []float64 `json:"distortionsBlue"`
}

// Profile builds an uninitialized [Profile] carrying the config's metadata
// and the control curves the loader decoded from the config's raw arrays.
// Call [Profile.Initialize] on the result before use.
func (c DistortionProfileConfig) Profile(green, red, blue Curve) *Profile {
	return &Profile{
		Name:            c.Name,
		Description:     c.Description,
		Distortions:     green,
		DistortionsRed:  red,
		DistortionsBlue: blue,
	}
}
