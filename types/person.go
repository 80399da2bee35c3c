package types

// Appearance describes the visible traits extracted for the speaking person.
type Appearance struct {
	Gender              string `json:"gender"`
	AgeRange            string `json:"age_range"`
	Clothing            string `json:"clothing"`
	DistinctiveFeatures string `json:"distinctive_features"`
}

// PersonProfile is the structured identity of the person speaking in the video.
// It is embedded by value into the master descriptor and cloned into every clip.
type PersonProfile struct {
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	Tone          string     `json:"tone"`
	Appearance    Appearance `json:"appearance"`
	KeyPoints     []string   `json:"key_points"`
	SpeakingStyle string     `json:"speaking_style"`
}

// Clone returns an independent copy whose slices share no backing storage.
func (p PersonProfile) Clone() PersonProfile {
	cp := p
	cp.KeyPoints = append([]string(nil), p.KeyPoints...)
	return cp
}

// Tones lists the accepted speaking tones.
var Tones = []string{"professional", "friendly", "confident", "enthusiastic", "warm"}
