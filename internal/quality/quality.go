package quality

// Tier is a discrete rendering quality level.
type Tier int

const (
	Low Tier = iota
	Medium
	High
)

func (t Tier) String() string {
	switch t {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return "unknown"
}

// Settings are the renderer knobs derived from a tier. They are a pure
// function of the tier; there are no partial states.
type Settings struct {
	Tier                  Tier
	Antialias             bool
	Shadows               bool
	MaxParticles          int
	TextureSize           int
	LODDistanceMultiplier float32
}

var settingsTable = [...]Settings{
	Low:    {Tier: Low, Antialias: false, Shadows: false, MaxParticles: 50, TextureSize: 256, LODDistanceMultiplier: 0.5},
	Medium: {Tier: Medium, Antialias: false, Shadows: true, MaxParticles: 100, TextureSize: 512, LODDistanceMultiplier: 0.75},
	High:   {Tier: High, Antialias: true, Shadows: true, MaxParticles: 200, TextureSize: 1024, LODDistanceMultiplier: 1.0},
}

// SettingsFor returns the settings for a tier. Out-of-range tiers clamp to
// the nearest valid level.
func SettingsFor(t Tier) Settings {
	if t < Low {
		t = Low
	}
	if t > High {
		t = High
	}
	return settingsTable[t]
}
