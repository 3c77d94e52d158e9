package lod

// Representation identifies one discrete geometric fidelity level.
// Segments stands in for polygon density: the demo renders particles as
// circle fans, so fewer segments means fewer triangles.
type Representation struct {
	Name     string
	Segments int
}

// Tier pairs a representation with the viewer distance at which it becomes
// the appropriate choice.
type Tier struct {
	Threshold float32
	Rep       Representation
}

// Distance bands for the standard three-tier set, in world units.
const (
	nearBand = 0.0
	midBand  = 5.0
	farBand  = 10.0
)

const minSegments = 4

// NewBandedTiers builds the standard tier set for a base representation:
// full fidelity up close, then halving segment counts at fixed distance
// bands. Thresholds are strictly increasing.
func NewBandedTiers(base Representation) []Tier {
	mid := base.Segments / 2
	if mid < minSegments {
		mid = minSegments
	}
	far := base.Segments / 4
	if far < minSegments {
		far = minSegments
	}
	return []Tier{
		{Threshold: nearBand, Rep: base},
		{Threshold: midBand, Rep: Representation{Name: base.Name + "-mid", Segments: mid}},
		{Threshold: farBand, Rep: Representation{Name: base.Name + "-far", Segments: far}},
	}
}

// Select returns the tier whose threshold is the largest value not
// exceeding distance. Distances below the first threshold fall back to the
// highest-fidelity tier. An empty tier list returns the zero Tier.
func Select(tiers []Tier, distance float32) Tier {
	if len(tiers) == 0 {
		return Tier{}
	}
	chosen := tiers[0]
	for _, t := range tiers[1:] {
		if t.Threshold <= distance {
			chosen = t
		} else {
			break
		}
	}
	return chosen
}
