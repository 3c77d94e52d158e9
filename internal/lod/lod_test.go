package lod

import (
	"testing"
)

func threeTiers() []Tier {
	return []Tier{
		{Threshold: 0, Rep: Representation{Name: "hi", Segments: 32}},
		{Threshold: 5, Rep: Representation{Name: "med", Segments: 16}},
		{Threshold: 10, Rep: Representation{Name: "low", Segments: 8}},
	}
}

func TestSelectByDistance(t *testing.T) {
	tiers := threeTiers()
	cases := []struct {
		distance float32
		want     string
	}{
		{0, "hi"},
		{3, "hi"},
		{5, "med"},
		{7, "med"},
		{10, "low"},
		{15, "low"},
	}
	for _, c := range cases {
		got := Select(tiers, c.distance)
		if got.Rep.Name != c.want {
			t.Errorf("distance %.0f: want %q, got %q", c.distance, c.want, got.Rep.Name)
		}
	}
}

func TestSelectBelowFirstThreshold(t *testing.T) {
	tiers := []Tier{
		{Threshold: 2, Rep: Representation{Name: "hi"}},
		{Threshold: 8, Rep: Representation{Name: "low"}},
	}
	if got := Select(tiers, 1); got.Rep.Name != "hi" {
		t.Fatalf("distance below first threshold must use tier 0, got %q", got.Rep.Name)
	}
}

func TestSelectEmpty(t *testing.T) {
	if got := Select(nil, 5); got.Rep.Segments != 0 {
		t.Fatalf("empty tier list should yield zero tier, got %+v", got)
	}
}

func TestBandedTiersMonotonic(t *testing.T) {
	tiers := NewBandedTiers(Representation{Name: "particle", Segments: 32})
	if len(tiers) != 3 {
		t.Fatalf("want 3 tiers, got %d", len(tiers))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold <= tiers[i-1].Threshold {
			t.Errorf("thresholds must be strictly increasing: %v", tiers)
		}
		if tiers[i].Rep.Segments >= tiers[i-1].Rep.Segments {
			t.Errorf("segment counts must decrease with distance: %v", tiers)
		}
	}
}

func TestBandedTiersSegmentFloor(t *testing.T) {
	tiers := NewBandedTiers(Representation{Name: "tiny", Segments: 6})
	for _, tier := range tiers {
		if tier.Rep.Segments < 4 {
			t.Fatalf("segments below floor: %+v", tier)
		}
	}
}
