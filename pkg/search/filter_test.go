package search

import "testing"

// referenceSeeds and referenceSignature are the reference scenario: a
// fixed chunk scan that must surface exactly these five seeds out of a
// batch of one hundred thousand, each with a match somewhere in its
// x=0..15 row.
var referenceSeeds = []int64{
	90389547180974,
	171351315692858,
	189587791856572,
	66697851806768,
	162899168234811,
}

var referenceSignature = []uint8{77, 78, 77, 75}

func TestFilterSeedsFindsReferenceSeeds(t *testing.T) {
	matches := FilterSeeds(referenceSeeds, 6, -3, referenceSignature, 4)
	if len(matches) == 0 {
		t.Fatalf("expected at least one match among the five reference seeds")
	}
	seen := map[int64]bool{}
	for _, m := range matches {
		seen[m.Seed] = true
		if m.ChunkX != 6 || m.ChunkZ != -3 {
			t.Errorf("match chunk coords = (%d,%d), want (6,-3)", m.ChunkX, m.ChunkZ)
		}
	}
	for _, s := range referenceSeeds {
		if !seen[s] {
			t.Errorf("reference seed %d produced no match", s)
		}
	}
}

func TestFilterSeedsRejectsNonMatchingSeeds(t *testing.T) {
	nonMatching := []int64{1, 2, 3, 4, 5}
	matches := FilterSeeds(nonMatching, 6, -3, referenceSignature, 2)
	if len(matches) != 0 {
		t.Errorf("expected no matches for arbitrary seeds, got %d", len(matches))
	}
}

func TestFilterSeedsSingleVsMultiWorker(t *testing.T) {
	single := FilterSeeds(referenceSeeds, 6, -3, referenceSignature, 1)
	multi := FilterSeeds(referenceSeeds, 6, -3, referenceSignature, 8)
	if len(single) != len(multi) {
		t.Fatalf("worker count changed the match count: %d (1 worker) vs %d (8 workers)", len(single), len(multi))
	}
}

func TestAnchorFilterSeedsNeverPanics(t *testing.T) {
	AnchorFilterSeeds(referenceSeeds[:2], 8, -25)
}

func TestFloorDivFloorMod(t *testing.T) {
	cases := []struct{ a, b, wantDiv, wantMod int32 }{
		{5, 16, 0, 5},
		{-5, 16, -1, 11},
		{16, 16, 1, 0},
		{-17, 16, -2, 15},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.wantDiv {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.wantDiv)
		}
		if got := floorMod(c.a, c.b); got != c.wantMod {
			t.Errorf("floorMod(%d,%d) = %d, want %d", c.a, c.b, got, c.wantMod)
		}
	}
}
