// Package signature parses and validates the height-strip fingerprints
// the batch filter matches seeds against.
package signature

import "fmt"

// MaxLength is the widest a height signature can be: one entry per z row
// in the 16-row chunk the canonical filter's narrow band covers.
const MaxLength = 16

// MaxAltitude is the tallest a single height entry may be: one past the
// world's top build level.
const MaxAltitude = 128

// Parse validates a raw height signature (e.g. decoded from a CLI flag)
// and returns it unchanged if every entry is in range and the signature
// isn't longer than the band it's meant to match against.
func Parse(raw []uint8) ([]uint8, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("signature: empty signature")
	}
	if len(raw) > MaxLength {
		return nil, fmt.Errorf("signature: length %d exceeds max %d", len(raw), MaxLength)
	}
	for i, h := range raw {
		if int(h) > MaxAltitude {
			return nil, fmt.Errorf("signature: entry %d (%d) exceeds max altitude %d", i, h, MaxAltitude)
		}
	}
	return raw, nil
}

// Anchor is a validated cross-chunk search target: a world position plus
// the height-difference fingerprint AnchorFilterSeeds compares the
// surrounding column window against.
type Anchor struct {
	WorldX, WorldZ int32
	Diffs          []int32
}

// ParseAnchor validates a raw difference sequence against the same
// length bound as Parse, since both describe the same kind of window
// scan over consecutive chunk columns.
func ParseAnchor(worldX, worldZ int32, diffs []int32) (Anchor, error) {
	if len(diffs) == 0 {
		return Anchor{}, fmt.Errorf("signature: empty anchor diff sequence")
	}
	if len(diffs) > MaxLength {
		return Anchor{}, fmt.Errorf("signature: anchor length %d exceeds max %d", len(diffs), MaxLength)
	}
	for i, d := range diffs {
		if d <= -MaxAltitude || d >= MaxAltitude {
			return Anchor{}, fmt.Errorf("signature: anchor diff %d (%d) out of range", i, d)
		}
	}
	return Anchor{WorldX: worldX, WorldZ: worldZ, Diffs: diffs}, nil
}
