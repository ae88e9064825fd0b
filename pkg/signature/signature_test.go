package signature

import "testing"

func TestParseValidSignature(t *testing.T) {
	got, err := Parse([]uint8{77, 78, 77, 75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got length %d, want 4", len(got))
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected an error for an empty signature")
	}
}

func TestParseRejectsTooLong(t *testing.T) {
	raw := make([]uint8, MaxLength+1)
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected an error for an over-length signature")
	}
}

func TestParseRejectsOutOfRangeAltitude(t *testing.T) {
	if _, err := Parse([]uint8{200}); err == nil {
		t.Fatalf("expected an error for an altitude past the world height")
	}
}

func TestParseAnchorValid(t *testing.T) {
	anchor, err := ParseAnchor(8, -25, []int32{-1, 0, 0, -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anchor.WorldX != 8 || anchor.WorldZ != -25 {
		t.Errorf("anchor position = (%d,%d), want (8,-25)", anchor.WorldX, anchor.WorldZ)
	}
}

func TestParseAnchorRejectsOutOfRange(t *testing.T) {
	if _, err := ParseAnchor(0, 0, []int32{500}); err == nil {
		t.Fatalf("expected an error for an out-of-range anchor diff")
	}
}
