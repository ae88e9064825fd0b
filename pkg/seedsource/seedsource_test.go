package seedsource

import (
	"strings"
	"testing"
)

func TestReadSeedsParsesLFAndCRLF(t *testing.T) {
	in := "90389547180974\r\n171351315692858\n66697851806768"
	seeds, err := ReadSeeds(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{90389547180974, 171351315692858, 66697851806768}
	if len(seeds) != len(want) {
		t.Fatalf("got %d seeds, want %d", len(seeds), len(want))
	}
	for i := range want {
		if seeds[i] != want[i] {
			t.Errorf("seed[%d] = %d, want %d", i, seeds[i], want[i])
		}
	}
}

func TestReadSeedsRejectsTrailingGarbage(t *testing.T) {
	_, err := ReadSeeds(strings.NewReader("123abc\n"))
	if err == nil {
		t.Fatalf("expected an error for a line with trailing garbage")
	}
}

func TestReadSeedsSkipsBlankLines(t *testing.T) {
	seeds, err := ReadSeeds(strings.NewReader("1\n\n2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("got %d seeds, want 2", len(seeds))
	}
}
