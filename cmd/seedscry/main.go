package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/duskforge/seedscry/pkg/search"
	"github.com/duskforge/seedscry/pkg/seedsource"
	"github.com/duskforge/seedscry/pkg/signature"
)

func main() {
	seedFile := flag.String("seeds", "", "Path to a newline-delimited file of world seeds to search")
	chunkX := flag.Int("chunk-x", 6, "Chunk X coordinate to scan")
	chunkZ := flag.Int("chunk-z", -3, "Chunk Z coordinate to scan")
	signatureFlag := flag.String("signature", "77,78,77,75", "Comma-separated height signature to match against z rows 12..15")
	workers := flag.Int("workers", 4, "Number of concurrent search workers")
	anchorX := flag.Int("anchor-x", 0, "World X coordinate for the cross-chunk anchor search")
	anchorZ := flag.Int("anchor-z", 0, "World Z coordinate for the cross-chunk anchor search")
	useAnchor := flag.Bool("anchor", false, "Run the cross-chunk anchor search instead of the single-chunk signature search")
	flag.Parse()

	if *seedFile == "" {
		log.Fatalf("missing required -seeds flag")
	}

	f, err := os.Open(*seedFile)
	if err != nil {
		log.Fatalf("failed to open seed file: %v", err)
	}
	defer f.Close()

	seeds, err := seedsource.ReadSeeds(f)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}
	log.Printf("Running %d seeds", len(seeds))

	if *useAnchor {
		matches := search.AnchorFilterSeeds(seeds, int32(*anchorX), int32(*anchorZ))
		for _, m := range matches {
			log.Printf("Found seed: %d at x: %d and z: %d (count %d)", m.Seed, m.X, m.Z, m.Count)
		}
		log.Printf("Checked %d seeds, found %d matches", len(seeds), len(matches))
		return
	}

	sig, err := parseSignature(*signatureFlag)
	if err != nil {
		log.Fatalf("invalid -signature: %v", err)
	}
	if _, err := signature.Parse(sig); err != nil {
		log.Fatalf("invalid -signature: %v", err)
	}

	matches := search.FilterSeeds(seeds, int32(*chunkX), int32(*chunkZ), sig, *workers)
	for _, m := range matches {
		log.Printf("Found seed: %d at x: %d and chunkZ: %d", m.Seed, m.X, m.ChunkZ)
	}
	log.Printf("Checked %d seeds, found %d matches", len(seeds), len(matches))
}

func parseSignature(raw string) ([]uint8, error) {
	parts := strings.Split(raw, ",")
	sig := make([]uint8, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, err
		}
		sig = append(sig, uint8(v))
	}
	return sig, nil
}
