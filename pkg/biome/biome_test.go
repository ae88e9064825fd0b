package biome

import "testing"

func TestBiomesTableHasNoIceDesert(t *testing.T) {
	for i, b := range biomesTable {
		if b == IceDesert {
			t.Fatalf("biomesTable[%d] resolved to IceDesert, which the lookup table never produces", i)
		}
	}
}

func TestGetBiomesDeterministic(t *testing.T) {
	a := InitBiomeGen(12345)
	b := InitBiomeGen(12345)
	ra := GetBiomes(0, 0, 16, 16, a)
	rb := GetBiomes(0, 0, 16, 16, b)
	for i := range ra.Biomes {
		if ra.Biomes[i] != rb.Biomes[i] {
			t.Fatalf("biome at %d differs between identically-seeded runs: %v != %v", i, ra.Biomes[i], rb.Biomes[i])
		}
	}
}

func TestGetBiomesTemperatureHumidityInRange(t *testing.T) {
	octaves := InitBiomeGen(99)
	res := GetBiomes(0, 0, 16, 16, octaves)
	for i := range res.Temperature {
		if res.Temperature[i] < 0 || res.Temperature[i] > 1 {
			t.Errorf("temperature[%d] out of [0,1]: %f", i, res.Temperature[i])
		}
		if res.Humidity[i] < 0 || res.Humidity[i] > 1 {
			t.Errorf("humidity[%d] out of [0,1]: %f", i, res.Humidity[i])
		}
	}
}

func TestBiomeWrapperMatchesGetBiomes(t *testing.T) {
	wrapped := BiomeWrapper(777, 2, -3)
	octaves := InitBiomeGen(777)
	direct := GetBiomes(2*16, -3*16, 16, 16, octaves)
	for i := range wrapped.Biomes {
		if wrapped.Biomes[i] != direct.Biomes[i] {
			t.Fatalf("BiomeWrapper diverged from GetBiomes at %d", i)
		}
	}
}

func TestBiomeStringNamesAllValues(t *testing.T) {
	for b := Rainforest; b <= Tundra; b++ {
		if b.String() == "Unknown" {
			t.Errorf("biome %d has no name", b)
		}
	}
}
