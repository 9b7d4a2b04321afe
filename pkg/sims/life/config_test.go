package life

import "testing"

func TestDefaultConfigMatchesScatterRange(t *testing.T) {
	c := DefaultConfig()
	if c.Size != 30 || c.ScatterMin != 100 || c.ScatterMax != 150 {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":   "12",
		"seed":   "9",
		"margin": "bogus",
	})
	if c.Size != 12 || c.Seed != 9 {
		t.Fatalf("parsed %+v", c)
	}
	if c.Margin != DefaultConfig().Margin {
		t.Fatalf("malformed margin should be ignored, got %d", c.Margin)
	}
	if c.ScatterMin != 16 || c.ScatterMax != 24 {
		t.Fatalf("scatter bounds should follow size, got %d..%d", c.ScatterMin, c.ScatterMax)
	}

	c = FromMap(map[string]string{"scatter_min": "40", "scatter_max": "10"})
	if c.ScatterMax != 40 {
		t.Fatalf("scatter max should clamp to min, got %d", c.ScatterMax)
	}

	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}
