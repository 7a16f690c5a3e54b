package config

import (
	"testing"

	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/types"
)

func TestSyntheticSamplesMatchTheirCategory(t *testing.T) {
	cfg := DefaultConfig()
	for _, category := range types.AllCategories() {
		sample, err := SyntheticSample(category, cfg)
		if err != nil {
			t.Fatalf("sample %s: %v", category, err)
		}
		if !pii.New(sample).Has(category) {
			t.Fatalf("sample %q does not match %s", sample, category)
		}
	}
}

func TestSyntheticSampleUsesConfiguredSuffix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StreetSuffixes = []string{"Crescent"}
	sample, err := SyntheticSample(types.CategoryStreetAddress, cfg)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if sample != "1234 Nowhere Crescent" {
		t.Fatalf("sample = %q", sample)
	}
}
