package sdrfeatures

import (
	"sort"
	"testing"
)

func TestCatalog_EveryRequirementHasStrategy(t *testing.T) {
	d := New()
	for feature, reqs := range d.features {
		if len(reqs) == 0 {
			t.Errorf("feature %q has no requirements", feature)
		}
		for _, req := range reqs {
			entry, ok := d.registry[req]
			if !ok {
				t.Errorf("requirement %q of feature %q has no detection strategy", req, feature)
				continue
			}
			if entry.Detect == nil {
				t.Errorf("requirement %q has a nil Detect", req)
			}
			if entry.Description == "" {
				t.Errorf("requirement %q has no description", req)
			}
		}
	}
}

func TestFeatureNames(t *testing.T) {
	names := FeatureNames()
	if len(names) != len(features) {
		t.Fatalf("FeatureNames() has %d entries, catalog has %d", len(names), len(features))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("FeatureNames() = %v, want sorted", names)
	}
	for _, want := range []string{"core", "rtl_sdr", "digital_voice_digiham", "wsjt-x"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("FeatureNames() is missing %q", want)
		}
	}
}
