package sdrfeatures

import "testing"

func TestReport_String(t *testing.T) {
	report := Report{
		"beta": {
			Available: false,
			Requirements: map[string]RequirementStatus{
				"tool": {Available: false},
			},
		},
		"alpha": {
			Available: true,
			Requirements: map[string]RequirementStatus{
				"lib": {Available: true},
			},
		},
	}

	want := "alpha: yes\n  lib: yes\nbeta: no\n  tool: no\n"
	if got := report.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestReport_StringEmpty(t *testing.T) {
	if got := (Report{}).String(); got != "" {
		t.Errorf("String() on an empty report = %q, want empty", got)
	}
}
