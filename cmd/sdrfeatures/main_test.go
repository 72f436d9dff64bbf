package main

import (
	"strings"
	"testing"
)

func TestParseFeatureList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"rtl_sdr", []string{"rtl_sdr"}},
		{"rtl_sdr,airspy", []string{"rtl_sdr", "airspy"}},
		{" rtl_sdr , airspy ", []string{"rtl_sdr", "airspy"}},
		{"rtl_sdr,,airspy,", []string{"rtl_sdr", "airspy"}},
		{"", nil},
		{",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseFeatureList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFeatureList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFeatureList_Set(t *testing.T) {
	var f featureList
	if err := f.Set("rtl_sdr,airspy"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("hackrf"); err != nil {
		t.Fatal(err)
	}

	if got := f.String(); got != "rtl_sdr,airspy,hackrf" {
		t.Errorf("String() = %q, want %q", got, "rtl_sdr,airspy,hackrf")
	}
	if f.Type() != "feature" {
		t.Errorf("Type() = %q, want %q", f.Type(), "feature")
	}
}

func TestCheckLongDescription(t *testing.T) {
	long := checkLongDescription()
	if !strings.Contains(long, "Available features:") {
		t.Error("long description does not list available features")
	}
	if !strings.Contains(long, "rtl_sdr") {
		t.Error("long description does not mention rtl_sdr")
	}
}

func TestFormatWrappedList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := formatWrappedList(nil, "  ", 80); got != "  (none)" {
			t.Errorf("formatWrappedList(nil) = %q", got)
		}
	})

	t.Run("single line", func(t *testing.T) {
		got := formatWrappedList([]string{"a", "b", "c"}, "  ", 80)
		if got != "  a, b, c" {
			t.Errorf("formatWrappedList() = %q", got)
		}
	})

	t.Run("wraps at width", func(t *testing.T) {
		items := []string{"alpha", "bravo", "charlie", "delta", "echo"}
		got := formatWrappedList(items, "  ", 20)
		for i, line := range strings.Split(got, "\n") {
			if len(line) > 20+len("charlie, ") {
				t.Errorf("line %d too long: %q", i, line)
			}
			if !strings.HasPrefix(line, "  ") {
				t.Errorf("line %d not indented: %q", i, line)
			}
		}
		for _, item := range items {
			if !strings.Contains(got, item) {
				t.Errorf("wrapped list is missing %q", item)
			}
		}
	})
}
