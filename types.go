package sdrfeatures

import "fmt"

// DetectFunc is the contract every detection strategy satisfies: no
// arguments, no error. Every failure mode (missing binary, malformed
// output, unreachable service) maps to false.
type DetectFunc func() bool

// Requirement couples a detection strategy with its operator-facing
// description. Strategies are resolved into an explicit registry when the
// Detector is constructed, so a requirement without one is a detectable
// configuration state rather than a runtime lookup failure.
type Requirement struct {
	Detect      DetectFunc
	Description string
}

// UnknownFeatureError is returned when a caller asks about a feature name
// that is not in the catalog. It is the only failure a caller must handle;
// it is deliberately distinct from a feature that is merely unavailable.
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("feature %q is not known", e.Name)
}

// RequirementStatus describes one requirement inside a Report.
//
// Enabled currently always equals Available; it is a placeholder for a
// future policy that lets operators disable available features.
type RequirementStatus struct {
	Available   bool   `json:"available"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// FeatureStatus describes one feature inside a Report.
type FeatureStatus struct {
	Available    bool                         `json:"available"`
	Requirements map[string]RequirementStatus `json:"requirements"`
}

// Report maps every catalog feature to its availability and the state of
// each of its requirements. It is a read-only snapshot derived from the
// same cached probes the rest of the API uses.
type Report map[string]FeatureStatus
