package sdrfeatures

import (
	"fmt"
	"sort"
	"strings"
)

// String returns a human-readable summary of the report, features and
// requirements sorted by name.
func (r Report) String() string {
	var b strings.Builder

	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		feature := r[name]
		fmt.Fprintf(&b, "%s: %s\n", name, yesNo(feature.Available))

		reqs := make([]string, 0, len(feature.Requirements))
		for req := range feature.Requirements {
			reqs = append(reqs, req)
		}
		sort.Strings(reqs)
		for _, req := range reqs {
			fmt.Fprintf(&b, "  %s: %s\n", req, yesNo(feature.Requirements[req].Available))
		}
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
