package sdrfeatures

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// LooseVersion is a tolerant, component-wise ordering of version strings.
// A string is split into numeric and non-numeric runs ("1.4b2" becomes
// 1, 4, "b", 2) which are compared pairwise: numbers numerically, text
// lexically, and a number before text when the kinds differ. Anything the
// probed tools print is accepted; there is no notion of a malformed loose
// version.
type LooseVersion struct {
	raw   string
	parts []looseComponent
}

type looseComponent struct {
	num     int
	str     string
	numeric bool
}

// ParseLoose parses s into a LooseVersion.
func ParseLoose(s string) LooseVersion {
	s = strings.TrimSpace(s)
	v := LooseVersion{raw: s}

	var run []rune
	var runNumeric bool
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runNumeric {
			n, _ := strconv.Atoi(string(run))
			v.parts = append(v.parts, looseComponent{num: n, numeric: true})
		} else {
			v.parts = append(v.parts, looseComponent{str: string(run)})
		}
		run = run[:0]
	}

	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			if len(run) > 0 && !runNumeric {
				flush()
			}
			runNumeric = true
			run = append(run, r)
		case r == '.' || r == '-' || r == '_' || r == '+' || unicode.IsSpace(r):
			flush()
		default:
			if len(run) > 0 && runNumeric {
				flush()
			}
			runNumeric = false
			run = append(run, r)
		}
	}
	flush()

	return v
}

// String returns the original input.
func (v LooseVersion) String() string {
	return v.raw
}

// Compare returns -1, 0, or 1 ordering v against o.
func (v LooseVersion) Compare(o LooseVersion) int {
	for i := 0; i < len(v.parts) && i < len(o.parts); i++ {
		a, b := v.parts[i], o.parts[i]
		switch {
		case a.numeric && b.numeric:
			if a.num != b.num {
				return sign(a.num - b.num)
			}
		case !a.numeric && !b.numeric:
			if a.str != b.str {
				return sign(strings.Compare(a.str, b.str))
			}
		case a.numeric:
			// "1.0" sorts before "1.0b" at the component level.
			return -1
		default:
			return 1
		}
	}
	return sign(len(v.parts) - len(o.parts))
}

// AtLeast reports whether v orders at or above min.
func (v LooseVersion) AtLeast(min LooseVersion) bool {
	return v.Compare(min) >= 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// StrictAtLeast compares two well-formed dotted-numeric version strings and
// reports whether version is at or above min. It is used where the probed
// library commits to a stable numeric scheme. A malformed version string is
// a comparison failure, never a panic.
func StrictAtLeast(version, min string) bool {
	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return false
	}
	m, err := semver.NewVersion(min)
	if err != nil {
		return false
	}
	return v.Compare(m) >= 0
}
