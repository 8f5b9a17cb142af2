// Package version parses and compares the dotted, suffixed version strings
// used to gate startup against a minimum requested version.
package version

import (
	"fmt"

	"github.com/aretw0/b3270/pkg/domain"
)

// MaxComponent is the largest value any version component may take.
const MaxComponent = 999

// Spec is a parsed version. Missing components are zero.
type Spec struct {
	Major     int
	Minor     int
	Iteration int
}

// String formats the version as major.minor.iteration.
func (s Spec) String() string {
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Iteration)
}

// Parse decodes versions of the form <major>[.<minor>[<text><iteration>]],
// for example:
//
//	3.4ga10   -> (3, 4, 10)
//	3.5alpha3 -> (3, 5, 3)
//	3.4       -> (3, 4, 0)
//	3         -> (3, 0, 0)
func Parse(text string) (Spec, error) {
	var s Spec
	fail := func(why string) (Spec, error) {
		return Spec{}, fmt.Errorf("%w %q: %s", domain.ErrVersionParse, text, why)
	}

	major, rest := leadingNumber(text)
	if major < 0 {
		return fail("missing major number")
	}
	if major > MaxComponent {
		return fail("major number out of range")
	}
	s.Major = major
	if rest == "" {
		return s, nil
	}
	if rest[0] != '.' {
		return fail("expected '.' after major number")
	}

	// An empty minor number is accepted and reads as zero.
	minor, rest := leadingNumber(rest[1:])
	if minor > MaxComponent {
		return fail("minor number out of range")
	}
	if minor > 0 {
		s.Minor = minor
	}
	if rest == "" {
		return s, nil
	}

	// Skip the suffix text (ga, alpha, ...) up to the iteration.
	i := 0
	for i < len(rest) && !isDigit(rest[i]) {
		i++
	}
	if i == len(rest) {
		return fail("missing iteration number")
	}
	iteration, rest := leadingNumber(rest[i:])
	if rest != "" {
		return fail("trailing characters after iteration")
	}
	if iteration > MaxComponent {
		return fail("iteration out of range")
	}
	s.Iteration = iteration
	return s, nil
}

// leadingNumber consumes a run of decimal digits. It returns -1 when there are
// none. Values are saturated just above MaxComponent so long runs cannot overflow.
func leadingNumber(s string) (int, string) {
	i, n := 0, 0
	for i < len(s) && isDigit(s[i]) {
		if n <= MaxComponent {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == 0 {
		return -1, s
	}
	return n, s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Satisfies reports whether current meets minimum.
//
// Each component is compared independently, not as an ordered tuple:
// 4.0 does not satisfy 3.5 because its minor number is lower.
func Satisfies(current, minimum Spec) bool {
	return current.Major >= minimum.Major &&
		current.Minor >= minimum.Minor &&
		current.Iteration >= minimum.Iteration
}

// Check parses both versions and fails unless build satisfies minimum.
// An empty minimum always passes once build itself parses.
func Check(build, minimum string) (Spec, error) {
	current, err := Parse(build)
	if err != nil {
		return Spec{}, fmt.Errorf("internal error: can't parse version: %w", err)
	}
	if minimum == "" {
		return current, nil
	}

	want, err := Parse(minimum)
	if err != nil {
		return current, fmt.Errorf("invalid minVersion: %w", err)
	}
	if !Satisfies(current, want) {
		return current, fmt.Errorf("%w: version %s < requested %s, aborting", domain.ErrVersionTooOld, build, minimum)
	}
	return current, nil
}
