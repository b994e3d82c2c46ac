package semver

import (
	"fmt"
	"regexp"
	"sync"
)

// Grammar published by the standard, anchored so partial matches fail.
// See https://semver.org/spec/v2.0.0.html#is-there-a-suggested-regular-expression-regex-to-check-a-semver-string
const grammar = `^(?P<major>0|[1-9]\d*)\.(?P<minor>0|[1-9]\d*)\.(?P<patch>0|[1-9]\d*)` +
	`(?:-(?P<prerelease>(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
	`(?:\+(?P<buildmetadata>[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`

var grammarRegexp = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(grammar)
})

// ParseError is the only error Parse returns. Version holds the rejected
// input verbatim.
type ParseError struct {
	Version string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid semantic version %q", e.Version)
}

// Parse converts text into a Version. It accepts exactly the grammar of
// the standard: any leading or trailing bytes, leading zeros in numeric
// identifiers, empty dot-segments or characters outside [0-9A-Za-z-.]
// yield a *ParseError.
func Parse(s string) (Version, error) {
	m := grammarRegexp().FindStringSubmatch(s)
	if m == nil {
		return Version{}, &ParseError{Version: s}
	}
	// capture order: major, minor, patch, prerelease, buildmetadata
	return Version{
		Major:      m[1],
		Minor:      m[2],
		Patch:      m[3],
		PreRelease: m[4],
		Build:      m[5],
	}, nil
}

// MustParse is Parse for inputs known to be valid; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
