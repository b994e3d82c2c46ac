// Package semver implements Semantic Versioning 2.0.0 as a value type.
//
// Unlike the common ecosystem packages, the parser follows the published
// grammar exactly: no leading "v", no missing fields, no leading zeros in
// numeric identifiers. A string that parses renders back byte-identical.
//
// Version is a comparable struct, so == is structural equality and
// distinguishes build metadata. Precedence comparison, which ignores build
// metadata per the standard, is the Compare / Equal / LessThan /
// GreaterThan methods.
package semver

import (
	"strconv"
	"strings"
)

// Version is an immutable semantic version.
//
// Major, Minor and Patch hold canonical decimal digits with no leading
// zeros, which keeps versions wider than 64 bits exact. PreRelease and
// Build hold the dotted identifier lists verbatim, empty when absent.
type Version struct {
	Major      string
	Minor      string
	Patch      string
	PreRelease string
	Build      string
}

// New constructs a Version from its parts. It does not validate:
// preRelease and build must already conform to the grammar.
func New(major, minor, patch uint64, preRelease, build string) Version {
	return Version{
		Major:      strconv.FormatUint(major, 10),
		Minor:      strconv.FormatUint(minor, 10),
		Patch:      strconv.FormatUint(patch, 10),
		PreRelease: preRelease,
		Build:      build,
	}
}

// String renders the canonical textual form.
func (v Version) String() string {
	var b strings.Builder
	b.Grow(len(v.Major) + len(v.Minor) + len(v.Patch) + len(v.PreRelease) + len(v.Build) + 4)
	b.WriteString(v.Major)
	b.WriteByte('.')
	b.WriteString(v.Minor)
	b.WriteByte('.')
	b.WriteString(v.Patch)
	if v.PreRelease != "" {
		b.WriteByte('-')
		b.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}
