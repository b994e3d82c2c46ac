package semver

import "strings"

// compare result
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// Compare orders v against o by the precedence rules of the standard:
// major, minor and patch numerically, then pre-release identifiers.
// Build metadata never participates, so two versions differing only in
// Build compare Equal. It returns Less, Equal or Greater.
func (v Version) Compare(o Version) int {
	if c := compareNumeric(v.Major, o.Major); c != Equal {
		return c
	}
	if c := compareNumeric(v.Minor, o.Minor); c != Equal {
		return c
	}
	if c := compareNumeric(v.Patch, o.Patch); c != Equal {
		return c
	}
	return comparePreRelease(v.PreRelease, o.PreRelease)
}

// LessThan reports whether v has lower precedence than o.
func (v Version) LessThan(o Version) bool {
	return v.Compare(o) == Less
}

// GreaterThan reports whether v has higher precedence than o.
func (v Version) GreaterThan(o Version) bool {
	return v.Compare(o) == Greater
}

// Equal reports precedence equality, which ignores build metadata.
// Use == for structural equality of all five fields.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == Equal
}

// compareNumeric orders two canonical decimals. With leading zeros
// excluded by the grammar, the longer string is the larger number and
// equal lengths order bytewise, so width never overflows anything.
func compareNumeric(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return Less
		}
		return Greater
	}
	return strings.Compare(a, b)
}

func comparePreRelease(a, b string) int {
	switch {
	case a == b:
		return Equal
	case a == "":
		// a release outranks any pre-release of the same triple
		return Greater
	case b == "":
		return Less
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		aNum := isDigits(as[i])
		bNum := isDigits(bs[i])
		switch {
		case aNum && bNum:
			return compareNumeric(as[i], bs[i])
		case aNum:
			// numeric identifiers order below alphanumeric ones
			return Less
		case bNum:
			return Greater
		default:
			return strings.Compare(as[i], bs[i])
		}
	}

	// common prefix agrees; the longer identifier list has precedence
	if len(as) < len(bs) {
		return Less
	}
	return Greater
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
