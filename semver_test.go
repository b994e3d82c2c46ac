package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		Name     string
		Version  Version
		Expected string
	}{
		{
			Name:     "bare_triple",
			Version:  New(1, 0, 0, "", ""),
			Expected: "1.0.0",
		},
		{
			Name:     "prerelease_only",
			Version:  New(2, 0, 0, "rc.1", ""),
			Expected: "2.0.0-rc.1",
		},
		{
			Name:     "build_only",
			Version:  New(2, 0, 0, "", "build.1848"),
			Expected: "2.0.0+build.1848",
		},
		{
			Name:     "prerelease_and_build",
			Version:  New(1, 2, 3, "beta", "exp.sha.5114f85"),
			Expected: "1.2.3-beta+exp.sha.5114f85",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, tc.Version.String())

			// a constructed value and its reparsed rendering agree
			reparsed, err := Parse(tc.Expected)
			require.NoError(t, err)
			require.Equal(t, tc.Version, reparsed)
		})
	}
}

// Structural equality keeps build metadata, precedence equality drops it.
func TestEqualityVersusPrecedence(t *testing.T) {
	tagged := MustParse("2.0.0+build.1848")
	plain := MustParse("2.0.0")
	retagged := MustParse("2.0.0+build.1848")

	require.True(t, tagged.Equal(plain))
	require.Equal(t, Equal, tagged.Compare(plain))

	require.NotEqual(t, tagged, plain)
	require.Equal(t, tagged, retagged)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("1.2.3.DEV")
	require.EqualError(t, err, `invalid semantic version "1.2.3.DEV"`)
}
