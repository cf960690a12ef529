// Package testutil provides shared test helpers.
package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenTest is a test case with output that is compared against a golden
// file under testdata.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches the
// expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, goldenFileName := tc.Output()

	g.Assert(t, goldenFileName, output)
}
