package render

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff counts changed lines between two renderings.
type Diff struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// Empty reports whether the two texts were identical.
func (d Diff) Empty() bool {
	return d.Added == 0 && d.Removed == 0 && d.Modified == 0
}

func (d Diff) String() string {
	return fmt.Sprintf("%d added, %d removed, %d modified", d.Added, d.Removed, d.Modified)
}

// DiffSummary compares two texts line by line. A replaced block counts the
// overlapping lines as modified and the remainder as added or removed.
func DiffSummary(original, fixed string) Diff {
	a := difflib.SplitLines(original)
	b := difflib.SplitLines(fixed)

	var d Diff
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		removed := op.I2 - op.I1
		added := op.J2 - op.J1
		switch op.Tag {
		case 'd':
			d.Removed += removed
		case 'i':
			d.Added += added
		case 'r':
			common := min(removed, added)
			d.Modified += common
			d.Removed += removed - common
			d.Added += added - common
		}
	}
	return d
}

// UnifiedDiff returns a unified diff between two texts, or "" if they match.
func UnifiedDiff(original, fixed, name string) (string, error) {
	if original == fixed {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(fixed),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}
