package lint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRule is matched by errors.Is for any UnknownRuleError.
var ErrUnknownRule = errors.New("unknown rule")

// UnknownRuleError reports rule ids that are not in the catalog.
type UnknownRuleError struct {
	IDs []string
}

func (e *UnknownRuleError) Error() string {
	if len(e.IDs) == 1 {
		return fmt.Sprintf("unknown rule %q", e.IDs[0])
	}
	return fmt.Sprintf("unknown rules: %s", strings.Join(e.IDs, ", "))
}

// Is makes errors.Is(err, ErrUnknownRule) succeed.
func (e *UnknownRuleError) Is(target error) bool {
	return target == ErrUnknownRule
}
