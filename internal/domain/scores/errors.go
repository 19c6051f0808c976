package scores

import (
	"fmt"
	"strings"
)

// ValidationError reports required columns absent from the source table.
// The whole load is rejected; there is no partial table.
type ValidationError struct {
	Missing  []string
	Expected []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing columns: %s; expected columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Expected, ", "))
}
