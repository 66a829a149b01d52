package backend

import (
	"fmt"

	"github.com/voidpointergroup/complate/internal/config"
)

// Headless never interacts with a user. Ambiguous template selection is an
// error and every variable query reports no answer, so resolution falls
// through to overrides, defaults, or missing.
type Headless struct{}

// SelectTemplate fails: without a user there is no way to disambiguate.
func (Headless) SelectTemplate(candidates []string) (string, error) {
	return "", fmt.Errorf("%d templates available, pass --template: %w", len(candidates), ErrNoSelection)
}

// Query reports no answer for every variable.
func (Headless) Query(_ config.VariableSpec) (string, bool, error) {
	return "", false, nil
}

// Confirm cannot be answered headlessly. The privilege gate rejects
// trust=prompt with this backend before a render starts, so reaching this
// is a programming error.
func (Headless) Confirm(message string) (bool, error) {
	return false, fmt.Errorf("headless backend cannot confirm %q", message)
}
