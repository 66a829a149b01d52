package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPrivilegeDenied indicates a backend/override/trust combination that is
// not permitted under the active privilege level.
var ErrPrivilegeDenied = errors.New("operation not permitted under current privileges")

// Stage identifies the pipeline stage that produced an error.
type Stage string

const (
	StagePrivilege Stage = "privilege"
	StageSelect    Stage = "select"
	StageResolve   Stage = "resolve"
	StageRender    Stage = "render"
)

// StageError tags a pipeline failure with the stage it came from.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// MissingVariablesError reports the required variables that could not be
// resolved under strict completeness.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("missing required variables: %s", strings.Join(e.Names, ", "))
}
