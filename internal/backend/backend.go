// Package backend implements the interaction backends used to select a
// template and collect variable values: headless, cli (line prompts), and
// ui (full-screen terminal).
package backend

import (
	"errors"
	"fmt"

	"github.com/voidpointergroup/complate/internal/config"
)

// Backend errors.
var (
	// ErrCancelled indicates the user aborted an interactive session.
	// Callers should treat it as a deliberate abort, not a failure.
	ErrCancelled = errors.New("render cancelled by user")
	// ErrNoSelection indicates template selection was ambiguous and the
	// backend cannot ask the user to choose.
	ErrNoSelection = errors.New("no template selected")
)

// Backend collects user input during a render. Implementations are called
// at most once per variable.
type Backend interface {
	// SelectTemplate picks one template name out of the candidates.
	SelectTemplate(candidates []string) (string, error)
	// Query asks for a value for the variable. ok=false means the user
	// gave no answer and resolution should continue down the chain.
	Query(v config.VariableSpec) (value string, ok bool, err error)
	// Confirm asks a yes/no question, used to authorize shell commands.
	Confirm(message string) (bool, error)
}

// Kind identifies one of the fixed backend variants.
type Kind string

const (
	KindHeadless Kind = "headless"
	KindCLI      Kind = "cli"
	KindUI       Kind = "ui"
)

// ParseKind maps a CLI-level backend name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindHeadless, KindCLI, KindUI:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}

// Interactive reports whether the kind requires a terminal session.
func (k Kind) Interactive() bool {
	return k != KindHeadless
}

// New constructs the backend for the given kind.
func New(kind Kind) (Backend, error) {
	switch kind {
	case KindHeadless:
		return Headless{}, nil
	case KindCLI:
		return &Prompt{}, nil
	case KindUI:
		return &UI{}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}
