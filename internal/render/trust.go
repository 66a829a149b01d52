package render

import (
	"fmt"

	"github.com/voidpointergroup/complate/internal/backend"
)

// TrustMode governs whether shell-computed defaults may execute. It is
// fixed for the duration of one render.
type TrustMode string

const (
	TrustNone     TrustMode = "none"
	TrustPrompt   TrustMode = "prompt"
	TrustUltimate TrustMode = "ultimate"
)

// ParseTrustMode maps a CLI-level trust name to a TrustMode.
func ParseTrustMode(s string) (TrustMode, error) {
	switch TrustMode(s) {
	case TrustNone, TrustPrompt, TrustUltimate:
		return TrustMode(s), nil
	default:
		return "", fmt.Errorf("unknown trust mode %q", s)
	}
}

// Decision is the trust gate's verdict for one command.
type Decision int

const (
	DecisionSkip Decision = iota
	DecisionRun
)

// trustGate mediates shell-command execution during resolution.
type trustGate struct {
	mode    TrustMode
	backend backend.Backend
}

// authorize decides whether the command may run. Under TrustPrompt the
// user is asked per command, naming the exact command line.
func (g *trustGate) authorize(command string) (Decision, error) {
	switch g.mode {
	case TrustNone:
		return DecisionSkip, nil
	case TrustUltimate:
		return DecisionRun, nil
	case TrustPrompt:
		confirmed, err := g.backend.Confirm(fmt.Sprintf("Run shell command %q?", command))
		if err != nil {
			return DecisionSkip, err
		}
		if confirmed {
			return DecisionRun, nil
		}
		return DecisionSkip, nil
	default:
		return DecisionSkip, fmt.Errorf("unknown trust mode %q", g.mode)
	}
}
