// Package render implements the variable-resolution and rendering
// pipeline: privilege checks, template selection, value resolution under a
// shell trust policy, and placeholder substitution.
package render

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voidpointergroup/complate/internal/backend"
	"github.com/voidpointergroup/complate/internal/config"
	"github.com/voidpointergroup/complate/internal/shell"
)

// Request carries everything one render needs. It is not mutated.
type Request struct {
	Config    *config.Config
	Template  string // empty means "let the backend pick"
	Overrides map[string]string
	Trust     TrustMode
	Privilege Privilege
	Loose     bool
}

// Pipeline composes one render cycle. A pipeline may serve many renders,
// but never concurrently: its backend owns the terminal.
type Pipeline struct {
	backend  backend.Backend
	kind     backend.Kind
	executor shell.Executor
	logger   zerolog.Logger
}

// NewPipeline wires a pipeline from its collaborators. A nil executor
// gets the default local `sh -c` executor.
func NewPipeline(b backend.Backend, kind backend.Kind, executor shell.Executor, logger zerolog.Logger) *Pipeline {
	if executor == nil {
		executor = shell.NewExecutor()
	}
	return &Pipeline{
		backend:  b,
		kind:     kind,
		executor: executor,
		logger:   logger,
	}
}

// Render runs the full pipeline and returns the rendered text. It
// short-circuits on the first failing stage; errors are tagged with the
// stage that produced them.
func (p *Pipeline) Render(ctx context.Context, req Request) (string, error) {
	logger := p.logger.With().Str("request_id", uuid.NewString()).Logger()

	if err := checkPrivilege(req.Privilege, p.kind, req.Overrides, req.Trust); err != nil {
		return "", &StageError{Stage: StagePrivilege, Err: err}
	}

	tmpl, err := p.selectTemplate(req)
	if err != nil {
		return "", &StageError{Stage: StageSelect, Err: err}
	}
	logger.Debug().Str("template", tmpl.Name).Msg("template selected")

	res := &resolver{
		overrides: req.Overrides,
		backend:   p.backend,
		gate:      &trustGate{mode: req.Trust, backend: p.backend},
		executor:  p.executor,
		logger:    logger,
	}
	values, err := res.resolveAll(ctx, tmpl, req.Loose)
	if err != nil {
		return "", &StageError{Stage: StageResolve, Err: err}
	}

	return substitute(tmpl.Content, values), nil
}

func (p *Pipeline) selectTemplate(req Request) (*config.TemplateSpec, error) {
	if req.Template != "" {
		tmpl, ok := req.Config.Lookup(req.Template)
		if !ok {
			return nil, fmt.Errorf("%w: %q", config.ErrUnknownTemplate, req.Template)
		}
		return tmpl, nil
	}

	names := req.Config.Names()
	switch len(names) {
	case 0:
		return nil, config.ErrNoTemplates
	case 1:
		tmpl, _ := req.Config.Lookup(names[0])
		return tmpl, nil
	}

	name, err := p.backend.SelectTemplate(names)
	if err != nil {
		return nil, err
	}
	tmpl, ok := req.Config.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownTemplate, name)
	}
	return tmpl, nil
}
