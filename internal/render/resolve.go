package render

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/voidpointergroup/complate/internal/config"
	"github.com/voidpointergroup/complate/internal/shell"
)

// Source records where a variable's value came from.
type Source string

const (
	SourceOverride      Source = "override"
	SourceInteractive   Source = "interactive"
	SourceShellComputed Source = "shell"
	SourceStaticDefault Source = "static"
	SourceMissing       Source = "missing"
)

// ResolvedValue is the final value of one variable for one render.
type ResolvedValue struct {
	Name   string
	Value  string
	Source Source
}

// resolver computes values for a template's variables in declaration
// order. Each lookup in the chain is consulted once per variable; the
// first one that produces a value wins.
type resolver struct {
	overrides map[string]string
	backend   interface {
		Query(v config.VariableSpec) (string, bool, error)
	}
	gate     *trustGate
	executor shell.Executor
	logger   zerolog.Logger
}

type lookup func(ctx context.Context, v config.VariableSpec) (string, Source, bool, error)

func (r *resolver) chain() []lookup {
	return []lookup{
		r.fromOverride,
		r.fromBackend,
		r.fromShellDefault,
		r.fromStaticDefault,
	}
}

// resolveAll computes one ResolvedValue per declared variable, then
// applies the completeness policy: strict mode fails when any required
// variable is missing; loose mode substitutes empty strings.
func (r *resolver) resolveAll(ctx context.Context, tmpl *config.TemplateSpec, loose bool) ([]ResolvedValue, error) {
	values := make([]ResolvedValue, 0, len(tmpl.Variables))
	for _, variable := range tmpl.Variables {
		value, err := r.resolve(ctx, variable)
		if err != nil {
			return nil, err
		}
		r.logger.Debug().
			Str("variable", value.Name).
			Str("source", string(value.Source)).
			Msg("variable resolved")
		values = append(values, value)
	}

	var missing []string
	for _, value := range values {
		if value.Source == SourceMissing && requiredVariable(tmpl, value.Name) {
			missing = append(missing, value.Name)
		}
	}
	if len(missing) > 0 && !loose {
		return nil, &MissingVariablesError{Names: missing}
	}

	return values, nil
}

func (r *resolver) resolve(ctx context.Context, v config.VariableSpec) (ResolvedValue, error) {
	for _, next := range r.chain() {
		value, source, ok, err := next(ctx, v)
		if err != nil {
			return ResolvedValue{}, err
		}
		if ok {
			return ResolvedValue{Name: v.Name, Value: value, Source: source}, nil
		}
	}
	return ResolvedValue{Name: v.Name, Source: SourceMissing}, nil
}

func (r *resolver) fromOverride(_ context.Context, v config.VariableSpec) (string, Source, bool, error) {
	value, ok := r.overrides[v.Name]
	if !ok {
		return "", "", false, nil
	}
	return value, SourceOverride, true, nil
}

func (r *resolver) fromBackend(_ context.Context, v config.VariableSpec) (string, Source, bool, error) {
	value, ok, err := r.backend.Query(v)
	if err != nil {
		return "", "", false, err
	}
	if !ok {
		return "", "", false, nil
	}
	return value, SourceInteractive, true, nil
}

func (r *resolver) fromShellDefault(ctx context.Context, v config.VariableSpec) (string, Source, bool, error) {
	if !v.Default.IsShell() {
		return "", "", false, nil
	}

	decision, err := r.gate.authorize(v.Default.Shell)
	if err != nil {
		return "", "", false, err
	}
	if decision != DecisionRun {
		r.logger.Debug().Str("variable", v.Name).Msg("shell default skipped by trust gate")
		return "", "", false, nil
	}

	r.logger.Info().Str("variable", v.Name).Str("command", v.Default.Shell).Msg("running shell default")
	output, err := r.executor.Run(ctx, v.Default.Shell)
	if err != nil {
		// A broken default must not abort an otherwise-satisfiable
		// render: fall through to static default or missing.
		if errors.Is(err, shell.ErrCommandFailed) {
			r.logger.Warn().Str("variable", v.Name).Err(err).Msg("shell default produced no value")
			return "", "", false, nil
		}
		return "", "", false, err
	}
	return output, SourceShellComputed, true, nil
}

func (r *resolver) fromStaticDefault(_ context.Context, v config.VariableSpec) (string, Source, bool, error) {
	if v.Default == nil || v.Default.IsShell() {
		return "", "", false, nil
	}
	return v.Default.Static, SourceStaticDefault, true, nil
}

func requiredVariable(tmpl *config.TemplateSpec, name string) bool {
	for _, v := range tmpl.Variables {
		if v.Name == name {
			return v.Required
		}
	}
	return false
}
