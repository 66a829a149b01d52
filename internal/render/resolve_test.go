package render

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/voidpointergroup/complate/internal/config"
	"github.com/voidpointergroup/complate/internal/shell"
)

func newTestResolver(b *fakeBackend, exec *spyExecutor, trust TrustMode) *resolver {
	return &resolver{
		overrides: nil,
		backend:   b,
		gate:      &trustGate{mode: trust, backend: b},
		executor:  exec,
		logger:    zerolog.Nop(),
	}
}

func TestResolveOverrideWins(t *testing.T) {
	b := &fakeBackend{answers: map[string]string{"name": "from-prompt"}}
	exec := &spyExecutor{outputs: map[string]string{"whoami": "from-shell"}}

	r := newTestResolver(b, exec, TrustUltimate)
	r.overrides = map[string]string{"name": "from-override"}

	v := config.VariableSpec{
		Name:    "name",
		Default: &config.DefaultSpec{Shell: "whoami"},
	}
	resolved, err := r.resolve(context.Background(), v)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Source != SourceOverride || resolved.Value != "from-override" {
		t.Fatalf("unexpected resolution: %+v", resolved)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("override must not reach the shell, ran %v", exec.calls)
	}
	if b.queryCalls["name"] != 0 {
		t.Fatalf("override must not reach the backend, queried %d times", b.queryCalls["name"])
	}
}

func TestResolveInteractiveBeatsDefaults(t *testing.T) {
	b := &fakeBackend{answers: map[string]string{"name": "Ava"}}
	exec := &spyExecutor{outputs: map[string]string{"whoami": "from-shell"}}

	r := newTestResolver(b, exec, TrustUltimate)

	v := config.VariableSpec{
		Name:    "name",
		Default: &config.DefaultSpec{Shell: "whoami"},
	}
	resolved, err := r.resolve(context.Background(), v)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Source != SourceInteractive || resolved.Value != "Ava" {
		t.Fatalf("unexpected resolution: %+v", resolved)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("interactive answer must preempt the shell, ran %v", exec.calls)
	}
	if b.queryCalls["name"] != 1 {
		t.Fatalf("backend must be queried exactly once, got %d", b.queryCalls["name"])
	}
}

func TestResolveShellComputed(t *testing.T) {
	b := &fakeBackend{}
	exec := &spyExecutor{outputs: map[string]string{"git rev-parse HEAD": "abc123"}}

	r := newTestResolver(b, exec, TrustUltimate)

	v := config.VariableSpec{
		Name:    "rev",
		Default: &config.DefaultSpec{Shell: "git rev-parse HEAD"},
	}
	resolved, err := r.resolve(context.Background(), v)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Source != SourceShellComputed || resolved.Value != "abc123" {
		t.Fatalf("unexpected resolution: %+v", resolved)
	}
}

func TestTrustNoneNeverSpawns(t *testing.T) {
	b := &fakeBackend{}
	exec := &spyExecutor{outputs: map[string]string{"whoami": "from-shell"}}

	r := newTestResolver(b, exec, TrustNone)

	shellOnly := config.VariableSpec{Name: "user", Default: &config.DefaultSpec{Shell: "whoami"}}
	resolved, err := r.resolve(context.Background(), shellOnly)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Source != SourceMissing {
		t.Fatalf("expected missing under trust none, got %+v", resolved)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("trust none must never spawn, ran %v", exec.calls)
	}
	if len(b.confirmCalls) != 0 {
		t.Fatalf("trust none must never confirm, asked %v", b.confirmCalls)
	}
}

func TestTrustPromptConfirm(t *testing.T) {
	t.Run("affirmative runs the command", func(t *testing.T) {
		b := &fakeBackend{confirm: true}
		exec := &spyExecutor{outputs: map[string]string{"date": "2026-08-29"}}

		r := newTestResolver(b, exec, TrustPrompt)
		v := config.VariableSpec{Name: "today", Default: &config.DefaultSpec{Shell: "date"}}

		resolved, err := r.resolve(context.Background(), v)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if resolved.Source != SourceShellComputed || resolved.Value != "2026-08-29" {
			t.Fatalf("unexpected resolution: %+v", resolved)
		}
		if len(b.confirmCalls) != 1 {
			t.Fatalf("expected one confirmation, got %v", b.confirmCalls)
		}
		// the user must see the exact command line
		if want := `Run shell command "date"?`; b.confirmCalls[0] != want {
			t.Fatalf("confirmation %q does not name the command", b.confirmCalls[0])
		}
	})

	t.Run("negative skips the command", func(t *testing.T) {
		b := &fakeBackend{confirm: false}
		exec := &spyExecutor{}

		r := newTestResolver(b, exec, TrustPrompt)
		v := config.VariableSpec{Name: "today", Default: &config.DefaultSpec{Shell: "date"}}

		resolved, err := r.resolve(context.Background(), v)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if resolved.Source != SourceMissing {
			t.Fatalf("expected missing after declined confirmation, got %+v", resolved)
		}
		if len(exec.calls) != 0 {
			t.Fatalf("declined command must not run, ran %v", exec.calls)
		}
	})
}

func TestShellFailureFallsThrough(t *testing.T) {
	b := &fakeBackend{}
	exec := &spyExecutor{err: fmt.Errorf("%w: exit status 1", shell.ErrCommandFailed)}

	r := newTestResolver(b, exec, TrustUltimate)

	// a broken default produces no value but never aborts the render
	v := config.VariableSpec{Name: "a", Default: &config.DefaultSpec{Shell: "false"}}
	resolved, err := r.resolve(context.Background(), v)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Source != SourceMissing {
		t.Fatalf("expected missing for shell-only default, got %+v", resolved)
	}
}

func TestResolveStaticDefault(t *testing.T) {
	r := newTestResolver(&fakeBackend{}, &spyExecutor{}, TrustNone)

	v := config.VariableSpec{Name: "name", Default: &config.DefaultSpec{Static: "World"}}
	resolved, err := r.resolve(context.Background(), v)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Source != SourceStaticDefault || resolved.Value != "World" {
		t.Fatalf("unexpected resolution: %+v", resolved)
	}
}

func TestResolveAllStrictReportsAllMissing(t *testing.T) {
	tmpl := &config.TemplateSpec{
		Name:    "t",
		Content: "{{ a }} {{ b }} {{ c }}",
		Variables: []config.VariableSpec{
			{Name: "a", Required: true},
			{Name: "b", Required: true},
			{Name: "c"}, // optional, missing is fine
		},
	}

	r := newTestResolver(&fakeBackend{}, &spyExecutor{}, TrustNone)

	_, err := r.resolveAll(context.Background(), tmpl, false)
	var missing *MissingVariablesError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVariablesError, got %v", err)
	}
	if len(missing.Names) != 2 || missing.Names[0] != "a" || missing.Names[1] != "b" {
		t.Fatalf("unexpected missing names: %v", missing.Names)
	}
}

func TestResolveAllLooseSubstitutesEmpty(t *testing.T) {
	tmpl := &config.TemplateSpec{
		Name:      "t",
		Content:   "[{{ a }}]",
		Variables: []config.VariableSpec{{Name: "a", Required: true}},
	}

	r := newTestResolver(&fakeBackend{}, &spyExecutor{}, TrustNone)

	values, err := r.resolveAll(context.Background(), tmpl, true)
	if err != nil {
		t.Fatalf("resolveAll: %v", err)
	}
	if len(values) != 1 || values[0].Source != SourceMissing || values[0].Value != "" {
		t.Fatalf("unexpected values: %+v", values)
	}
}

func TestResolveAllDeclarationOrder(t *testing.T) {
	tmpl := &config.TemplateSpec{
		Name: "t",
		Variables: []config.VariableSpec{
			{Name: "z", Default: &config.DefaultSpec{Static: "1"}},
			{Name: "a", Default: &config.DefaultSpec{Static: "2"}},
			{Name: "m", Default: &config.DefaultSpec{Static: "3"}},
		},
	}

	r := newTestResolver(&fakeBackend{}, &spyExecutor{}, TrustNone)

	values, err := r.resolveAll(context.Background(), tmpl, false)
	if err != nil {
		t.Fatalf("resolveAll: %v", err)
	}
	if values[0].Name != "z" || values[1].Name != "a" || values[2].Name != "m" {
		t.Fatalf("declaration order not preserved: %+v", values)
	}
}
