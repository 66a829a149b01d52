package render

import (
	"context"

	"github.com/voidpointergroup/complate/internal/config"
)

// fakeBackend scripts backend behavior for pipeline and resolver tests.
type fakeBackend struct {
	selection    string
	selectionErr error
	selectCalls  int

	answers    map[string]string
	queryErr   error
	queryCalls map[string]int

	confirm      bool
	confirmErr   error
	confirmCalls []string
}

func (f *fakeBackend) SelectTemplate(candidates []string) (string, error) {
	f.selectCalls++
	if f.selectionErr != nil {
		return "", f.selectionErr
	}
	return f.selection, nil
}

func (f *fakeBackend) Query(v config.VariableSpec) (string, bool, error) {
	if f.queryCalls == nil {
		f.queryCalls = make(map[string]int)
	}
	f.queryCalls[v.Name]++
	if f.queryErr != nil {
		return "", false, f.queryErr
	}
	answer, ok := f.answers[v.Name]
	return answer, ok, nil
}

func (f *fakeBackend) Confirm(message string) (bool, error) {
	f.confirmCalls = append(f.confirmCalls, message)
	if f.confirmErr != nil {
		return false, f.confirmErr
	}
	return f.confirm, nil
}

// spyExecutor records every command the resolver tries to run.
type spyExecutor struct {
	outputs map[string]string
	err     error
	calls   []string
}

func (s *spyExecutor) Run(_ context.Context, command string) (string, error) {
	s.calls = append(s.calls, command)
	if s.err != nil {
		return "", s.err
	}
	return s.outputs[command], nil
}

func testConfig(templates ...*config.TemplateSpec) *config.Config {
	cfg := &config.Config{Templates: make(map[string]*config.TemplateSpec, len(templates))}
	for _, tmpl := range templates {
		cfg.Templates[tmpl.Name] = tmpl
	}
	return cfg
}
