// Package config provides the template configuration model and loader.
package config

import (
	"errors"
	"sort"
)

// Configuration errors.
var (
	// ErrNoTemplates indicates the configuration declares zero templates.
	ErrNoTemplates = errors.New("configuration declares no templates")
	// ErrUnknownTemplate indicates a template name not present in the configuration.
	ErrUnknownTemplate = errors.New("unknown template")
)

// Config is the parsed template configuration for one invocation.
// It is read-only after loading.
type Config struct {
	Version   int
	Templates map[string]*TemplateSpec
	Source    string // file path or "inline"
}

// TemplateSpec is a single named template with its declared variables.
type TemplateSpec struct {
	Name      string
	Content   string
	Variables []VariableSpec
}

// VariableSpec declares one variable of a template. Declaration order is
// meaningful: interactive backends prompt in this order.
type VariableSpec struct {
	Name     string
	Prompt   string
	Default  *DefaultSpec
	Required bool
}

// DefaultSpec is the fallback value of a variable: either a static string
// or a shell command whose stdout becomes the value. Exactly one is set.
type DefaultSpec struct {
	Static string
	Shell  string
}

// IsShell reports whether the default is a shell command.
func (d *DefaultSpec) IsShell() bool {
	return d != nil && d.Shell != ""
}

// Lookup returns the template with the given name.
func (c *Config) Lookup(name string) (*TemplateSpec, bool) {
	tmpl, ok := c.Templates[name]
	return tmpl, ok
}

// Names returns all template names in deterministic (sorted) order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PromptText returns the text an interactive backend should show for the
// variable: the declared prompt, or the variable name if none was given.
func (v VariableSpec) PromptText() string {
	if v.Prompt != "" {
		return v.Prompt
	}
	return v.Name
}
