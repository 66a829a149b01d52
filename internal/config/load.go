package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type rawConfig struct {
	Version   int                    `yaml:"version"`
	Templates map[string]rawTemplate `yaml:"templates"`
}

type rawTemplate struct {
	Content rawContent    `yaml:"content"`
	Values  []rawVariable `yaml:"values,omitempty"`
}

type rawContent struct {
	Inline string `yaml:"inline,omitempty"`
	File   string `yaml:"file,omitempty"`
}

type rawVariable struct {
	Name     string      `yaml:"name"`
	Prompt   string      `yaml:"prompt,omitempty"`
	Default  *rawDefault `yaml:"default,omitempty"`
	Required bool        `yaml:"required,omitempty"`
}

type rawDefault struct {
	Static string `yaml:"static,omitempty"`
	Shell  string `yaml:"shell,omitempty"`
}

// Load reads and validates a configuration file. Template content declared
// as a file reference is resolved relative to the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes configuration bytes. baseDir anchors relative content file
// references; an empty baseDir forbids them.
func Parse(data []byte, baseDir string) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	cfg := &Config{
		Version:   raw.Version,
		Templates: make(map[string]*TemplateSpec, len(raw.Templates)),
		Source:    "inline",
	}

	for name, rt := range raw.Templates {
		tmpl, err := buildTemplate(name, rt, baseDir)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		cfg.Templates[name] = tmpl
	}

	return cfg, nil
}

func buildTemplate(name string, rt rawTemplate, baseDir string) (*TemplateSpec, error) {
	content, err := resolveContent(rt.Content, baseDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rt.Values))
	variables := make([]VariableSpec, 0, len(rt.Values))
	for _, rv := range rt.Values {
		if rv.Name == "" {
			return nil, fmt.Errorf("variable without a name")
		}
		if _, dup := seen[rv.Name]; dup {
			return nil, fmt.Errorf("duplicate variable %q", rv.Name)
		}
		seen[rv.Name] = struct{}{}

		def, err := resolveDefault(rv)
		if err != nil {
			return nil, err
		}

		variables = append(variables, VariableSpec{
			Name:     rv.Name,
			Prompt:   rv.Prompt,
			Default:  def,
			Required: rv.Required,
		})
	}

	return &TemplateSpec{
		Name:      name,
		Content:   content,
		Variables: variables,
	}, nil
}

func resolveContent(rc rawContent, baseDir string) (string, error) {
	switch {
	case rc.Inline != "" && rc.File != "":
		return "", fmt.Errorf("content declares both inline and file")
	case rc.Inline != "":
		return rc.Inline, nil
	case rc.File != "":
		if baseDir == "" {
			return "", fmt.Errorf("content file reference %q not allowed without a base directory", rc.File)
		}
		path := rc.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read content file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("content declares neither inline nor file")
	}
}

func resolveDefault(rv rawVariable) (*DefaultSpec, error) {
	if rv.Default == nil {
		return nil, nil
	}
	switch {
	case rv.Default.Static != "" && rv.Default.Shell != "":
		return nil, fmt.Errorf("variable %q: default declares both static and shell", rv.Name)
	case rv.Default.Static == "" && rv.Default.Shell == "":
		return nil, fmt.Errorf("variable %q: default declares neither static nor shell", rv.Name)
	case rv.Default.Shell != "":
		return &DefaultSpec{Shell: rv.Default.Shell}, nil
	default:
		return &DefaultSpec{Static: rv.Default.Static}, nil
	}
}
