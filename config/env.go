package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ARTM2000/grove"
)

// ErrUndefinedVariable is returned by [ExpandEnv] for a placeholder whose
// variable is not set.
var ErrUndefinedVariable = errors.New("undefined variable")

var placeholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Env returns the variables visible to descriptor files: the contents of
// the given .env files, overridden by the process environment. Files are
// read with godotenv; a missing file is an error.
func Env(files ...string) (map[string]string, error) {
	vars := make(map[string]string)
	if len(files) > 0 {
		fileVars, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("reading env files: %w", err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = v
		}
	}
	return vars, nil
}

// ExpandEnv returns a copy of descriptors with every ${NAME} in literal
// values replaced from vars. References are left alone. The first
// undefined name fails with [ErrUndefinedVariable].
func ExpandEnv(descriptors []grove.BeanDescriptor, vars map[string]string) ([]grove.BeanDescriptor, error) {
	out := make([]grove.BeanDescriptor, len(descriptors))
	for i, d := range descriptors {
		out[i] = grove.BeanDescriptor{ID: d.ID, Class: d.Class}
		if d.Properties == nil {
			continue
		}
		out[i].Properties = make([]grove.PropertyDirective, len(d.Properties))
		for j, p := range d.Properties {
			out[i].Properties[j] = p
			if p.Value == nil {
				continue
			}
			expanded, err := expand(*p.Value, vars)
			if err != nil {
				return nil, fmt.Errorf("bean %q, property %q: %w", d.ID, p.Name, err)
			}
			out[i].Properties[j].Value = &expanded
		}
	}
	return out, nil
}

func expand(s string, vars map[string]string) (string, error) {
	var missing string
	result := placeholder.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		v, ok := vars[name]
		if !ok && missing == "" {
			missing = name
		}
		return v
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s", ErrUndefinedVariable, missing)
	}
	return result, nil
}
