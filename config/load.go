package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ARTM2000/grove"
	"github.com/ARTM2000/grove/internal/ctxlog"
)

// ErrUnsupportedFormat is returned by [LoadFile] for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported descriptor format")

// LoadFile reads a descriptor file, choosing the format from its
// extension: .xml, .hcl, .yaml or .yml. vars are passed to HCL files as
// env.NAME; see [Env].
func LoadFile(ctx context.Context, path string, vars map[string]string) ([]grove.BeanDescriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading descriptor file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var descriptors []grove.BeanDescriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		descriptors, err = LoadXML(bytes.NewReader(src))
	case ".hcl":
		descriptors, err = LoadHCL(path, src, vars)
	case ".yaml", ".yml":
		descriptors, err = LoadYAML(bytes.NewReader(src))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("Descriptor file loaded.", "path", path, "beans", len(descriptors))
	return descriptors, nil
}

// LoadFiles loads every path in order and concatenates the results.
func LoadFiles(ctx context.Context, paths []string, vars map[string]string) ([]grove.BeanDescriptor, error) {
	var all []grove.BeanDescriptor
	for _, path := range paths {
		descriptors, err := LoadFile(ctx, path, vars)
		if err != nil {
			return nil, err
		}
		all = append(all, descriptors...)
	}
	return all, nil
}
