package schema

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir registers every schema document found in dir. Files ending in
// .yaml, .yml, or .json are parsed; other files are ignored. A file that
// fails to parse or validate aborts the load.
func (r *Registry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema directory %s: %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var s *Schema
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			s, err = loadYAMLFile(path)
		case ".json":
			s, err = loadJSONFile(path)
		default:
			continue
		}
		if err != nil {
			return loaded, err
		}

		if err := r.Register(s); err != nil {
			return loaded, fmt.Errorf("schema file %s: %w", path, err)
		}
		slog.Debug("registered schema from file", "name", s.Name, "path", path)
		loaded++
	}
	return loaded, nil
}

func loadYAMLFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}

func loadJSONFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}
