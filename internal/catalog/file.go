package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}

// WriteYamlFile writes data as YAML to path, creating the file if needed.
func WriteYamlFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(data)
}

// LoadLevelFile reads a single level YAML file.
func LoadLevelFile(path string) (Level, error) {
	return readYamlFile[Level](path)
}

// LevelFiles lists the level YAML files in directory, sorted by name.
func LevelFiles(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", directory, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(directory, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Load reads all level YAML files from directory, sorted by file name so the
// catalog order is stable regardless of directory iteration order.
func Load(directory string) (*Catalog, error) {
	paths, err := LevelFiles(directory)
	if err != nil {
		return nil, fmt.Errorf("LevelFiles(%s) > %w", directory, err)
	}

	levels := make([]Level, 0, len(paths))
	for _, path := range paths {
		level, err := readYamlFile[Level](path)
		if err != nil {
			return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
		}
		levels = append(levels, level)
	}

	return New(levels), nil
}
