package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores one raw API response per word as a JSON file.
type FileCache struct {
	rootDir string
}

// NewFileCache creates a FileCache rooted at cacheDirectory.
func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(word string) string {
	return filepath.Join(cache.rootDir, word+".json")
}

// cache returns the stored response for word, invoking f and storing its
// result on a miss.
func (cache *FileCache) cache(word string, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(word)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(word)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, fmt.Errorf("lookup for %s > %w", word, err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

// Entries returns every cached response as an Entry. Words come from the file
// names, so the result is already unique per word.
func (cache *FileCache) Entries() ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(cache.rootDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("filepath.Glob > %w", err)
	}

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		word := strings.TrimSuffix(filepath.Base(path), ".json")
		contents, err := cache.read(word)
		if err != nil {
			return nil, fmt.Errorf("cache.read(%s) > %w", word, err)
		}
		entries = append(entries, Entry{
			Word:       word,
			SourceType: SourceTypeDictionaryAPI,
			Response:   contents,
		})
	}
	return entries, nil
}

func (cache *FileCache) read(word string) ([]byte, error) {
	file, err := os.Open(cache.filePath(word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
