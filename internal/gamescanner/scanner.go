package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

// MapEntry represents a discoverable map in the data directory
type MapEntry struct {
	Name string // Display name from the map file, or the file name without extension
	Path string // Path to the map file
	Cols int
	Rows int
}

// ScanDataDirectory scans the data directory for loadable maps.
// Files that fail to load are skipped; a directory that cannot be read is an error.
func ScanDataDirectory(dataPath string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var maps []MapEntry

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dataPath, name)

		// One level of nesting, e.g. data/maps/*.json
		if entry.IsDir() {
			nested, err := scanMaps(path)
			if err != nil {
				// Skip directories that can't be read
				continue
			}
			maps = append(maps, nested...)
			continue
		}

		if e, ok := loadEntry(path); ok {
			maps = append(maps, e)
		}
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Path < maps[j].Path })
	return maps, nil
}

// scanMaps finds all map files in a directory
func scanMaps(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if e, ok := loadEntry(filepath.Join(dir, entry.Name())); ok {
			maps = append(maps, e)
		}
	}
	return maps, nil
}

func loadEntry(path string) (MapEntry, bool) {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return MapEntry{}, false
	}
	m, err := maploader.LoadMap(path)
	if err != nil {
		return MapEntry{}, false
	}

	name := m.Data.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return MapEntry{
		Name: name,
		Path: path,
		Cols: m.Grid.Cols(),
		Rows: m.Grid.Rows(),
	}, true
}
