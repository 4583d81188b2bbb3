package gamescanner

import (
	"os"
	"path/filepath"
	"testing"
)

const boxMap = `{"name": "Box", "tile_size": 60, "player_spawn": {"x": 90, "y": 90},
	"tiles": [[1, 1, 1], [1, 0, 1], [1, 1, 1]]}`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDataDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "box.json"), boxMap)
	writeFile(t, filepath.Join(dir, "maps", "unnamed.json"), `{"tile_size": 30, "player_spawn": {"x": 15, "y": 15}, "tiles": [[0, 0]]}`)
	writeFile(t, filepath.Join(dir, "maps", "broken.json"), `{"tiles": [`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a map")
	writeFile(t, filepath.Join(dir, ".hidden", "box.json"), boxMap)

	maps, err := ScanDataDirectory(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(maps) != 2 {
		t.Fatalf("Expected 2 maps, got %d: %+v", len(maps), maps)
	}

	if maps[0].Name != "Box" || maps[0].Cols != 3 || maps[0].Rows != 3 {
		t.Errorf("Unexpected first entry %+v", maps[0])
	}
	if maps[1].Name != "unnamed" {
		t.Errorf("Expected name from file name, got '%s'", maps[1].Name)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := ScanDataDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
