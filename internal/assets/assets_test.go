package assets

import (
	"io/fs"
	"testing"
)

func TestManifestFilesExist(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Manifest {
		if seen[e.Key] {
			t.Errorf("duplicate key %q", e.Key)
		}
		seen[e.Key] = true

		data, err := fs.ReadFile(FS(), e.Path)
		if err != nil {
			t.Errorf("asset %q: %v", e.Key, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("asset %q is empty", e.Key)
		}
	}

	if len(Manifest) != 8 {
		t.Errorf("manifest has %d entries, expected 8", len(Manifest))
	}
}
