package crater

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prettymuchbryce/reportbake/internal/fs"
)

// Manifest maps crate names to their most recently recorded result.
// It is not safe for concurrent use.
type Manifest struct {
	results map[string]BuildResult
}

// NewManifest creates an empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{results: make(map[string]BuildResult)}
}

// Record stores result for crate, replacing any earlier entry.
// A crate seen under two categories keeps whichever was recorded last.
func (m *Manifest) Record(crate string, result BuildResult) {
	m.results[crate] = result
}

// Get returns the result recorded for crate.
func (m *Manifest) Get(crate string) (BuildResult, bool) {
	r, ok := m.results[crate]
	return r, ok
}

// Len returns the number of crates in the manifest.
func (m *Manifest) Len() int {
	return len(m.results)
}

// Names returns all crate names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.results))
	for name := range m.results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Counts returns the number of crates per result kind.
func (m *Manifest) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, r := range m.results {
		counts[r.Kind]++
	}
	return counts
}

// MarshalJSON encodes the manifest as an object keyed by crate name.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.results)
}

// UnmarshalJSON decodes a manifest previously written by MarshalJSON.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	results := make(map[string]BuildResult)
	if err := json.Unmarshal(data, &results); err != nil {
		return err
	}
	m.results = results
	return nil
}

// Emit encodes the manifest and writes it to path, replacing any existing file.
// Nothing is written if encoding fails.
func Emit(filesystem fs.FileSystem, path string, m *Manifest) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	if err := filesystem.Replace(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
