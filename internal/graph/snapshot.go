package graph

import (
	"fmt"
	"os"
)

// DefaultSnapshotPath is where extractions are persisted unless the caller
// chooses another path.
const DefaultSnapshotPath = "network_dict.json"

// Load reads a snapshot file and parses it as an extraction document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return ParseDocument(data)
}

// Persist writes the exact text received from the extraction client to the
// snapshot path, replacing any previous snapshot wholesale. No
// re-serialization happens: whatever the endpoint emitted is what is
// stored, so a later Load fails if the endpoint's output was not valid.
func Persist(raw []byte, path string) error {
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
