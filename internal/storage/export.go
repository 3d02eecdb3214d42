package storage

import (
	"encoding/json"
	"io"
)

type exportRun struct {
	Meta    RunMetadata `json:"meta"`
	Bands   []string    `json:"bands"`
	Samples []Sample    `json:"samples"`
}

// ExportJSON writes a full run (metadata, fragment IDs, per-second
// positions) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, ids []string, samples []Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportRun{Meta: *meta, Bands: ids, Samples: samples})
}
