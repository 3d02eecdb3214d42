package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/gelsim/internal/gel"
)

// Store persists finished runs under a base directory, one subdirectory
// per run holding metadata.json and bands.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Preset    string    `json:"preset"`
	Timestamp time.Time `json:"timestamp"`
	Voltage   int       `json:"voltage"`
	Duration  float64   `json:"duration"`
	Fragments int       `json:"fragments"`
	Finished  int       `json:"finished"`
}

// Sample is one per-second snapshot of every fragment position, in
// registry load order.
type Sample struct {
	Time      float64   `json:"time"`
	Positions []float64 `json:"positions"`
}

func (s *Store) Save(preset string, voltage int, duration float64, frags []*gel.Fragment, samples []Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	finished := 0
	for _, f := range frags {
		if f.Finished {
			finished++
		}
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: time.Now(),
		Voltage:   voltage,
		Duration:  duration,
		Fragments: len(frags),
		Finished:  finished,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "bands.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, f := range frags {
		header = append(header, f.ID)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sample := range samples {
		row := []string{strconv.FormatFloat(sample.Time, 'f', 2, 64)}
		for _, pos := range sample.Positions {
			row = append(row, strconv.FormatFloat(pos, 'f', 4, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadBands reads a run's band trace: the fragment IDs from the CSV header
// and one Sample per recorded second.
func (s *Store) LoadBands(runID string) ([]string, []Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "bands.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("storage: run %s has no band data", runID)
	}

	ids := records[0][1:]
	samples := make([]Sample, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		positions := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			pos, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			positions = append(positions, pos)
		}
		samples = append(samples, Sample{Time: t, Positions: positions})
	}

	return ids, samples, nil
}
