package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/freefall/internal/freefall"
	"github.com/san-kum/freefall/internal/sampler"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

// ErrRunNotFound indicates no run with the requested id exists.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the directory runs are stored under.
func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Body          string    `json:"body"`
	Gravity       float64   `json:"gravity"`
	InitialHeight float64   `json:"initial_height"`
	Mass          float64   `json:"mass"`
	ShowFormulas  bool      `json:"show_formulas"`
	Frames        int       `json:"frames"`
	FallDuration  float64   `json:"fall_duration"`
	ImpactSpeed   float64   `json:"impact_speed"`
}

// Record is one stored frame.
type Record struct {
	Time     float64 `json:"time"`
	Height   float64 `json:"height"`
	Velocity float64 `json:"velocity"`
	Phase    string  `json:"phase"`
}

// Save writes a rendered run and returns its id.
func (s *Store) Save(body string, m freefall.Model, p freefall.Params, frames []sampler.Frame) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("drop_%gm_%d", p.InitialHeight, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	impact := 0.0
	if len(frames) > 0 {
		impact = frames[len(frames)-1].State.Velocity
	}
	meta := RunMetadata{
		ID:            runID,
		Timestamp:     now,
		Body:          body,
		Gravity:       m.Gravity(),
		InitialHeight: p.InitialHeight,
		Mass:          p.Mass,
		ShowFormulas:  p.ShowFormulas,
		Frames:        len(frames),
		FallDuration:  m.FallDuration(p.InitialHeight),
		ImpactSpeed:   impact,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"time", "height", "velocity", "phase"}); err != nil {
		return "", err
	}
	for _, f := range frames {
		row := []string{
			strconv.FormatFloat(f.State.ElapsedTime, 'f', 6, 64),
			strconv.FormatFloat(f.State.Height, 'f', 6, 64),
			strconv.FormatFloat(f.State.Velocity, 'f', 6, 64),
			f.Phase.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadFrames reads the stored frames of a run. Malformed rows are skipped.
func (s *Store) LoadFrames(runID string) ([]Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			continue
		}
		vals := make([]float64, 3)
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		records = append(records, Record{Time: vals[0], Height: vals[1], Velocity: vals[2], Phase: row[3]})
	}

	return records, nil
}

// ExportData is the JSON export of a run.
type ExportData struct {
	RunMetadata
	Samples []Record `json:"samples"`
}

// ExportJSON writes a run's metadata and frames to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	records, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Samples: records})
}

// ExportCSV copies a run's frames to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
