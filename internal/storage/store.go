package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/escapetime/internal/orbit"
	"github.com/san-kum/escapetime/internal/trace"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrInvalidName = errors.New("storage: invalid run name")
)

var clock = time.Now

const (
	metadataFile = "metadata.json"
	orbitFile    = "orbit.csv"
)

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
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	CRe        float64            `json:"c_re"`
	CIm        float64            `json:"c_im"`
	MaxIter    int                `json:"max_iter"`
	Radius     float64            `json:"radius"`
	Steps      int                `json:"steps"`
	Escaped    bool               `json:"escaped"`
	EscapeStep int                `json:"escape_step"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (m *RunMetadata) Params() orbit.Params {
	return orbit.Params{CRe: m.CRe, CIm: m.CIm, MaxIter: m.MaxIter, Radius: m.Radius}
}

// ValidName reports whether name can be used as the prefix of a run
// directory directly under the data directory.
func ValidName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

// Save writes orbit.csv and then metadata.json into a fresh run directory
// and returns the run id. On failure the run directory is removed.
func (s *Store) Save(name string, p orbit.Params, out orbit.Outcome, records []orbit.Record) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}

	now := clock()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Name:       name,
		Timestamp:  now,
		CRe:        p.CRe,
		CIm:        p.CIm,
		MaxIter:    p.MaxIter,
		Radius:     p.Radius,
		Steps:      out.Steps,
		Escaped:    out.Escaped,
		EscapeStep: out.EscapeStep,
		Metrics:    finiteMetrics(out.Metrics),
	}

	// metadata.json goes last: List only sees runs that have it
	if err := writeOrbit(filepath.Join(runDir, orbitFile), records); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	if err := writeMetadata(filepath.Join(runDir, metadataFile), &meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

func writeMetadata(path string, meta *RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeOrbit(path string, records []orbit.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"step", "z_real", "z_imag", "hex_real", "hex_imag"}); err != nil {
		f.Close()
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Step),
			trace.FormatDecimal(r.Re),
			trace.FormatDecimal(r.Im),
			r.HexRe(),
			r.HexIm(),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encoding/json rejects NaN and Inf, which a diverging orbit can produce.
func finiteMetrics(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadOrbit reads the records of a run back. The hex columns are used so
// the values are bit-identical to what was computed.
func (s *Store) LoadOrbit(runID string) ([]orbit.Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, orbitFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 5

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return []orbit.Record{}, nil
	}

	records := make([]orbit.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		step, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", orbitFile, i+2, err)
		}
		re, err := orbit.ParseHex(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", orbitFile, i+2, err)
		}
		im, err := orbit.ParseHex(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", orbitFile, i+2, err)
		}
		records = append(records, orbit.Record{Step: step, Re: re, Im: im})
	}

	return records, nil
}
