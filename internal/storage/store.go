package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jakujobi/Math374Project1/internal/diff"
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

type OptimalMetadata struct {
	H        float64 `json:"h"`
	MinError float64 `json:"min_error"`
}

type SweepMetadata struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	HMinExp        int             `json:"h_min_exp"`
	HMaxExp        int             `json:"h_max_exp"`
	Points         int             `json:"points"`
	Eps            float64         `json:"eps"`
	OptimalForward OptimalMetadata `json:"optimal_forward"`
	OptimalCentral OptimalMetadata `json:"optimal_central"`
}

var seriesHeader = []string{"h", "err_fwd", "err_ctr", "trunc_fwd", "trunc_ctr", "round_fwd", "round_ctr"}

func (s *Store) Save(minExp, maxExp, points int, eps float64, series diff.Series, pts diff.OptimalPoints) (string, error) {
	sweepID := fmt.Sprintf("sweep_%d", time.Now().Unix())
	sweepDir := filepath.Join(s.baseDir, sweepID)

	if err := os.MkdirAll(sweepDir, 0755); err != nil {
		return "", err
	}

	meta := SweepMetadata{
		ID:             sweepID,
		Timestamp:      time.Now(),
		HMinExp:        minExp,
		HMaxExp:        maxExp,
		Points:         points,
		Eps:            eps,
		OptimalForward: OptimalMetadata{H: pts.Forward.H, MinError: pts.Forward.MinError},
		OptimalCentral: OptimalMetadata{H: pts.Central.H, MinError: pts.Central.MinError},
	}

	metaPath := filepath.Join(sweepDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(sweepDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(seriesHeader); err != nil {
		return "", err
	}

	for _, rec := range series {
		row := make([]string, 0, len(seriesHeader))
		for _, v := range []float64{rec.H, rec.ErrForward, rec.ErrCentral, rec.TruncForward, rec.TruncCentral, rec.RoundForward, rec.RoundCentral} {
			// Shortest round-tripping form; the values span ~30 decades.
			row = append(row, strconv.FormatFloat(v, 'e', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return sweepID, nil
}

func (s *Store) List() ([]SweepMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SweepMetadata{}, nil
		}
		return nil, err
	}

	sweeps := make([]SweepMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta SweepMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sweeps = append(sweeps, meta)
	}

	return sweeps, nil
}

func (s *Store) Load(sweepID string) (*SweepMetadata, error) {
	metaPath := filepath.Join(s.baseDir, sweepID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta SweepMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(sweepID string) (diff.Series, error) {
	csvPath := filepath.Join(s.baseDir, sweepID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return diff.Series{}, nil
	}

	series := make(diff.Series, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) != len(seriesHeader) {
			return nil, fmt.Errorf("sweep %s: row %d has %d fields, want %d", sweepID, i, len(row), len(seriesHeader))
		}

		vals := make([]float64, len(row))
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("sweep %s: row %d field %q: %w", sweepID, i, field, err)
			}
			vals[j] = v
		}

		series = append(series, diff.Record{
			H:            vals[0],
			ErrForward:   vals[1],
			ErrCentral:   vals[2],
			TruncForward: vals[3],
			TruncCentral: vals[4],
			RoundForward: vals[5],
			RoundCentral: vals[6],
		})
	}

	return series, nil
}
