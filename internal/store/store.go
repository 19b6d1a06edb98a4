// Package store persists completed runs: one directory per run holding
// metadata.json and a trajectory.csv of the recorded frames.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/kvat/celldrift/internal/run"
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
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Particles int                `json:"particles"`
	Steps     int                `json:"steps"`
	Moved     int                `json:"moved"`
	Blocked   int                `json:"blocked"`
	Metrics   map[string]float64 `json:"metrics"`
}

// TrajectoryRow is one particle sample in trajectory.csv.
type TrajectoryRow struct {
	Time     float64 `csv:"time"`
	Particle int     `csv:"particle"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	VX       float64 `csv:"vx"`
	VY       float64 `csv:"vy"`
	VZ       float64 `csv:"vz"`
}

// Save writes a run under a fresh id derived from the scenario name and
// returns that id.
func (s *Store) Save(scenario string, cfg run.Config, result *run.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	particles := 0
	if len(result.Frames) > 0 {
		particles = len(result.Frames[0].Positions)
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Particles: particles,
		Steps:     result.StepsTaken,
		Moved:     result.Moved,
		Blocked:   result.Blocked,
		Metrics:   result.Metrics,
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

	if err := s.writeTrajectory(runDir, result); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeTrajectory(runDir string, result *run.Result) error {
	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	rows := make([]TrajectoryRow, 0, len(result.Frames))
	for _, frame := range result.Frames {
		for i, pt := range frame.Positions {
			rows = append(rows, TrajectoryRow{
				Time:     frame.Time,
				Particle: i,
				X:        pt.X, Y: pt.Y, Z: pt.Z,
				VX: pt.VX, VY: pt.VY, VZ: pt.VZ,
			})
		}
	}

	if err := gocsv.Marshal(rows, csvFile); err != nil {
		return fmt.Errorf("writing trajectory: %w", err)
	}
	return nil
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

// LoadTrajectory reads a run's recorded samples back.
func (s *Store) LoadTrajectory(runID string) ([]TrajectoryRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []TrajectoryRow{}
	if err := gocsv.Unmarshal(file, &rows); err != nil {
		return nil, fmt.Errorf("reading trajectory: %w", err)
	}
	return rows, nil
}

// TrajectoryPath returns where a run's csv lives, for export commands.
func (s *Store) TrajectoryPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "trajectory.csv")
}
