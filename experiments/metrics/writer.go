package metrics

import (
	"battle/game"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type BattleRecord struct {
	ID        int
	Seed      uint64
	Formation game.Formation
	Army1     game.Composition
	Army2     game.Composition
	BattleMetric
}

type Setup struct {
	Battles   int           `json:"battles"`
	Workers   int           `json:"workers"`
	Seed      uint64        `json:"seed"`
	Formation string        `json:"formation"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of root for one simulation run.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	path := filepath.Join(w.baseDir, "battles.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create battle records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "seed", "formation", "army1", "army2", "outcome", "rounds",
		"remaining1", "remaining2", "kills1", "kills2", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write battle records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Formation.String(),
			formatComposition(record.Army1),
			formatComposition(record.Army2),
			record.Outcome.String(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Remaining1),
			strconv.Itoa(record.Remaining2),
			strconv.Itoa(record.Kills1),
			strconv.Itoa(record.Kills2),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write battle record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush battle records: %w", err)
	}
	return nil
}

func formatComposition(c game.Composition) string {
	return fmt.Sprintf("%d/%d/%d", c.Soldiers, c.Archers, c.Cavalry)
}
