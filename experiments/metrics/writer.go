package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <outDir>/<timestamp>-<batch> for one batch's files.
func NewWriter(outDir string, batch uuid.UUID) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outDir, fmt.Sprintf("%s-%s", timestamp, batch))
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "index", "seed", "strategies", "winner", "winner_strategy", "round", "turns", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Index),
			strconv.FormatUint(record.Seed, 10),
			strings.Join(record.Strategies, ";"),
			strconv.Itoa(record.Winner),
			record.WinnerStrategy(),
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Turns),
			record.Duration.String(),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteCardStats(summary Summary) error {
	header := []string{"card", "winner_total", "p_present_win", "p_present_loss"}
	for _, cutoff := range RoundCutoffs {
		header = append(header, fmt.Sprintf("p_present_win_before_%d", cutoff))
	}
	for _, cutoff := range RoundCutoffs {
		header = append(header, fmt.Sprintf("p_present_loss_before_%d", cutoff))
	}

	rows := make([][]string, 0, len(summary.Cards))
	for _, stats := range summary.Cards {
		row := []string{
			stats.Card.String(),
			strconv.Itoa(stats.WinnerTotal),
			formatProbability(stats.PresentWin),
			formatProbability(stats.PresentLoss),
		}
		for _, p := range stats.PresentWinByRound {
			row = append(row, formatProbability(p))
		}
		for _, p := range stats.PresentLossByRound {
			row = append(row, formatProbability(p))
		}
		rows = append(rows, row)
	}
	return w.write("cards.csv", header, rows)
}

func (w *Writer) WriteStrategyWins(summary Summary) error {
	names := make([]string, 0, len(summary.StrategyWins))
	for name := range summary.StrategyWins {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(summary.StrategyWins[name])})
	}
	return w.write("strategies.csv", []string{"strategy", "wins"}, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}
