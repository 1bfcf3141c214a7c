package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"moveAnalyzer/internal/model"
)

// CSVStorage appends analysis records to a CSV file with a header row.
type CSVStorage struct {
	path string
	mu   sync.Mutex
}

func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

// Put scans the whole file for rec.GameID before appending.
func (s *CSVStorage) Put(_ context.Context, rec model.AnalysisRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.contains(rec.GameID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create output dir: %w", err)
		}
	}

	writeHeader := false
	if stat, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("stat output file: %w", err)
		}
		writeHeader = true
	} else if stat.Size() == 0 {
		writeHeader = true
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(model.AnalysisColumns); err != nil {
			return false, fmt.Errorf("write header: %w", err)
		}
	}
	if err := writer.Write(rec.Values()); err != nil {
		return false, fmt.Errorf("write record: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return false, fmt.Errorf("flush output: %w", err)
	}
	return true, nil
}

func (s *CSVStorage) Close() error { return nil }

func (s *CSVStorage) contains(gameID string) (bool, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("open existing log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read header: %w", err)
	}
	idCol := 0
	for i, name := range header {
		if name == "game_id" {
			idCol = i
			break
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read existing log: %w", err)
		}
		if idCol < len(row) && row[idCol] == gameID {
			return true, nil
		}
	}
}

// List returns every row of the log in file order.
func (s *CSVStorage) List(_ context.Context) ([]model.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open existing log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read existing log: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	out := make([]model.AnalysisRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(model.AnalysisColumns) {
			continue
		}
		out = append(out, model.AnalysisRecord{
			GameID:      row[0],
			Date:        row[1],
			WhitePlayer: row[2],
			WhiteRating: row[3],
			BlackPlayer: row[4],
			BlackRating: row[5],
			Result:      row[6],
			TimeControl: row[7],
			Analysis:    row[8],
			PGN:         row[9],
		})
	}
	return out, nil
}
