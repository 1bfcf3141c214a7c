package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"moveAnalyzer/internal/model"
)

// FormatErrorLog appends malformed archive entries to a JSONL file, one
// line per entry, tagged with the analysis run that saw it.
type FormatErrorLog struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewFormatErrorLog(path string) *FormatErrorLog {
	return &FormatErrorLog{path: path, now: time.Now}
}

type formatErrorLine struct {
	RunID    string          `json:"run_id"`
	Username string          `json:"username"`
	LoggedAt string          `json:"logged_at"`
	Index    int             `json:"index"`
	Error    string          `json:"error"`
	RawGame  json.RawMessage `json:"raw_game"`
}

// PutFormatErrors appends errs for one run. A nil log or an empty batch is a
// no-op.
func (s *FormatErrorLog) PutFormatErrors(runID, username string, errs []model.FormatError) error {
	if s == nil || len(errs) == 0 {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create errors dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open errors file: %w", err)
	}
	defer file.Close()

	loggedAt := s.now().UTC().Format(time.RFC3339)
	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)
	for _, fe := range errs {
		if err := enc.Encode(formatErrorLine{
			RunID:    runID,
			Username: username,
			LoggedAt: loggedAt,
			Index:    fe.Index,
			Error:    fe.Err,
			RawGame:  rawOrString(fe.Raw),
		}); err != nil {
			return fmt.Errorf("encode format error %d: %w", fe.Index, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush errors file: %w", err)
	}
	return nil
}

// rawOrString keeps valid JSON as is and quotes anything else, so a
// truncated entry still produces a parseable line.
func rawOrString(raw json.RawMessage) json.RawMessage {
	if len(raw) > 0 && json.Valid(raw) {
		return raw
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}
