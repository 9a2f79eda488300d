package placement

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// resultTimeLayout matches the timestamp format of the chat history.
const resultTimeLayout = "2006-01-02 15:04:05"

var resultHeader = []string{"Name", "Prediction", "Time", "Suggestions"}

// ResultLog is an append-only CSV record of placement predictions.
// A header row is written when the file is new or empty.
type ResultLog struct {
	mu   sync.Mutex
	path string
}

// NewResultLog creates a ResultLog writing to path. The parent directory is
// created; the file itself is created lazily on first append.
func NewResultLog(path string) (*ResultLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create placement log directory: %w", err)
	}
	return &ResultLog{path: path}, nil
}

// Append writes one prediction row, preceded by the header if the file is
// new or empty. Suggestions are joined with "; " into a single column.
func (l *ResultLog) Append(name, prediction string, at time.Time, suggestions []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open placement log: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat placement log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(resultHeader); err != nil {
			return fmt.Errorf("write placement log header: %w", err)
		}
	}

	row := []string{name, prediction, at.Format(resultTimeLayout), strings.Join(suggestions, "; ")}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write placement log row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush placement log: %w", err)
	}

	return nil
}
