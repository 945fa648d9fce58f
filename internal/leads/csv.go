package leads

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Backup is the last-resort capture for leads the webhook could not
// deliver.
type Backup interface {
	Store(lead Lead) error
}

var csvHeader = []string{
	"submitted_at", "session_id", "name", "company", "email",
	"phone", "country", "message", "source", "cart",
}

// CSVBackup appends leads to a local CSV file. Writes are serialized;
// the header is written once when the file is created.
type CSVBackup struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewCSVBackup creates the backup file's directory if needed.
func NewCSVBackup(path string) (*CSVBackup, error) {
	if path == "" {
		return nil, fmt.Errorf("csv backup path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating csv backup dir: %w", err)
		}
	}
	return &CSVBackup{path: path, now: time.Now}, nil
}

func (b *CSVBackup) Store(lead Lead) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	info, statErr := os.Stat(b.path)
	fresh := statErr != nil || info.Size() == 0

	file, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening csv backup: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if fresh {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("writing csv header: %w", err)
		}
	}

	cartJSON := ""
	if lead.Cart != nil {
		raw, err := json.Marshal(lead.Cart)
		if err != nil {
			return fmt.Errorf("encoding cart for csv: %w", err)
		}
		cartJSON = string(raw)
	}

	row := []string{
		b.now().UTC().Format(time.RFC3339),
		lead.SessionID,
		lead.Name,
		lead.Company,
		lead.Email,
		lead.Phone,
		lead.Country,
		lead.Message,
		lead.Source,
		cartJSON,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv backup: %w", err)
	}
	return nil
}
