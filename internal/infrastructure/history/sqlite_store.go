package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/pkg/filesystem"
	"github.com/hwittich/rvx/internal/ports"
)

// SQLiteStore persists operation records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.rvx/history/history.db database.
func NewSQLiteStore() *SQLiteStore {
	return newSQLiteStoreAt(filepath.Join(filesystem.UserHomeDir(), ".rvx", "history", "history.db"))
}

func newSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		// fallback to file store
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		operation TEXT,
		target TEXT,
		status TEXT,
		exit_code INTEGER,
		message TEXT,
		elevated INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.OperationRecord) error {
	if s.db == nil {
		return (&FileStore{path: s.path}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO operations
		(timestamp, operation, target, status, exit_code, message, elevated, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		string(record.Operation),
		record.Target,
		string(record.Status),
		record.ExitCode,
		record.Message,
		boolToInt(record.Elevated),
		record.DurationMS,
	)
	return err
}

// Records returns operation entries (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.OperationRecord, error) {
	if s.db == nil {
		return (&FileStore{path: s.path}).Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, operation, target, status, exit_code, message, elevated, duration_ms FROM operations")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE operation LIKE ? OR target LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.OperationRecord
	for rows.Next() {
		var rec domain.OperationRecord
		var ts, op, status string
		var elevated int
		if err := rows.Scan(&ts, &op, &rec.Target, &status, &rec.ExitCode, &rec.Message, &elevated, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Operation = domain.Operation(op)
		rec.Status = domain.OperationStatus(status)
		rec.Elevated = elevated == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all operation entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: s.path}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM operations")
	return err
}

// ExportJSON writes the operations table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		if rec.Timestamp.IsZero() {
			rec.Timestamp = time.Now()
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
