package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"go.uber.org/zap"
)

const (
	usersFile       = "users.txt"
	withdrawalsFile = "withdrawals.txt"
	receiptsFile    = "receipts.txt"
)

// Manager serializes the ledger collections to flat JSON files. Saves are
// all-or-nothing (write to a temp file, then rename over the target); loads
// are tolerant: a bad record is skipped, a wrong-shape file keeps defaults,
// and an unparseable file is copied aside so the process keeps running.
type Manager struct {
	dir string
}

func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Manager{dir: dir}, nil
}

func (m *Manager) usersPath() string       { return filepath.Join(m.dir, usersFile) }
func (m *Manager) withdrawalsPath() string { return filepath.Join(m.dir, withdrawalsFile) }
func (m *Manager) receiptsPath() string    { return filepath.Join(m.dir, receiptsFile) }

func (m *Manager) SaveUsers(s *ledger.Store) error {
	return m.save(m.usersPath(), "users", s.Users())
}

func (m *Manager) SaveWithdrawals(s *ledger.Store) error {
	return m.save(m.withdrawalsPath(), "withdrawals", s.Withdrawals())
}

func (m *Manager) SaveReceipts(s *ledger.Store) error {
	return m.save(m.receiptsPath(), "receipts", s.Receipts())
}

// SaveAll flushes all three collections unconditionally. Used on shutdown.
func (m *Manager) SaveAll(s *ledger.Store) {
	if err := m.SaveUsers(s); err != nil {
		zap.L().Error("failed to save users", zap.Error(err))
	}
	if err := m.SaveWithdrawals(s); err != nil {
		zap.L().Error("failed to save withdrawals", zap.Error(err))
	}
	if err := m.SaveReceipts(s); err != nil {
		zap.L().Error("failed to save receipts", zap.Error(err))
	}
}

func (m *Manager) save(path, collection string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", collection, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}

// LoadAll loads all three collections. Called once at process start.
func (m *Manager) LoadAll(s *ledger.Store) {
	m.LoadUsers(s)
	m.LoadWithdrawals(s)
	m.LoadReceipts(s)
}

func (m *Manager) LoadUsers(s *ledger.Store) {
	records, ok := m.readRecords(m.usersPath(), "users")
	if !ok {
		return
	}
	users := make([]*models.User, 0, len(records))
	for _, raw := range records {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			zap.L().Error("skipping undecodable user record", zap.Error(err))
			continue
		}
		users = append(users, &u)
	}
	s.ReplaceUsers(users)
	zap.L().Info("users loaded", zap.Int("count", len(users)))
}

func (m *Manager) LoadWithdrawals(s *ledger.Store) {
	records, ok := m.readRecords(m.withdrawalsPath(), "withdrawals")
	if !ok {
		return
	}
	ws := make([]*models.WithdrawalRequest, 0, len(records))
	for _, raw := range records {
		var w models.WithdrawalRequest
		if err := json.Unmarshal(raw, &w); err != nil {
			zap.L().Error("skipping undecodable withdrawal record", zap.Error(err))
			continue
		}
		ws = append(ws, &w)
	}
	s.ReplaceWithdrawals(ws)
	zap.L().Info("withdrawals loaded", zap.Int("count", len(ws)))
}

func (m *Manager) LoadReceipts(s *ledger.Store) {
	records, ok := m.readRecords(m.receiptsPath(), "receipts")
	if !ok {
		return
	}
	rs := make([]*models.PaymentReceipt, 0, len(records))
	for _, raw := range records {
		var r models.PaymentReceipt
		if err := json.Unmarshal(raw, &r); err != nil {
			zap.L().Error("skipping undecodable receipt record", zap.Error(err))
			continue
		}
		rs = append(rs, &r)
	}
	s.ReplaceReceipts(rs)
	zap.L().Info("receipts loaded", zap.Int("count", len(rs)))
}

// readRecords reads one durable file and splits it into raw records. The
// second return is false when the in-memory collection should keep its
// default: file absent, file blank, or file unreadable. A file that is valid
// JSON of the wrong top-level shape also keeps defaults; a file that does
// not parse at all is quarantined under a timestamp-suffixed backup name and
// the collection starts empty.
func (m *Manager) readRecords(path, collection string) ([]json.RawMessage, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Error("failed to read collection file",
				zap.String("collection", collection), zap.Error(err))
		}
		return nil, false
	}

	if len(bytes.TrimSpace(data)) == 0 {
		zap.L().Info("collection file is empty",
			zap.String("collection", collection))
		return nil, false
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		if json.Valid(data) {
			// Parsed, but not the array we expect. No partial load.
			zap.L().Error("collection file has unexpected shape, keeping defaults",
				zap.String("collection", collection))
			return nil, false
		}
		m.quarantine(path, collection)
		return nil, true
	}
	return records, true
}

// quarantine copies a corrupt file aside so the data survives for manual
// inspection while the process continues with an empty collection.
func (m *Manager) quarantine(path, collection string) {
	backup := fmt.Sprintf("%s.backup.%d", path, time.Now().UnixMilli())
	data, err := os.ReadFile(path)
	if err == nil {
		err = os.WriteFile(backup, data, 0o644)
	}
	if err != nil {
		zap.L().Error("failed to back up corrupt collection file",
			zap.String("collection", collection), zap.Error(err))
		return
	}
	zap.L().Warn("corrupt collection file backed up",
		zap.String("collection", collection), zap.String("backup", backup))
}
