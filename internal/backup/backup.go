package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
)

const (
	minuteStamp = "20060102-1504"
	secondStamp = "20060102-150405"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int
}

// Manager handles backup operations for a file-backed store.
// SQLite databases are copied with VACUUM INTO; JSON documents are copied verbatim.
type Manager struct {
	dbPath    string
	backupDir string
	suffix    string
	clock     clock.Clock
}

// NewManager creates a new backup manager
func NewManager(dbPath string) *Manager {
	return NewManagerWithClock(dbPath, clock.System())
}

// NewManagerWithClock creates a backup manager whose file stamps come from clk.
func NewManagerWithClock(dbPath string, clk clock.Clock) *Manager {
	suffix := constants.BackupFileSuffix
	if strings.EqualFold(filepath.Ext(dbPath), ".json") {
		suffix = ".json"
	}
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		suffix:    suffix,
		clock:     clk,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) isSQLite() bool {
	return m.suffix == constants.BackupFileSuffix
}

// CreateBackup creates a new backup of the database and rotates old ones.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// skipRotation keeps the pre-restore snapshot from evicting the backup being restored.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if m.isSQLite() {
		err = m.backupDatabase(backupPath)
	} else {
		err = copyFile(m.dbPath, backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}
	logger.Debug("backup created", "path", backupPath)

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("failed to rotate old backups", "err", err)
		}
	}

	return backupPath, nil
}

// nextBackupPath picks a minute-stamped name, falling back to seconds and then a counter.
func (m *Manager) nextBackupPath() (string, error) {
	now := m.clock.Now()
	candidate := m.pathFor(now.Format(minuteStamp), 0)
	if !exists(candidate) {
		return candidate, nil
	}

	stamp := now.Format(secondStamp)
	candidate = m.pathFor(stamp, 0)
	for counter := 1; exists(candidate); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		candidate = m.pathFor(stamp, counter)
	}
	return candidate, nil
}

func (m *Manager) pathFor(stamp string, counter int) string {
	name := constants.BackupFilePrefix + stamp
	if counter > 0 {
		name = fmt.Sprintf("%s-%d", name, counter)
	}
	return filepath.Join(m.backupDir, name+m.suffix)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (m *Manager) backupDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	// VACUUM INTO needs SQLite 3.27+; older engines fall back to a plain copy.
	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		srcDB.Close()
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		timestamp, seq, ok := parseStamp(stamp)
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{Path: path, Timestamp: timestamp, Size: info.Size(), seq: seq})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].seq > backups[j].seq
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// parseStamp accepts YYYYMMDD-HHMM or YYYYMMDD-HHMMSS with an optional -N counter.
func parseStamp(stamp string) (time.Time, int, bool) {
	seq := 0
	parts := strings.Split(stamp, "-")
	if len(parts) > 2 && isDigits(parts[len(parts)-1]) {
		seq, _ = strconv.Atoi(parts[len(parts)-1])
		stamp = strings.Join(parts[:len(parts)-1], "-")
	}
	if ts, err := time.Parse(minuteStamp, stamp); err == nil {
		// minute stamps are always taken before any second-stamped sibling
		return ts, seq - 1, true
	}
	if ts, err := time.Parse(secondStamp, stamp); err == nil {
		return ts, seq, true
	}
	return time.Time{}, 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// rotateBackups removes backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("old backup removed", "path", backups[i].Path)
	}
	return nil
}

// RestoreBackup replaces the database with a backup. The current database is
// snapshotted first and the returned path names that snapshot ("" if there was none).
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var snapshot string
	if exists(m.dbPath) {
		var err error
		snapshot, err = m.createBackup(true)
		if err != nil {
			return "", fmt.Errorf("failed to backup current database before restore: %w", err)
		}
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return snapshot, fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.dbPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("failed to remove temporary file", "path", tempPath, "err", removeErr)
		}
		return snapshot, fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("database restored", "from", backupPath)
	return snapshot, nil
}

func (m *Manager) verifyBackup(path string) error {
	if !m.isSQLite() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if len(strings.TrimSpace(string(data))) == 0 || strings.TrimSpace(string(data))[0] != '{' {
			return fmt.Errorf("not a JSON document")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
