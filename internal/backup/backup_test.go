package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/constants"
)

var stamp = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitual.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE habit_logs (
		id TEXT PRIMARY KEY,
		habit_id TEXT,
		date TEXT
	)`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO habit_logs (id, habit_id, date) VALUES ('l1', 'h1', '2026-03-13'), ('l2', 'h1', '2026-03-14')")
	require.NoError(t, err)
	return dbPath
}

func countLogs(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM habit_logs").Scan(&count))
	return count
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManagerWithClock(dbPath, clock.Fixed(stamp))

	backupPath, err := mgr.CreateBackup()
	require.NoError(t, err)

	assert.Equal(t, "habitual-20260314-0926.db", filepath.Base(backupPath))
	assert.Equal(t, 2, countLogs(t, backupPath))
}

func TestBackupWithNoDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	_, err := mgr.CreateBackup()
	assert.Error(t, err)
}

func TestBackupDirectoryCreation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	assert.Equal(t, filepath.Join(filepath.Dir(dbPath), constants.BackupDirName), mgr.GetBackupDir())
	_, err := os.Stat(mgr.GetBackupDir())
	require.True(t, os.IsNotExist(err))

	backupPath, err := mgr.CreateBackup()
	require.NoError(t, err)
	assert.DirExists(t, mgr.GetBackupDir())
	assert.FileExists(t, backupPath)
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManagerWithClock(dbPath, clock.Fixed(stamp))

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		require.NoError(t, err)
		name := filepath.Base(backupPath)
		assert.False(t, seen[name], "duplicate backup filename %s", name)
		seen[name] = true
	}
	assert.True(t, seen["habitual-20260314-0926.db"])
	assert.True(t, seen["habitual-20260314-092600.db"])
	assert.True(t, seen["habitual-20260314-092600-1.db"])
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManagerWithClock(dbPath, clock.Fixed(stamp))

	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, backups)

	for i := 0; i < 3; i++ {
		_, err := mgr.CreateBackup()
		require.NoError(t, err)
	}

	// Stray files in the backup directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(mgr.GetBackupDir(), "habitual-garbage.db"), []byte("x"), 0600))

	backups, err = mgr.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 3)
	for _, b := range backups {
		assert.NotEmpty(t, b.Path)
		assert.NotZero(t, b.Size)
		assert.True(t, b.Timestamp.Equal(stamp))
	}
	// Newest first: the counter-suffixed file was written last.
	assert.Equal(t, "habitual-20260314-092600-1.db", filepath.Base(backups[0].Path))
	assert.Equal(t, "habitual-20260314-0926.db", filepath.Base(backups[2].Path))
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)

	day := stamp
	for i := 0; i < constants.MaxBackups+5; i++ {
		mgr := NewManagerWithClock(dbPath, clock.Fixed(day))
		_, err := mgr.CreateBackup()
		require.NoError(t, err)
		day = day.AddDate(0, 0, 1)
	}

	mgr := NewManager(dbPath)
	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, constants.MaxBackups)

	for i := 1; i < len(backups); i++ {
		assert.True(t, backups[i-1].Timestamp.After(backups[i].Timestamp))
	}
	// The five oldest days were pruned.
	assert.True(t, backups[len(backups)-1].Timestamp.Equal(stamp.AddDate(0, 0, 5)))
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManagerWithClock(dbPath, clock.Fixed(stamp))

	backupPath, err := mgr.CreateBackup()
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO habit_logs (id, habit_id, date) VALUES ('l3', 'h1', '2026-03-15')")
	require.NoError(t, err)
	db.Close()
	require.Equal(t, 3, countLogs(t, dbPath))

	snapshot, err := mgr.RestoreBackup(backupPath)
	require.NoError(t, err)

	assert.Equal(t, 2, countLogs(t, dbPath))
	require.NotEmpty(t, snapshot)
	assert.Equal(t, 3, countLogs(t, snapshot), "pre-restore snapshot keeps the replaced data")

	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	assert.Len(t, backups, 2)
}

func TestRestoreWithCorruptedBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	require.NoError(t, os.MkdirAll(mgr.GetBackupDir(), 0700))
	corrupted := filepath.Join(mgr.GetBackupDir(), "corrupted.db")
	require.NoError(t, os.WriteFile(corrupted, []byte("not a valid sqlite database"), 0600))

	_, err := mgr.RestoreBackup(corrupted)
	assert.Error(t, err)
	assert.Equal(t, 2, countLogs(t, dbPath))

	_, err = mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "missing.db"))
	assert.Error(t, err)
}

func TestJSONDocumentBackup(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "habits.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"version":1}`), 0600))

	mgr := NewManagerWithClock(docPath, clock.Fixed(stamp))
	backupPath, err := mgr.CreateBackup()
	require.NoError(t, err)
	assert.Equal(t, "habitual-20260314-0926.json", filepath.Base(backupPath))

	require.NoError(t, os.WriteFile(docPath, []byte(`{"version":2}`), 0600))
	_, err = mgr.RestoreBackup(backupPath)
	require.NoError(t, err)

	data, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(data))

	bad := filepath.Join(mgr.GetBackupDir(), "habitual-20260101-0000.json")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0600))
	_, err = mgr.RestoreBackup(bad)
	assert.Error(t, err)
}
