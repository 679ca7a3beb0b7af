package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"itda/internal/model"
)

type captureWriter struct {
	lines []string
}

func (w *captureWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func openWithLogger(t *testing.T, w *captureWriter) *gorm.DB {
	t.Helper()
	cfg := Config()
	cfg.Logger = newLogger(w)
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "db.db")), cfg)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(gdb))
	return gdb
}

func TestLoggerIgnoresRecordNotFound(t *testing.T) {
	w := &captureWriter{}
	gdb := openWithLogger(t, w)
	w.lines = nil

	var user model.User
	err := gdb.Where("email = ?", "ghost@itda.kr").First(&user).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, w.lines)
}

func TestLoggerReportsFailures(t *testing.T) {
	w := &captureWriter{}
	gdb := openWithLogger(t, w)
	w.lines = nil

	err := gdb.Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)
	assert.NotEmpty(t, w.lines)
}

func TestResetDropsTables(t *testing.T) {
	gdb := openWithLogger(t, &captureWriter{})

	require.NoError(t, Reset(gdb))
	for _, m := range Models() {
		assert.False(t, gdb.Migrator().HasTable(m))
	}
	require.NoError(t, Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable(&model.Listing{}))
}
