package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
)

func TestLocalDBPath(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{name: "plain path", dsn: "data/drafts.db", want: "data/drafts.db"},
		{name: "absolute path", dsn: "/var/lib/exam/drafts.db", want: "/var/lib/exam/drafts.db"},
		{name: "file uri", dsn: "file:data/drafts.db", want: "data/drafts.db"},
		{name: "file uri with options", dsn: "file:data/drafts.db?cache=shared&_busy_timeout=5000", want: "data/drafts.db"},
		{name: "file uri absolute", dsn: "file:///var/lib/exam/drafts.db?mode=rwc", want: "/var/lib/exam/drafts.db"},
		{name: "memory", dsn: ":memory:", want: ""},
		{name: "shared memory", dsn: "file::memory:?cache=shared", want: ""},
		{name: "empty", dsn: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localDBPath(tt.dsn))
		})
	}
}

func TestNewConnectSQLite_FileURICreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	db, err := NewConnectSQLite(context.Background(), config.DBConfig{DSN: "file:cache/drafts.db?cache=shared"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	info, err := os.Stat(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// каталог с префиксом "file:" создаваться не должен
	_, err = os.Stat(filepath.Join(dir, "file:cache"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewConnectSQLite_MemoryCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	db, err := NewConnectSQLite(context.Background(), config.DBConfig{DSN: "file::memory:?cache=shared"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
