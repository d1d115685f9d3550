package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_SortsAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__add_index.sql":  {Data: []byte("CREATE INDEX x ON t (c);")},
		"V1__init.sql":       {Data: []byte("  CREATE TABLE t (c INT);\n")},
		"README.md":          {Data: []byte("ignored")},
		"V3_bad_name.sql":    {Data: []byte("SELECT 1")},
		"embed.go":           {Data: []byte("package migrations")},
		"V10__later.sql":     {Data: []byte("SELECT 10")},
		"nested/V4__dir.sql": {Data: []byte("SELECT 4")},
	}

	migs, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 3)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (c INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
	assert.Equal(t, int64(10), migs[2].Version)
}

func TestLoadMigrations_RejectsEmptyAndDuplicate(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	assert.ErrorContains(t, err, "empty migration file")

	_, err = loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1")},
		"V01__b.sql": {Data: []byte("SELECT 2")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")
}

func TestPendingMigrations(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "init", Checksum: "aaa"},
		{Version: 2, Name: "next", Checksum: "bbb"},
	}

	pending, err := pendingMigrations(migs, map[int64]appliedMigration{1: {Version: 1, Checksum: "aaa"}})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].Version)

	_, err = pendingMigrations(migs, map[int64]appliedMigration{1: {Version: 1, Checksum: "changed"}})
	assert.ErrorContains(t, err, "checksum mismatch")
}

func TestRun_NilArgs(t *testing.T) {
	_, err := Runner{FS: fstest.MapFS{}}.Run(context.Background(), nil)
	assert.Error(t, err)
}
