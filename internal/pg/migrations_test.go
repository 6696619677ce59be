package pg

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GlebRadaev/fundtracker/migrations"
)

func TestGooseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	gooseLogger{}.Printf("OK   %s (%s)\n", "20241101120000_create_users.sql", "3ms")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "OK   20241101120000_create_users.sql (3ms)", entry.Message)
	assert.Equal(t, "migrations", entry.ContextMap()["component"])
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}
