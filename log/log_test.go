package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestFatal(t *testing.T) {
	logs := observe(t)
	ExitOnFatal = false
	defer func() {
		ExitOnFatal = true
	}()
	testStr := "test-string"

	Fatal(testStr)

	require.Equal(t, 1, logs.Len())
	assert.True(t, strings.Contains(logs.All()[0].Message, testStr))
}

func TestWarnIfErr(t *testing.T) {
	logs := observe(t)
	testStr := "test-string"
	testDescr := "description"

	WarnIfErr(testDescr, errors.New(testStr))
	WarnIfErr(testDescr, nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	assert.Equal(t, testDescr, entry.Message)
	assert.Equal(t, testStr, entry.ContextMap()["error"])
}

func TestErrIfErr(t *testing.T) {
	logs := observe(t)
	testStr := "test-string"
	testDescr := "description"

	ErrIfErr(testDescr, errors.New(testStr))

	require.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
	assert.Equal(t, testStr, logs.All()[0].ContextMap()["error"])
}

func TestNewWritesJSONFile(t *testing.T) {
	restore := zap.ReplaceGlobals(zap.NewNop())
	defer restore()

	file := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := New("debug", file)
	require.NoError(t, err)

	logger.Info("hello", zap.String("session_id", "abc"))
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"abc"`)
}
