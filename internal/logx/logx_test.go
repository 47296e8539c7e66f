package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFields_Constructors(t *testing.T) {
	require.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	require.Equal(t, Field{Key: "k", Value: int64(2)}, Int64("k", 2))
	require.Equal(t, Field{Key: "k", Value: true}, Bool("k", true))
	require.Equal(t, Field{Key: "k", Value: time.Second}, Duration("k", time.Second))
	require.Equal(t, Field{Key: "err", Value: "boom"}, Err(errors.New("boom")))
	require.Equal(t, Field{Key: "err", Value: "<nil>"}, Err(nil))
}

func TestNopLogger_NoPanic(t *testing.T) {
	l := Nop()
	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 1))
	l.Warn("w")
	l.Error("e")

	l2 := l.With(String("x", "y"))
	require.NotNil(t, l2)
	require.NoError(t, l2.Sync())
}

func TestSlogAdapter_WritesLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With(String("component", "upload")).Warn("patch failed", Int64("row_id", 7))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "WARN", entry["level"])
	require.Equal(t, "patch failed", entry["msg"])
	require.Equal(t, "upload", entry["component"])
	require.EqualValues(t, 7, entry["row_id"])
}

func TestSlogAdapter_AllLevels(t *testing.T) {
	l := NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})))

	l.Debug("msg", String("k", "v"))
	l.Info("msg")
	l.Error("msg", Err(errors.New("x")))
	require.Len(t, toSlogArgs([]Field{String("a", "b"), Int("n", 1)}), 2)
	require.NoError(t, l.Sync())
}
