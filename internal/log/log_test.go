package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsAndCategory(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, slog.LevelInfo)
	t.Cleanup(func() { SetLogger(nil) })

	Debug(CatModel, "hidden")
	Info(CatDocument, "released", "refs", 0)
	ErrorErr(CatConfig, "reload failed", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "category=document")
	assert.Contains(t, out, "refs=0")
	assert.Contains(t, out, "error=boom")
}

func TestDefaultDiscards(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.NotPanics(t, func() { Warn(CatStyle, "no output expected") })
}
