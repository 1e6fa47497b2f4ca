package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "text"})
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Infof("hidden %d", 1)
	Warnf("shown %s", "warn")
	Errorf("shown %s", "error")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "chatty"})
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Debug("debug line")
	Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestHTTP_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json"})
	SetOutput(&buf)
	defer func() {
		Init(Config{Level: "info"})
		SetOutput(os.Stderr)
	}()

	HTTP("POST", "/login", 401, 12)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http", entry["protocol"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/login", entry["path"])
	assert.EqualValues(t, 401, entry["status"])
	assert.Equal(t, "HTTP POST /login 401 - 12ms", entry["msg"])
}
