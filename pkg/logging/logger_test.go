package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("query missing from results", "qid", "q7")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "query missing from results")
	assert.Contains(t, out, "q7")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "DEBUG"})
	require.NoError(t, err)

	logger.Debug("query processed", "qid", "q1")
	assert.Contains(t, buf.String(), "query processed")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestSetup_FallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, Options{Level: "chatty"})

	assert.Contains(t, buf.String(), "invalid log level")
	logger.Debug("not shown")
	assert.NotContains(t, buf.String(), "not shown")
}
