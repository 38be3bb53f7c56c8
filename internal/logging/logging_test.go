package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", FormatJSON, &buf)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField(FieldKey, "budgets").Warn("corrupt entry")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "budgets", line[FieldKey])
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "corrupt entry", line["msg"])
}

func TestNew_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger := New("loud", "xml", &buf)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
