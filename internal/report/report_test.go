package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"demo.pptx", "demo.json"},
		{"/some/dir/demo.pptx", "demo.json"},
		{"slides.v2.pptx", "slides.v2.json"},
		{"noext", "noext.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, OutputPath(tt.input))
		})
	}
}

func TestNewStampsRunID(t *testing.T) {
	rep := New([]string{"a"}, time.Second)
	require.NotEqual(t, uuid.Nil, rep.RunID)
	require.Equal(t, []string{"a"}, rep.Results)
	require.Equal(t, time.Second, rep.Elapsed)
}

func TestWriteLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	rep := New([]string{"first answer", "second answer"}, time.Second)

	require.NoError(t, Write(path, rep, FormatLegacy))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "chat GPT answer 1 first answer \n\n" +
		"chat GPT answer 2 second answer \n\n"
	require.Equal(t, expected, string(data))
}

func TestWriteLegacyEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, Write(path, New(nil, 0), FormatLegacy))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, string(data))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	rep := New([]string{"one", "Error processing slide: boom"}, time.Second)

	require.NoError(t, Write(path, rep, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var results []string
	require.NoError(t, json.Unmarshal(data, &results))
	require.Equal(t, rep.Results, results)
}

func TestWriteBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "out.json"), New(nil, 0), FormatLegacy)
	require.Error(t, err)
}
