package main

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deck-summarizer/internal/app"
	"deck-summarizer/internal/cache"
	"deck-summarizer/internal/config"
	"deck-summarizer/internal/llm"
)

func newTestDeps(client llm.Client) app.Deps {
	return app.Deps{
		Config: config.Config{
			LLMModel:     "test-model",
			MaxAttempts:  3,
			RetryBase:    time.Millisecond,
			OutputFormat: "legacy",
		},
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		LLM:   client,
		Cache: cache.NewNoOpCache(),
	}
}

// writeDemoPPTX builds a two-slide presentation with one text run per slide.
func writeDemoPPTX(t *testing.T, path string, texts ...string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for i, text := range texts {
		w, err := zw.Create(fmt.Sprintf("ppt/slides/slide%d.xml", i+1))
		require.NoError(t, err)
		body := `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
			`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
			`<p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + text +
			`</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func lastContentIs(text string) interface{} {
	return mock.MatchedBy(func(messages []llm.Message) bool {
		return len(messages) > 0 && messages[len(messages)-1].Content == text
	})
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeDemoPPTX(t, filepath.Join(dir, "demo.pptx"), "intro slide", "closing slide")

	mockLLM := new(llm.MockClient)
	mockLLM.On("Complete", mock.Anything, lastContentIs("intro slide")).
		Return("about the intro", nil).Once()
	mockLLM.On("Complete", mock.Anything, lastContentIs("closing slide")).
		Return("about the closing", nil).Once()

	deps := newTestDeps(mockLLM)
	require.NoError(t, run(context.Background(), deps, filepath.Join(dir, "demo.pptx")))

	data, err := os.ReadFile(filepath.Join(dir, "demo.json"))
	require.NoError(t, err)
	expected := "chat GPT answer 1 about the intro \n\n" +
		"chat GPT answer 2 about the closing \n\n"
	require.Equal(t, expected, string(data))
	mockLLM.AssertExpectations(t)
}

func TestRunFailedSlideStillWritesOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeDemoPPTX(t, filepath.Join(dir, "demo.pptx"), "first", "second")

	mockLLM := new(llm.MockClient)
	mockLLM.On("Complete", mock.Anything, lastContentIs("first")).
		Return("", fmt.Errorf("server exploded")).Once()
	mockLLM.On("Complete", mock.Anything, lastContentIs("second")).
		Return("ok", nil).Once()

	deps := newTestDeps(mockLLM)
	require.NoError(t, run(context.Background(), deps, filepath.Join(dir, "demo.pptx")))

	data, err := os.ReadFile(filepath.Join(dir, "demo.json"))
	require.NoError(t, err)
	expected := "chat GPT answer 1 Error processing slide: server exploded \n\n" +
		"chat GPT answer 2 ok \n\n"
	require.Equal(t, expected, string(data))
}

func TestRunJSONOutputFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeDemoPPTX(t, filepath.Join(dir, "demo.pptx"), "only slide")

	mockLLM := new(llm.MockClient)
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return("summary", nil).Once()

	deps := newTestDeps(mockLLM)
	deps.Config.OutputFormat = "json"
	require.NoError(t, run(context.Background(), deps, filepath.Join(dir, "demo.pptx")))

	data, err := os.ReadFile(filepath.Join(dir, "demo.json"))
	require.NoError(t, err)
	require.JSONEq(t, `["summary"]`, string(data))
}

func TestRunMissingPresentation(t *testing.T) {
	deps := newTestDeps(new(llm.MockClient))
	err := run(context.Background(), deps, filepath.Join(t.TempDir(), "nope.pptx"))
	require.Error(t, err)
}
