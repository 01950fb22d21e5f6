package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iburimskiy/page-motion/internal/config"
	"github.com/iburimskiy/page-motion/internal/content"
)

type launchRecord struct {
	calls    int
	settings config.Settings
	doc      *content.Document
}

func (r *launchRecord) launch(settings config.Settings, doc *content.Document, _ *zap.Logger) error {
	r.calls++
	r.settings = settings
	r.doc = doc
	return nil
}

func execute(t *testing.T, launch Launcher, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(launch)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Defaults(t *testing.T) {
	var rec launchRecord
	_, err := execute(t, rec.launch)
	require.NoError(t, err)

	require.Equal(t, 1, rec.calls)
	assert.Equal(t, config.WindowWidth, rec.settings.Width)
	assert.Equal(t, config.WindowHeight, rec.settings.Height)
	assert.False(t, rec.settings.Mute)
	assert.Equal(t, "info", rec.settings.Log.Level)
	assert.Equal(t, content.Default(), rec.doc)
}

func TestRootCmd_FlagsOverride(t *testing.T) {
	var rec launchRecord
	_, err := execute(t, rec.launch,
		"--width", "800", "--height", "600", "--mute", "--seed", "42", "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, 800, rec.settings.Width)
	assert.Equal(t, 600, rec.settings.Height)
	assert.True(t, rec.settings.Mute)
	assert.Equal(t, int64(42), rec.settings.Seed)
	assert.Equal(t, "debug", rec.settings.Log.Level)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(page, []byte("name: Ada\nphrases: [hello]\n"), 0o644))
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("width: 900\ncontent: "+page+"\n"), 0o644))

	var rec launchRecord
	_, err := execute(t, rec.launch, "--config", settings, "--height", "500")
	require.NoError(t, err)

	assert.Equal(t, 900, rec.settings.Width)
	assert.Equal(t, 500, rec.settings.Height)
	assert.Equal(t, "Ada", rec.doc.Name)
	assert.Equal(t, []string{"hello"}, rec.doc.Phrases)
}

func TestRootCmd_BadContentFallsBack(t *testing.T) {
	var rec launchRecord
	_, err := execute(t, rec.launch, "--content", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, content.Default(), rec.doc)
}

func TestRootCmd_InvalidSize(t *testing.T) {
	var rec launchRecord
	_, err := execute(t, rec.launch, "--width", "0")
	require.Error(t, err)
	assert.Zero(t, rec.calls)
}

func TestRootCmd_LaunchError(t *testing.T) {
	boom := errors.New("no display")
	_, err := execute(t, func(config.Settings, *content.Document, *zap.Logger) error { return boom })
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestContentCmd_PrintsLoadableYAML(t *testing.T) {
	out, err := execute(t, nil, "content")
	require.NoError(t, err)

	doc, err := content.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, content.Default(), doc)
}
