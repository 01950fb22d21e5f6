package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Width:           WindowWidth,
		Height:          WindowHeight,
		PauseWhenHidden: true,
		Log:             LogSettings{Level: "info", Format: "console"},
	}, s)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 800
mute: true
pause_when_hidden: false
log:
  level: debug
  format: json
`), 0o644))

	s, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 800, s.Width)
	assert.Equal(t, WindowHeight, s.Height)
	assert.True(t, s.Mute)
	assert.False(t, s.PauseWhenHidden)
	assert.Equal(t, LogSettings{Level: "debug", Format: "json"}, s.Log)
}

func TestLoadDefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pagemotion.yaml"), []byte("height: 480\n"), 0o644))
	t.Chdir(dir)

	s, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 480, s.Height)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAGEMOTION_WIDTH", "640")
	t.Setenv("PAGEMOTION_LOG_LEVEL", "warn")

	s, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 640, s.Width)
	assert.Equal(t, "warn", s.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("width: [1, 2\n"), 0o644))
	tooSmall := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(tooSmall, []byte("width: -5\n"), 0o644))

	tests := []struct {
		name string
		file string
	}{
		{"missing explicit file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", broken},
		{"invalid size", tooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(viper.New(), tt.file)
			assert.Error(t, err)
		})
	}
}
