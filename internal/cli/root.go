// Package cli is the pagemotion command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iburimskiy/page-motion/internal/config"
	"github.com/iburimskiy/page-motion/internal/content"
	"github.com/iburimskiy/page-motion/internal/game"
	"github.com/iburimskiy/page-motion/internal/logging"
)

// Launcher opens the page for doc and blocks until it is closed.
type Launcher func(settings config.Settings, doc *content.Document, log *zap.Logger) error

func launchWindow(settings config.Settings, doc *content.Document, log *zap.Logger) error {
	return game.Run(game.New(settings, doc, log))
}

// NewRootCommand builds the pagemotion command. Each call gets its own viper
// instance so commands can be built repeatedly in tests.
func NewRootCommand(launch Launcher) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pagemotion",
		Short: "Animated landing page: particles, typewriter, counters and reveal-on-scroll.",
		Long: `pagemotion opens a window with an animated page: a particle field that
shies away from the cursor, a typewriter headline and blocks that fade in
with counters and skill bars as you scroll.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			log, err := logging.New(settings.Log.Level, settings.Log.Format)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			doc := loadContent(settings.Content, log)
			log.Info("starting",
				zap.Int("width", settings.Width),
				zap.Int("height", settings.Height),
				zap.Bool("mute", settings.Mute))

			if err := launch(settings, doc, log); err != nil {
				return fmt.Errorf("run window: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "settings file (default is ./pagemotion.yaml)")
	flags.String("content", "", "page content YAML file (default is the built-in page)")
	flags.Int("width", config.WindowWidth, "window width")
	flags.Int("height", config.WindowHeight, "window height")
	flags.Bool("mute", false, "disable the typing sound")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int64("seed", 0, "particle seed (0 picks one from the clock)")

	for key, name := range map[string]string{
		"content":   "content",
		"width":     "width",
		"height":    "height",
		"mute":      "mute",
		"seed":      "seed",
		"log.level": "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(newContentCommand())
	return cmd
}

// loadContent reads the page document at path, falling back to the built-in
// page when path is empty or unusable.
func loadContent(path string, log *zap.Logger) *content.Document {
	if path == "" {
		return content.Default()
	}
	doc, err := content.Load(path)
	if err != nil {
		log.Warn("using built-in content", zap.String("path", path), zap.Error(err))
		return content.Default()
	}
	log.Info("content loaded", zap.String("path", path))
	return doc
}

func newContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the built-in page content as YAML, as a starting point for --content.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := content.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand(launchWindow).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
