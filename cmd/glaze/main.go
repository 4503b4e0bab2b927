package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"

	"glaze/internal/app"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		dialog.Message("%v", err).Title("glaze failed").Error()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg app.Config
	var debug bool

	cmd := &cobra.Command{
		Use:   "glaze",
		Short: "Double-buffered widget demo over the gg vector backend",
		Long: `glaze opens a resizable window of widgets that each own an off-screen
paint buffer: content redraws only when invalidated, and only damaged
regions are copied to the screen.

Click the panels to cycle palettes and blend modes. Press C to copy the
color under the cursor, P to copy the frame as PNG, Esc to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				slog.SetDefault(logger)
				gg.SetLogger(logger)
				cfg.OutlineDamage = true
			}
			a, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			return a.Run()
		},
	}

	cmd.Flags().IntVar(&cfg.Width, "width", 960, "initial window width in pixels")
	cmd.Flags().IntVar(&cfg.Height, "height", 640, "initial window height in pixels")
	cmd.Flags().StringVar(&cfg.Title, "title", "glaze", "window title")
	cmd.Flags().IntVar(&cfg.TimerTicks, "timer-ticks", 12, "update ticks between animation timer events")
	cmd.Flags().Float32Var(&cfg.Scale, "scale", 1, "UI scale factor")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging and damage-rectangle outlines")
	return cmd
}
