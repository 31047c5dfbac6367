// Command goditor is a terminal text editor whose buffers are ropes.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"goditor/application"
	"goditor/buffer"
	"goditor/config"
	"goditor/logging"
)

var (
	leafSize   int
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "goditor [file]",
	Short:        "Terminal text editor backed by a rope",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, editor, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer cfg.Cleanup()

		log := logging.New("editor")
		defer func() { _ = logging.Sync() }()

		buffers := buffer.NewBuffers(editor.LeafSize, log.Named("buffer"))
		var buf *buffer.Buffer
		if len(args) == 0 {
			buf = buffers.NewScratch()
			log.Info("started without a file, using a scratch buffer")
		} else {
			if buf, err = buffers.OpenFile(args[0]); err != nil {
				return err
			}
			log.Infof("opened %s: %d bytes, %d leaves", buf.Path, buf.Len(), buf.Rope().LeafCount())
		}

		if err := cfg.Watch(); err != nil {
			log.Warnf("config changes will not be picked up: %v", err)
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		screen.SetStyle(application.DefaultStyle)
		screen.EnableMouse()
		screen.EnablePaste()
		screen.Clear()

		app := application.New(screen, buffers, buf, cfg, log)
		return app.Run()
	},
}

// loadConfig reads the config file, applies the command line overrides and
// points logging at the configured file.
func loadConfig(cmd *cobra.Command) (*config.Config, config.EditorConfig, error) {
	cfg := config.NewConfig(logging.Nop())

	var err error
	if configFile != "" {
		err = cfg.InitAt(configFile)
	} else {
		err = cfg.Init()
	}
	if err != nil {
		return nil, config.EditorConfig{}, err
	}

	editor := cfg.Editor()
	if cmd.Flags().Changed("leaf-size") {
		editor.LeafSize = leafSize
	}
	if cmd.Flags().Changed("log-level") {
		editor.LogLevel = logLevel
	}
	if err := editor.Validate(); err != nil {
		return nil, config.EditorConfig{}, err
	}

	logging.SetOutput(editor.LogFile)
	if err := logging.SetLogLevel(editor.LogLevel); err != nil {
		return nil, config.EditorConfig{}, err
	}
	cfg.SetLogger(logging.New("config"))
	return cfg, editor, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/goditor/config.yaml)")
	rootCmd.Flags().IntVar(&leafSize, "leaf-size", 0, "bytes per rope leaf, overrides the config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.AddCommand(newStatsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
