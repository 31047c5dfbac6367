// Package config bootstraps, validates and watches the editor configuration.
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"goditor/logging"
)

//go:embed config.yaml
var defaults embed.FS

const confName = "config.yaml"

// Line number modes of the gutter.
const (
	LineNumbersAbsolute = "absolute"
	LineNumbersRelative = "relative"
	LineNumbersOff      = "off"
)

type EditorConfig struct {
	LeafSize    int    `yaml:"leafSize" validate:"gt=0,lte=65536"`
	LineNumbers string `yaml:"lineNumbers" validate:"oneof=absolute relative off"`
	TabWidth    int    `yaml:"tabWidth" validate:"min=1,max=16"`
	LogLevel    string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	LogFile     string `yaml:"logFile" validate:"required"`
}

// Default returns the configuration shipped with the editor.
func Default() EditorConfig {
	content, err := fs.ReadFile(defaults, confName)
	if err != nil {
		panic(fmt.Errorf("read embedded config: %w", err))
	}

	var c EditorConfig
	if err := yaml.Unmarshal(content, &c); err != nil {
		panic(fmt.Errorf("parse embedded config: %w", err))
	}
	return c
}

// Parse decodes a config file on top of the defaults and validates it.
// Keys missing from data keep their default value. JSON input is accepted
// since it is valid YAML.
func Parse(data []byte) (EditorConfig, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return EditorConfig{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return EditorConfig{}, err
	}
	return c, nil
}

// Dir returns the directory holding the config file:
// $XDG_CONFIG_HOME/goditor or $HOME/.goditor.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goditor")
	}
	return filepath.Join(os.Getenv("HOME"), ".goditor")
}

type Config struct {
	log     logging.Logger
	file    string
	watcher *fsnotify.Watcher

	mu        sync.RWMutex
	editor    EditorConfig
	listeners []func(EditorConfig)
}

func NewConfig(log logging.Logger) *Config {
	return &Config{log: log, editor: Default()}
}

// Init loads the config file from Dir, writing the default file first if
// there is none.
func (cfg *Config) Init() error {
	return cfg.InitAt(filepath.Join(Dir(), confName))
}

// InitAt is like Init for an explicit file path.
func (cfg *Config) InitAt(file string) error {
	cfg.file = file
	if err := cfg.writeConfigIfMissing(); err != nil {
		return err
	}
	return cfg.readConfigIntoMemory()
}

// SetLogger replaces the logger, for use once logging is configured.
func (cfg *Config) SetLogger(log logging.Logger) {
	cfg.log = log
}

// File returns the path of the loaded config file.
func (cfg *Config) File() string {
	return cfg.file
}

// Editor returns a copy of the current settings.
func (cfg *Config) Editor() EditorConfig {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.editor
}

// OnChange registers fn to be called with the new settings after the file
// changed on disk. fn runs on the watcher goroutine.
func (cfg *Config) OnChange(fn func(EditorConfig)) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.listeners = append(cfg.listeners, fn)
}

func (cfg *Config) writeConfigIfMissing() error {
	if _, err := os.Stat(cfg.file); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	content, err := fs.ReadFile(defaults, confName)
	if err != nil {
		return fmt.Errorf("read embedded config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.file), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(cfg.file, content, 0664); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	cfg.log.Infof("wrote default config to %s", cfg.file)
	return nil
}

func (cfg *Config) readConfigIntoMemory() error {
	content, err := os.ReadFile(cfg.file)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	editor, err := Parse(content)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.file, err)
	}

	cfg.mu.Lock()
	cfg.editor = editor
	cfg.mu.Unlock()
	return nil
}

// Watch rereads the config file whenever it is written and notifies the
// OnChange listeners. An invalid file is logged and the previous settings
// stay in place.
func (cfg *Config) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}

	// editors often replace the file, so watch the directory
	if err := watcher.Add(filepath.Dir(cfg.file)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}

	cfg.watcher = watcher
	go cfg.rereadConfigOnFileChange(watcher)
	return nil
}

func (cfg *Config) rereadConfigOnFileChange(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfg.file) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := cfg.readConfigIntoMemory(); err != nil {
				cfg.log.Warnf("keeping previous config: %v", err)
				continue
			}
			cfg.log.Infof("reloaded config from %s", cfg.file)
			cfg.notify()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Errorf("config watcher: %v", err)
		}
	}
}

func (cfg *Config) notify() {
	cfg.mu.RLock()
	editor := cfg.editor
	listeners := append([]func(EditorConfig){}, cfg.listeners...)
	cfg.mu.RUnlock()

	for _, fn := range listeners {
		fn(editor)
	}
}

// Cleanup stops watching the config file.
func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
		cfg.watcher = nil
	}
}
