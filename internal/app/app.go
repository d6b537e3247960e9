// Package app wires configuration, the editor core, the AI manager and
// the renderer into a runnable application.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/ai"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/config"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/editor"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/input/key"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/logging"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/renderer"
)

// redrawInterval paces the idle redraw loop; transient status messages
// decay at this rate.
const redrawInterval = 100 * time.Millisecond

// Options configures a new Application.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// FilePath is an optional file to open on startup.
	FilePath string
}

// Application is the assembled editor process.
type Application struct {
	cfg      *config.Config
	ed       *editor.Editor
	renderer *renderer.Renderer
	log      *logging.Logger
	logFile  *os.File
	filePath string

	shutdownOnce sync.Once
}

// New builds an application from options. A broken config file is not
// fatal; the editor runs on defaults.
func New(opts Options) (*Application, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(configPath)

	log, logFile := newLogger(cfg)
	if cfgErr != nil {
		log.Warn("config load failed, using defaults: %v", cfgErr)
	}

	preferred := "groq"
	if cfg != nil {
		preferred = cfg.GetString("ai_model")
	}
	manager := ai.NewManager(preferred, log)

	ed := editor.New(
		editor.WithAI(manager),
		editor.WithLogger(log),
		editor.WithExplorerRoot("."),
	)

	r, err := renderer.New()
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Application{
		cfg:      cfg,
		ed:       ed,
		renderer: r,
		log:      log,
		logFile:  logFile,
		filePath: opts.FilePath,
	}, nil
}

// newLogger builds the application logger, writing to a log file next
// to the config. Logging is disabled when the file cannot be opened:
// writing to the terminal would corrupt the display.
func newLogger(cfg *config.Config) (*logging.Logger, *os.File) {
	level := logging.LevelInfo
	if cfg != nil {
		level = logging.ParseLevel(cfg.GetString("log_level"))
	}

	dir := filepath.Dir(config.DefaultPath())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logging.Null, nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "pyedit.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logging.Null, nil
	}
	return logging.New(logging.Config{Level: level, Output: f, Prefix: "pyedit"}), f
}

// Run starts the terminal UI and blocks until the editor exits.
func (a *Application) Run() error {
	if err := a.renderer.Init(); err != nil {
		return err
	}
	defer a.Shutdown()

	if a.cfg != nil {
		a.log.Info("starting, config=%s", a.cfg.Path())
	}

	width, height := a.renderer.Size()
	a.ed.Resize(height-1, width)

	if a.filePath != "" {
		a.ed.LoadFile(a.filePath)
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.renderer.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	a.renderer.Draw(a.ed)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
		}
		a.ed.Tick()
		a.renderer.Draw(a.ed)
	}
}

// handleEvent dispatches one terminal event, returning false when the
// editor should exit.
func (a *Application) handleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return a.ed.HandleKey(key.FromTcell(tev))
	case *tcell.EventResize:
		width, height := tev.Size()
		a.ed.Resize(height-1, width)
		a.renderer.Sync()
	}
	return true
}

// Shutdown restores the terminal and releases resources. Safe to call
// more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.renderer.Close()
		a.log.Info("exited")
		if a.logFile != nil {
			a.logFile.Close()
		}
	})
}
