// Package app wires configuration, the input hook, the engine and the
// renderer together and runs the frame loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/keyscreen/internal/config"
	"github.com/dshills/keyscreen/internal/engine"
	"github.com/dshills/keyscreen/internal/engine/queue"
	"github.com/dshills/keyscreen/internal/hook"
	"github.com/dshills/keyscreen/internal/input/key"
	"github.com/dshills/keyscreen/internal/input/keymap"
	"github.com/dshills/keyscreen/internal/renderer"
	"github.com/dshills/keyscreen/internal/renderer/backend"
)

// Application owns one keyscreen run.
type Application struct {
	opts Options

	config    *config.Config
	logger    *Logger
	logFile   io.Closer
	sessionID string
	metrics   *Metrics

	keymap *keymap.Keymap
	queue  *queue.Queue
	engine *engine.Engine

	renderer renderer.Renderer
	overlay  *renderer.Overlay
	hook     hook.Hook
	terminal *hook.Terminal

	running      atomic.Bool
	shutdownOnce sync.Once
	shutdownErr  error
}

// Options configures the application.
type Options struct {
	// ConfigPath is the config file. Empty means the default path.
	ConfigPath string

	// Overrides are command-line values keyed by config path.
	Overrides map[string]any

	// Output receives headless lines. Defaults to os.Stdout. Output that
	// is not a terminal selects the headless renderer.
	Output io.Writer

	// Backend replaces the tcell terminal for the overlay.
	Backend backend.Backend

	// Logger replaces the logger built from the config.
	Logger *Logger
}

// New loads configuration and builds every component. Nothing starts until
// Run.
func New(opts Options) (*Application, error) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	app := &Application{
		opts:      opts,
		sessionID: NewSessionID(),
		metrics:   NewMetrics(),
	}

	if err := app.init(); err != nil {
		_ = app.Shutdown()
		return nil, err
	}
	return app, nil
}

func (app *Application) init() error {
	cfg, err := config.Load(config.LoadOptions{
		Path:      app.opts.ConfigPath,
		Overrides: app.opts.Overrides,
	})
	if err != nil {
		return NewComponentError("config", "load", err)
	}
	if err := cfg.Validate(); err != nil {
		return NewComponentError("config", "validate", err)
	}
	app.config = cfg

	if err := app.initLogger(); err != nil {
		return err
	}

	km, err := keymap.Lookup(cfg.Profile)
	if err != nil {
		return NewComponentError("engine", "profile", err)
	}
	app.keymap = km
	app.queue = queue.New()
	app.engine = engine.New(km, engine.WithLogger(app.logger.WithComponent("engine")))

	if err := app.initRenderer(); err != nil {
		return err
	}
	return app.initHook()
}

func (app *Application) initLogger() error {
	fields := map[string]any{"session": app.sessionID}
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger.WithFields(fields)
		return nil
	}

	level, err := ParseLogLevel(app.config.Log.Level)
	if err != nil {
		return NewComponentError("log", "level", err)
	}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if path := app.config.Log.File; path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return NewComponentError("log", "open", err)
		}
		app.logFile = f
		cfg.Output = f
	}
	app.logger = NewLogger(cfg).WithFields(fields)
	SetLogger(app.logger)
	return nil
}

func (app *Application) initRenderer() error {
	cfg := app.config

	headless := cfg.Display.Headless
	if app.opts.Backend == nil {
		headless = renderer.UseHeadless(headless, app.opts.Output)
	}
	if headless {
		if cfg.Input.Source == config.SourceTerminal {
			return NewComponentError("renderer", "select", ErrNoTerminal)
		}
		app.renderer = renderer.NewHeadless(app.opts.Output)
		return nil
	}

	theme, err := renderer.ParseTheme(cfg.Theme.Text, cfg.Theme.Inactive, cfg.Theme.Background)
	if err != nil {
		return NewComponentError("renderer", "theme", err)
	}

	b := app.opts.Backend
	if b == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return NewComponentError("renderer", "open terminal", err)
		}
		b = term
	}
	app.overlay = renderer.NewOverlay(b, renderer.Options{
		LetterSpacing: cfg.Display.LetterSpacing,
		Theme:         theme,
	})
	app.renderer = app.overlay
	return nil
}

func (app *Application) initHook() error {
	cfg := app.config
	km := app.keymap

	designated := make([]key.Key, 0, key.ModifierCount)
	for _, m := range key.Modifiers() {
		designated = append(designated, km.ModifierKey(m))
	}
	opts := []hook.Option{
		hook.WithLogger(app.logger.WithComponent("hook")),
		hook.WithModifierKeys(designated...),
		hook.WithLoop(cfg.Input.Loop),
	}

	switch cfg.Input.Source {
	case config.SourceEvdev:
		app.hook = hook.NewEvdev(cfg.Input.Device, opts...)
	case config.SourceTerminal:
		app.terminal = hook.NewTerminal(km, opts...)
		app.hook = app.terminal
	case config.SourceReplay:
		r, err := hook.NewReplayFile(km, cfg.Input.ReplayFile, opts...)
		if err != nil {
			return NewComponentError("hook", "load script", err)
		}
		app.hook = r
	default:
		return NewComponentError("hook", "select", fmt.Errorf("unknown source %q", cfg.Input.Source))
	}
	return nil
}

// Run starts the renderer and the hook, then draws frames until ctx is
// done or the user quits. A hook installation failure is returned as a
// *ComponentError for "hook".
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := app.logger.WithComponent("app")

	if app.overlay != nil {
		if err := app.overlay.Start(); err != nil {
			return NewComponentError("renderer", "start", err)
		}
	}

	if err := app.hook.Start(ctx, app.queue); err != nil {
		return NewComponentError("hook", "start", err)
	}

	if app.overlay != nil {
		var keys renderer.KeyHandler
		if app.terminal != nil {
			keys = app.terminal
		}
		go app.overlay.Pump(ctx, cancel, keys)
	}

	log.Info("running: profile=%s source=%s fps=%d", app.keymap.Name(), app.hook.Name(), app.config.Display.FPS)

	err := app.loop(ctx)
	app.queue.Close()
	app.logStats(log)

	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// loop draws one frame per tick. The first frame is drawn immediately.
func (app *Application) loop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewComponentError("app", "frame", NewRecoveredPanicError(r, string(debug.Stack())))
		}
	}()

	interval := time.Second / time.Duration(app.config.Display.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := app.frame(interval); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// frame drains the queue and renders the result.
func (app *Application) frame(interval time.Duration) error {
	timer := StartTimer()
	f := app.engine.DrainFrame(app.queue)

	if err := app.renderer.Render(f); err != nil {
		if errors.Is(err, renderer.ErrClosed) {
			return ErrQuit
		}
		app.metrics.RecordRenderError()
		return NewComponentError("renderer", "render", err)
	}

	elapsed := timer.Elapsed()
	app.metrics.RecordFrame(elapsed, f.Processed)
	if elapsed > interval {
		app.metrics.RecordSlowFrame()
	}
	return nil
}

func (app *Application) logStats(log *Logger) {
	es := app.engine.Stats()
	qs := app.queue.Stats()
	ms := app.metrics.Snapshot()
	log.Debug("engine: processed=%d glyphs=%d unresolved=%d modifiers=%d frames=%d",
		es.Processed, es.Glyphs, es.Unresolved, es.Modifiers, es.Frames)
	log.Debug("queue: pushed=%d drained=%d", qs.Pushed, qs.Drained)
	log.Debug("frames: count=%d avg=%s max=%s slow=%.1f%% fps=%.1f",
		ms.FrameCount, time.Duration(ms.AvgFrameTimeNs), time.Duration(ms.MaxFrameTimeNs), ms.SlowRate(), ms.FramesPerSecond())
}

// Shutdown closes the queue, restores the terminal and closes the log
// file. It is safe to call more than once.
func (app *Application) Shutdown() error {
	app.shutdownOnce.Do(func() {
		if app.queue != nil {
			app.queue.Close()
		}
		if app.overlay != nil {
			app.overlay.Shutdown()
		}
		if app.logFile != nil {
			app.shutdownErr = app.logFile.Close()
		}
	})
	return app.shutdownErr
}

// Config returns the resolved configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Keymap returns the active profile.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// Engine returns the engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Hook returns the input hook.
func (app *Application) Hook() hook.Hook {
	return app.hook
}

// Renderer returns the active renderer.
func (app *Application) Renderer() renderer.Renderer {
	return app.renderer
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// SessionID returns the identifier logged with every message.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Metrics returns the frame metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
