package app

import (
	"io"
	"os"

	"github.com/dshills/replterm/internal/config"
	"github.com/dshills/replterm/internal/demo"
	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/repl"
	"github.com/dshills/replterm/internal/script"
)

// bootstrapper initializes components in dependency order.
type bootstrapper struct {
	app  *Application
	opts Options
}

func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{app: app, opts: opts}
}

// bootstrap runs every init step. On failure, it cleans up what the earlier
// steps opened.
func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		init func() error
	}{
		{"config", b.initConfig},
		{"logging", b.initLogging},
		{"scripts", b.initScripts},
		{"windows", b.initWindows},
	}

	for _, step := range steps {
		if err := step.init(); err != nil {
			b.cleanup()
			return &InitError{Component: step.name, Err: err}
		}
	}
	return nil
}

func (b *bootstrapper) initConfig() error {
	cfg, err := config.Load(b.opts.ConfigPath)
	if err != nil {
		return err
	}
	if b.opts.LogLevel != "" {
		cfg.LogLevel = b.opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	b.app.config = cfg
	return nil
}

func (b *bootstrapper) initLogging() error {
	var out io.Writer = io.Discard
	switch {
	case b.opts.LogFile != "":
		f, err := os.OpenFile(b.opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		b.app.logFile = f
		out = f
	case b.opts.LogOutput != nil:
		out = b.opts.LogOutput
	}

	b.app.log = logging.New(logging.Config{
		Level:  b.app.config.Level(),
		Output: out,
		Prefix: "replterm",
	})
	return nil
}

func (b *bootstrapper) initScripts() error {
	engine := script.NewEngine(script.WithLogger(b.app.log))
	b.app.scripts = engine

	paths := append(append([]string{}, b.app.config.Scripts...), b.opts.Scripts...)
	for _, path := range paths {
		if err := engine.LoadFile(path); err != nil {
			return err
		}
	}
	b.app.log.Info("loaded %d script commands", len(engine.Commands()))
	return nil
}

func (b *bootstrapper) initWindows() error {
	b.app.manager = repl.NewManager(repl.WithManagerLogger(b.app.log))
	b.app.demo = demo.New(b.app.manager,
		demo.WithWindowOptions(b.app.config.WindowOptions()...),
		demo.WithInstaller(func(w *repl.Window) { b.app.scripts.Install(w) }),
		demo.WithLogger(b.app.log),
	)
	_, err := b.app.demo.Start(MainWindow)
	return err
}

// cleanup releases whatever the completed steps opened.
func (b *bootstrapper) cleanup() {
	if b.app.scripts != nil {
		b.app.scripts.Close()
		b.app.scripts = nil
	}
	if b.app.logFile != nil {
		b.app.logFile.Close()
		b.app.logFile = nil
	}
}
