// Package app wires configuration, logging, scripts and the demo windows
// into a runnable REPL.
package app

import (
	"io"
	"sync/atomic"

	"github.com/dshills/replterm/internal/config"
	"github.com/dshills/replterm/internal/demo"
	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/repl"
	"github.com/dshills/replterm/internal/script"
)

// MainWindow is the name of the window created at startup.
const MainWindow = "Main"

// Application owns every component of a replterm session.
type Application struct {
	config  *config.Config
	log     *logging.Logger
	logFile io.Closer
	scripts *script.Engine
	manager *repl.Manager
	demo    *demo.Demo

	running  atomic.Bool
	shutdown atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogFile receives log output. When empty, logs go to LogOutput.
	LogFile string

	// LogOutput receives log output when LogFile is empty. Nil discards
	// logs, which interactive mode requires.
	LogOutput io.Writer

	// Scripts are Lua files loaded after those listed in the config.
	Scripts []string
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config { return app.config }

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger { return app.log }

// Manager returns the window registry.
func (app *Application) Manager() *repl.Manager { return app.manager }

// IsRunning reports whether a Run method is executing.
func (app *Application) IsRunning() bool { return app.running.Load() }

// Shutdown releases the script engine and log file. It is idempotent.
func (app *Application) Shutdown() {
	if !app.shutdown.CompareAndSwap(false, true) {
		return
	}
	if app.scripts != nil {
		app.scripts.Close()
	}
	if app.log != nil {
		app.log.Debug("shutdown complete")
	}
	if app.logFile != nil {
		app.logFile.Close()
	}
}
