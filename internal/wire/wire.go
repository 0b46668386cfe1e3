// Package wire provides dependency injection for the todo application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/todo/internal/adapters/cli"
	"github.com/example/todo/internal/adapters/jsonfile"
	"github.com/example/todo/internal/adapters/sqlite"
	"github.com/example/todo/internal/app"
	"github.com/example/todo/internal/config"
	"github.com/example/todo/internal/ports/primary"
	"github.com/example/todo/internal/ports/secondary"
	"github.com/example/todo/internal/storage"
)

var (
	taskService primary.TaskService
	initErr     error
	once        sync.Once
)

// NewRegistry returns a registry holding every built-in backend.
// The CLI config surface consults the same registry the wiring uses, so
// the two can never disagree about which backends exist.
func NewRegistry() *storage.Registry {
	reg := storage.NewRegistry()
	reg.Register(config.BackendJSON, func(params map[string]string) (secondary.TaskStore, error) {
		path := params["path"]
		if path == "" {
			return nil, fmt.Errorf("json backend requires a %q parameter", "path")
		}
		return jsonfile.NewStore(path)
	})
	reg.Register(config.BackendSQLite, func(params map[string]string) (secondary.TaskStore, error) {
		path := params["path"]
		if path == "" {
			return nil, fmt.Errorf("sqlite backend requires a %q parameter", "path")
		}
		return sqlite.Open(path)
	})
	return reg
}

// TaskService returns the singleton TaskService instance, wiring
// config -> registry -> store -> service on first use.
func TaskService() (primary.TaskService, error) {
	once.Do(initServices)
	return taskService, initErr
}

// initServices initializes the service and its dependencies.
// This is called once via sync.Once.
func initServices() {
	path, err := config.DefaultPath()
	if err != nil {
		initErr = err
		return
	}

	cfg, err := config.Load(path)
	if err != nil {
		initErr = err
		return
	}

	store, err := NewRegistry().Open(cfg.Use, cfg.Params(cfg.Use))
	if err != nil {
		initErr = fmt.Errorf("failed to open storage backend: %w", err)
		return
	}

	taskService = app.NewTaskService(store)
}

// TaskAdapter returns a new TaskAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func TaskAdapter() (*cliadapter.TaskAdapter, error) {
	return TaskAdapterWithOutput(os.Stdout)
}

// TaskAdapterWithOutput returns a new TaskAdapter writing to the given
// output. This variant allows testing or alternate output destinations.
func TaskAdapterWithOutput(out io.Writer) (*cliadapter.TaskAdapter, error) {
	svc, err := TaskService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewTaskAdapter(svc, out), nil
}
