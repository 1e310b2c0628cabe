// Package lazyenv reads dotenv files on first use instead of at startup.
// Values from the process environment always take precedence over values
// from files.
package lazyenv

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/river-now/lazy/kit/lazy"
)

const defaultFile = ".env"

type Options struct {
	Files    []string     // Dotenv files, earliest wins on duplicate keys. Defaults to ".env".
	Optional bool         // Skip files that do not exist instead of failing
	Logger   *slog.Logger // Defaults to slog.Default()
}

type Env struct {
	files    []string
	optional bool
	log      *slog.Logger
	vars     *lazy.ErrCell[map[string]string]
}

var defaultEnv = lazy.New(func() *Env {
	return New(Options{Optional: true})
})

// Default returns the process-wide Env backed by an optional ".env" file in
// the working directory.
func Default() *Env {
	return defaultEnv.Get()
}

func New(opts Options) *Env {
	files := opts.Files
	if len(files) == 0 {
		files = []string{defaultFile}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	e := &Env{
		files:    files,
		optional: opts.Optional,
		log:      log.With("component", "lazyenv"),
	}
	e.vars = lazy.NewWithError(e.read)
	return e
}

func (e *Env) read() (map[string]string, error) {
	vars := make(map[string]string)
	for _, file := range e.files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			if e.optional && errors.Is(err, fs.ErrNotExist) {
				e.log.Debug("skipping missing env file", "file", file)
				continue
			}
			return nil, fmt.Errorf("error reading env file %s: %w", file, err)
		}
		for k, v := range fileVars {
			if _, exists := vars[k]; !exists {
				vars[k] = v
			}
		}
	}
	e.log.Debug("loaded env files", "files", len(e.files), "vars", len(vars))
	return vars, nil
}

// Load reads the env files if they have not been read yet. A failed load
// is retried on the next call.
func (e *Env) Load() error {
	_, err := e.vars.Get()
	return err
}

// Loaded reports whether the env files have been read, without reading them.
func (e *Env) Loaded() bool {
	return e.vars.Initialized()
}

// Lookup returns the value of key from the process environment or, failing
// that, from the env files. Files are only read when the process
// environment does not have the key.
func (e *Env) Lookup(key string) (string, bool, error) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true, nil
	}
	vars, err := e.vars.Get()
	if err != nil {
		return "", false, err
	}
	v, ok := vars[key]
	return v, ok, nil
}

// Get is like Lookup but returns an empty string for missing keys and
// logs load errors instead of returning them.
func (e *Env) Get(key string) string {
	v, _, err := e.Lookup(key)
	if err != nil {
		e.log.Error("failed to load env files", "key", key, "error", err)
		return ""
	}
	return v
}
