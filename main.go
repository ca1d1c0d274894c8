package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/places-popup/internal/app"
	"github.com/atomicstack/places-popup/internal/config"
	"github.com/atomicstack/places-popup/internal/logging"
	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCommand(os.Environ())
	err := cmd.Execute()
	logging.Sync()
	if err == nil {
		return
	}
	if exitErr, ok := err.(*exitError); ok {
		os.Exit(exitErr.code)
	}
	os.Exit(2)
}

func newRootCommand(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "places-popup",
		Short:         "Panel applet listing favorite places and the trash",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, environ)
			if err != nil {
				return err
			}
			if err := app.Run(cfg.App); err != nil {
				logging.Error(err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return &exitError{code: 1, err: err}
			}
			return nil
		},
	}
	config.Bind(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the current places and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, environ)
			if err != nil {
				return err
			}
			if err := app.List(cfg.App, cmd.OutOrStdout()); err != nil {
				logging.Error(err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return &exitError{code: 1, err: err}
			}
			return nil
		},
	})
	return root
}

// setup resolves and validates the runtime config, then configures logging.
// Config errors exit with status 2.
func setup(cmd *cobra.Command, environ []string) (config.Config, error) {
	cfg, err := config.Resolve(cmd.Flags(), environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return config.Config{}, &exitError{code: 2, err: err}
	}
	cfg.Args = append([]string(nil), os.Args[1:]...)
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	return cfg, nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
