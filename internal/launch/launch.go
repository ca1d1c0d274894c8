// Package launch opens places in the file manager. Launches are fire and
// forget: a failure is logged and counted, never retried and never returned
// to the caller.
package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/go-logr/logr"
	"go.uber.org/atomic"
)

const (
	DefaultFileManager = "cosmic-files"
	DefaultTrashFlag   = "--trash"
)

// Spawner starts a process with a single argument without waiting for it.
type Spawner interface {
	Spawn(name, arg string) error
}

// ExecSpawner starts real processes. The child is reaped in the background.
type ExecSpawner struct{}

func (ExecSpawner) Spawn(name, arg string) error {
	cmd := exec.Command(name, arg)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", name, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Options configure a Dispatcher. Zero values fall back to the defaults.
type Options struct {
	FileManager string
	TrashFlag   string
	Spawner     Spawner
	Logger      logr.Logger
}

// Stats counts launch outcomes since the dispatcher was created.
type Stats struct {
	Launched int64
	Failed   int64
}

// Dispatcher turns activated locations into file manager launches.
type Dispatcher struct {
	fileManager string
	trashFlag   string
	spawner     Spawner
	log         logr.Logger

	launched atomic.Int64
	failed   atomic.Int64
}

func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		fileManager: strings.TrimSpace(opts.FileManager),
		trashFlag:   strings.TrimSpace(opts.TrashFlag),
		spawner:     opts.Spawner,
		log:         opts.Logger,
	}
	if d.fileManager == "" {
		d.fileManager = DefaultFileManager
	}
	if d.trashFlag == "" {
		d.trashFlag = DefaultTrashFlag
	}
	if d.spawner == nil {
		d.spawner = ExecSpawner{}
	}
	if d.log.GetSink() == nil {
		d.log = logr.Discard()
	}
	return d
}

// Argument returns the single argument passed to the file manager. Only
// absolute paths are passed, so a path can never be read as a flag.
func (d *Dispatcher) Argument(loc places.Location) (string, bool) {
	switch loc.Kind {
	case places.LocationTrash:
		return d.trashFlag, true
	case places.LocationPath:
		if !filepath.IsAbs(loc.Path) {
			return "", false
		}
		return loc.Path, true
	default:
		return "", false
	}
}

// Dispatch launches the file manager for loc and returns immediately.
func (d *Dispatcher) Dispatch(loc places.Location) {
	arg, ok := d.Argument(loc)
	if !ok {
		d.failed.Inc()
		d.log.Info("ignoring launch for unusable location", "location", loc.String())
		return
	}
	if err := d.spawner.Spawn(d.fileManager, arg); err != nil {
		d.failed.Inc()
		events.Launch.Failed(d.fileManager, arg, err)
		d.log.Error(err, "failed to launch file manager", "name", d.fileManager, "arg", arg)
		return
	}
	d.launched.Inc()
	events.Launch.Spawn(d.fileManager, arg)
	d.log.V(1).Info("launched file manager", "name", d.fileManager, "arg", arg)
}

func (d *Dispatcher) Stats() Stats {
	return Stats{Launched: d.launched.Load(), Failed: d.failed.Load()}
}

func (d *Dispatcher) FileManager() string {
	return d.fileManager
}
