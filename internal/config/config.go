package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/places-popup/internal/app"
	"github.com/atomicstack/places-popup/internal/launch"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Settings string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "PLACES_POPUP_"

const (
	flagSettings        = "settings"
	flagConfigRoot      = "config-root"
	flagFileManager     = "file-manager"
	flagTrashFlag       = "trash-flag"
	flagAnchor          = "anchor"
	flagPopupWidth      = "popup-width"
	flagTrashInterval   = "trash-interval"
	flagLegacyPlaces    = "legacy-places"
	flagCloseOnActivate = "close-on-activate"
	flagTrace           = "trace"
	flagLogFile         = "log-file"
	flagWidth           = "width"
	flagHeight          = "height"
)

// Bind registers the runtime flags on fs.
func Bind(fs *pflag.FlagSet) {
	fs.String(flagSettings, "", "path to a TOML settings file")
	fs.String(flagConfigRoot, "", "configuration store root (default $XDG_CONFIG_HOME/cosmic)")
	fs.String(flagFileManager, launch.DefaultFileManager, "file manager used to open places")
	fs.String(flagTrashFlag, launch.DefaultTrashFlag, "argument that makes the file manager open the trash")
	fs.String(flagAnchor, popup.AnchorTop.String(), "panel edge the applet sits on: top, bottom, left or right")
	fs.Float32(flagPopupWidth, popup.DefaultLimits().MaxWidth, "maximum popup width in units (200-300)")
	fs.Duration(flagTrashInterval, defaultTrashInterval, "how often the trash is checked (0 disables)")
	fs.Bool(flagLegacyPlaces, false, "list every well-known directory instead of favorites (deprecated)")
	fs.Bool(flagCloseOnActivate, false, "close the popup after opening a place")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, "", "path to the log file")
	fs.Int(flagWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(flagHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	_ = fs.MarkDeprecated(flagLegacyPlaces, "configure favorites in the file manager instead")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("places-popup", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := Resolve(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// Resolve fills flags left unset on the command line from the environment,
// then from the settings file, and builds the Config from the result.
func Resolve(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	explicit := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { explicit[f.Name] = true })

	// env values that do not parse are ignored, as if unset
	fs.VisitAll(func(f *pflag.Flag) {
		if explicit[f.Name] {
			return
		}
		if v, ok := env[envName(f.Name)]; ok && strings.TrimSpace(v) != "" {
			if fs.Set(f.Name, v) == nil {
				explicit[f.Name] = true
			}
		}
	})

	settings, _ := fs.GetString(flagSettings)
	if settings != "" {
		file, err := readSettings(settings)
		if err != nil {
			return Config{}, err
		}
		for name, value := range file {
			if explicit[name] {
				continue
			}
			if err := fs.Set(name, value); err != nil {
				return Config{}, fmt.Errorf("settings %s: %s: %w", settings, name, err)
			}
		}
	}
	return fromFlags(fs, settings)
}

func fromFlags(fs *pflag.FlagSet, settings string) (Config, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}
	boolean := func(name string) bool {
		v, err := fs.GetBool(name)
		errs = append(errs, err)
		return v
	}
	integer := func(name string) int {
		v, err := fs.GetInt(name)
		errs = append(errs, err)
		return v
	}
	popupWidth, err := fs.GetFloat32(flagPopupWidth)
	errs = append(errs, err)
	interval, err := fs.GetDuration(flagTrashInterval)
	errs = append(errs, err)
	anchor, err := popup.ParseAnchor(str(flagAnchor))
	errs = append(errs, err)

	cfg := Config{
		App: app.Config{
			ConfigRoot:      str(flagConfigRoot),
			FileManager:     strings.TrimSpace(str(flagFileManager)),
			TrashFlag:       strings.TrimSpace(str(flagTrashFlag)),
			Anchor:          anchor,
			PopupWidth:      popupWidth,
			TrashInterval:   interval,
			LegacyPlaces:    boolean(flagLegacyPlaces),
			CloseOnActivate: boolean(flagCloseOnActivate),
			Width:           integer(flagWidth),
			Height:          integer(flagHeight),
		},
		Logging: Logging{
			FilePath: str(flagLogFile),
			Trace:    boolean(flagTrace),
		},
		Settings: settings,
		Flags:    map[string]string{},
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	return cfg, nil
}

// readSettings decodes a flat TOML table. Keys use underscores or dashes.
func readSettings(path string) (map[string]string, error) {
	raw := map[string]interface{}{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	known := map[string]bool{}
	for _, name := range settingNames {
		known[name] = true
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]string, len(raw))
	for _, k := range keys {
		name := strings.ReplaceAll(k, "_", "-")
		if !known[name] {
			return nil, fmt.Errorf("read settings %s: unknown key %q", path, k)
		}
		switch v := raw[k].(type) {
		case map[string]interface{}, []interface{}:
			return nil, fmt.Errorf("read settings %s: %q must be a scalar", path, k)
		default:
			out[name] = fmt.Sprint(v)
		}
	}
	return out, nil
}

// settingNames lists the flags a settings file may set.
var settingNames = []string{
	flagConfigRoot, flagFileManager, flagTrashFlag, flagAnchor, flagPopupWidth,
	flagTrashInterval, flagLegacyPlaces, flagCloseOnActivate, flagTrace,
	flagLogFile, flagWidth, flagHeight,
}

func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// Validate rejects values the applet cannot run with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if w := cfg.App.PopupWidth; w < minPopupWidth || w > maxPopupWidth {
		errs = append(errs, fmt.Errorf("popup-width must be between %d and %d (got %g)", minPopupWidth, maxPopupWidth, w))
	}
	if cfg.App.TrashInterval < 0 {
		errs = append(errs, fmt.Errorf("trash-interval must be >= 0 (got %s)", cfg.App.TrashInterval))
	}
	if cfg.App.FileManager == "" {
		errs = append(errs, errors.New("file-manager must not be empty"))
	}
	return errors.Join(errs...)
}
