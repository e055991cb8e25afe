// Package main provides the entry point for the licht brightness utility.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/licht-go/licht/internal/brightness"
	"github.com/licht-go/licht/internal/config"
	"github.com/licht-go/licht/internal/control"
	"github.com/licht-go/licht/internal/logind"
	"github.com/licht-go/licht/internal/stepping"
	"github.com/licht-go/licht/internal/sysfs"
)

type cliOptions struct {
	deviceName string
	all        bool
	list       bool

	set       bool
	linear    bool
	geometric bool
	parabolic float64
	blend     string

	minBrightness int
	dryRun        bool
	verbose       bool
	configPath    string
}

var (
	opts    cliOptions
	rootCmd = &cobra.Command{
		Use:   "licht [step]",
		Short: "Adjust backlight and LED brightness along perceptual curves",
		Long: `licht computes a new brightness for a sysfs backlight or LED device
from its current value, its hardware maximum, and a signed step.

The step is interpreted by the chosen stepping mode: a raw value for
--set and --linear, a percentage of the current value for --geometric,
and a percentage of the position on a perceptual curve for --parabolic
and --blend. Without a mode flag the parabolic curve x^2 is used.

Writes go to the sysfs attribute directly when permitted and fall back
to the systemd-logind SetBrightness API.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.deviceName, "device-name", "", "Backlight or LED device to control, e.g. intel_backlight")
	flags.BoolVar(&opts.all, "all", false, "Adjust every discovered device")
	flags.BoolVar(&opts.list, "list", false, "List available devices and exit")
	flags.BoolVar(&opts.set, "set", false, "Set the raw brightness value to STEP")
	flags.BoolVar(&opts.linear, "linear", false, "Add the raw STEP value onto the current brightness")
	flags.BoolVar(&opts.geometric, "geometric", false, "Change the current brightness by STEP percent of itself")
	flags.Float64Var(&opts.parabolic, "parabolic", stepping.DefaultExponent,
		"Advance STEP% along the curve x^EXPONENT")
	flags.StringVar(&opts.blend, "blend", "",
		"Advance STEP% along ratio*x^a + (1-ratio)*(1-(1-x)^(1/b)), e.g. (0.75,1.8,2.2)")
	flags.IntVar(&opts.minBrightness, "min-brightness", 0, "Clamp the result to at least this value")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Compute and report without writing (implies --verbose)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	if opts.dryRun {
		opts.verbose = true
	}
	setupLogging(opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// Dry runs and listings never write, so they skip the bus.
	var sysfsOpts []sysfs.Option
	if !opts.dryRun && !opts.list {
		client, err := logind.Connect()
		if err != nil {
			log.Debug().Err(err).Msg("logind unavailable, writing sysfs attributes directly only")
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					log.Debug().Err(err).Msg("Failed to close system bus connection")
				}
			}()
			sysfsOpts = append(sysfsOpts, sysfs.WithSetter(client))
		}
	}

	if opts.list {
		return listDevices(sysfsOpts)
	}

	if len(args) == 0 {
		return fmt.Errorf("no step value provided")
	}
	step, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid step value %q", args[0])
	}

	sel, err := buildSelection(gatherModeFlags(cmd), cfg, step)
	if err != nil {
		return err
	}
	strat, err := sel.Strategy()
	if err != nil {
		return err
	}

	minBrightness := opts.minBrightness
	if !cmd.Flags().Changed("min-brightness") && cfg.MinBrightness > 0 {
		minBrightness = cfg.MinBrightness
	}

	devices, err := pickDevices(sysfsOpts)
	if err != nil {
		return err
	}

	results, err := control.ApplyAll(devices, strat, control.Options{
		MinBrightness: minBrightness,
		DryRun:        opts.dryRun,
	})
	for _, res := range results {
		log.Info().
			Str("device", res.Info.Name).
			Int("from", res.Current).
			Int("to", res.New).
			Msgf("%.0f%% -> %.0f%%",
				brightness.Percent(res.Current, res.Max),
				brightness.Percent(res.New, res.Max))
	}
	return err
}

// setupLogging mirrors the original tool's verbose switch: quiet by
// default, human-readable debug output when asked.
func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// modeFlags captures which stepping flags were actually set on the
// command line.
type modeFlags struct {
	set       bool
	linear    bool
	geometric bool
	parabolic *float64
	blend     string
}

func gatherModeFlags(cmd *cobra.Command) modeFlags {
	mf := modeFlags{
		set:       opts.set,
		linear:    opts.linear,
		geometric: opts.geometric,
		blend:     opts.blend,
	}
	if cmd.Flags().Changed("parabolic") {
		exponent := opts.parabolic
		mf.parabolic = &exponent
	}
	return mf
}

// buildSelection turns flags into a stepping selection, falling back to
// the config file's default mode when no flag requested one.
func buildSelection(mf modeFlags, cfg config.Config, step int) (stepping.Selection, error) {
	sel := stepping.Selection{
		Step:      step,
		Set:       mf.set,
		Linear:    mf.linear,
		Geometric: mf.geometric,
		Parabolic: mf.parabolic,
	}
	if mf.blend != "" {
		spec, err := stepping.ParseBlendSpec(mf.blend)
		if err != nil {
			return sel, err
		}
		sel.Blend = &spec
	}
	if sel.ModeCount() == 0 {
		return applyConfigMode(sel, cfg)
	}
	return sel, nil
}

func applyConfigMode(sel stepping.Selection, cfg config.Config) (stepping.Selection, error) {
	switch cfg.Stepping {
	case "":
	case "set":
		sel.Set = true
	case "linear":
		sel.Linear = true
	case "geometric":
		sel.Geometric = true
	case "parabolic":
		exponent := cfg.Parabolic.Exponent
		if exponent == 0 {
			exponent = stepping.DefaultExponent
		}
		sel.Parabolic = &exponent
	case "blend":
		spec, err := stepping.ParseBlendSpec(cfg.Blend)
		if err != nil {
			return sel, err
		}
		sel.Blend = &spec
	default:
		return sel, fmt.Errorf("unknown stepping mode %q in config", cfg.Stepping)
	}
	return sel, nil
}

// pickDevices resolves which devices this invocation targets.
func pickDevices(sysfsOpts []sysfs.Option) ([]sysfs.Device, error) {
	if opts.deviceName != "" {
		l, err := sysfs.OpenByName(opts.deviceName, sysfsOpts...)
		if err != nil {
			return nil, err
		}
		return []sysfs.Device{l}, nil
	}

	lights := sysfs.Discover(sysfsOpts...)
	if len(lights) == 0 {
		return nil, fmt.Errorf("no backlight or led devices found")
	}
	if opts.all {
		return asDevices(lights), nil
	}

	log.Info().Str("device", lights[0].Info().Name).Msg("No device name supplied, using first discovered device")
	return []sysfs.Device{lights[0]}, nil
}

func asDevices(lights []*sysfs.Light) []sysfs.Device {
	devices := make([]sysfs.Device, len(lights))
	for i, l := range lights {
		devices[i] = l
	}
	return devices
}

func listDevices(sysfsOpts []sysfs.Option) error {
	lights := sysfs.Discover(sysfsOpts...)
	if len(lights) == 0 {
		return fmt.Errorf("no backlight or led devices found")
	}
	for _, l := range lights {
		current, err := l.ReadBrightness()
		if err != nil {
			return err
		}
		max, err := l.ReadMaxBrightness()
		if err != nil {
			return err
		}
		fmt.Println(formatDevice(l.Info(), current, max))
	}
	return nil
}

// formatDevice renders one device the way --list prints it.
func formatDevice(info sysfs.DeviceInfo, current, max int) string {
	return fmt.Sprintf("Device: %s\nCurrent brightness: %d (%.0f%%)\nMax brightness: %d",
		info.Path, current, brightness.Percent(current, max), max)
}

var negativeStep = regexp.MustCompile(`^-[0-9]+$`)

// takesValue reports whether the named long flag consumes the following
// argument when written as "--name value".
func takesValue(name string) bool {
	f := rootCmd.Flags().Lookup(strings.TrimPrefix(name, "--"))
	if f == nil {
		return false
	}
	return f.Value.Type() != "bool"
}

// normalizeArgs moves a bare negative step behind a "--" terminator so
// pflag does not read it as a bundle of shorthand flags.
func normalizeArgs(args []string) []string {
	skipNext := false
	for i, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "--") && !strings.Contains(arg, "=") && takesValue(arg) {
			skipNext = true
			continue
		}
		if negativeStep.MatchString(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, args[i+1:]...)
			out = append(out, "--", arg)
			return out
		}
	}
	return args
}

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("licht failed")
	}
}
