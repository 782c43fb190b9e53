package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cconfig "github.com/msto63/chronos/foundation/core/config"
	cerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/log"

	"github.com/msto63/chronos/internal/clock"
	"github.com/msto63/chronos/internal/output"
	"github.com/msto63/chronos/internal/resolver"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0-dev"

var (
	cfgFile      string
	verbose      bool
	epochFlag    bool
	millisFlag   bool
	readableFlag bool
	outputFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "chronos [zeitausdruck]",
	Short: "Zeitausdrücke auflösen und formatieren",
	Long: `chronos löst einen Zeitausdruck auf und gibt ihn formatiert aus.

Eingabeformate:
  RFC3339                z.B. 2022-02-02T01:00:00Z
  YYYY-MM-DD HH:MM:SS    lokale Zeit, z.B. "2022-02-02 01:00:00"
  <Dauer> ago|later      relativ zu jetzt, z.B. "2 hours ago"

Ohne Eingabe wird die aktuelle Zeit verwendet.

Beispiele:
  chronos --epoch
  chronos --millis "2 hours ago"
  chronos --readable --output UTC "2022-02-02 01:00:00"
  chronos -r -o Local "1 day later"`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	Version:       Version,
	RunE:          runResolve,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./chronos.toml, ~/.chronos.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.Flags().BoolVarP(&epochFlag, "epoch", "e", false, "Unix-Epoche in Sekunden ausgeben")
	rootCmd.Flags().BoolVarP(&millisFlag, "millis", "m", false, "Unix-Epoche in Millisekunden ausgeben")
	rootCmd.Flags().BoolVarP(&readableFlag, "readable", "r", false, "Lesbares RFC3339-Format ausgeben")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Zeitzone für --readable: UTC oder Local")

	rootCmd.MarkFlagsMutuallyExclusive("epoch", "millis", "readable")
}

func runResolve(cmd *cobra.Command, args []string) error {
	logger := log.New().WithCorrelationID(uuid.NewString())
	if verbose {
		logger.SetLevel(log.LevelDebug)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if cfg != nil && !verbose {
		if level, lerr := log.ParseLevel(cfg.GetString("log.level", "info")); lerr == nil {
			logger.SetLevel(level)
		}
	}

	mode, err := buildMode(modeSelection{
		epoch:    epochFlag,
		millis:   millisFlag,
		readable: readableFlag,
		zone:     outputFlag,
	}, cfg)
	if err != nil {
		return err
	}
	logger.Debug("output mode selected",
		log.Field("kind", mode.Kind.String()),
		log.Field("zone", mode.Zone.String()))

	input := ""
	if len(args) > 0 {
		input = args[0]
	}

	result, err := resolveAndFormat(input, mode, clock.System{}, time.Local, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// resolveAndFormat runs the resolution pipeline: parse the expression,
// then render it in the requested mode.
func resolveAndFormat(input string, mode output.Mode, clk clock.Clock, loc *time.Location, logger *log.Logger) (string, error) {
	instant, err := resolver.New(clk, loc, logger).Resolve(input)
	if err != nil {
		return "", err
	}
	return output.NewFormatter(clk, loc, logger).Format(instant, mode)
}

// modeSelection carries the raw flag state into mode validation.
type modeSelection struct {
	epoch    bool
	millis   bool
	readable bool
	zone     string
}

// buildMode validates the flag combination and merges config defaults into
// the tagged output mode. Exactly one mode must result; --output is
// required for readable output and forbidden otherwise.
func buildMode(sel modeSelection, cfg *cconfig.Config) (output.Mode, error) {
	count := 0
	for _, set := range []bool{sel.epoch, sel.millis, sel.readable} {
		if set {
			count++
		}
	}

	var kind output.Kind
	switch {
	case count > 1:
		// Also guarded by cobra's mutual exclusion when set via flags
		return output.Mode{}, fmt.Errorf("die Optionen --epoch, --millis und --readable schließen sich gegenseitig aus")
	case sel.epoch:
		kind = output.KindEpoch
	case sel.millis:
		kind = output.KindMillis
	case sel.readable:
		kind = output.KindReadable
	default:
		configured := ""
		if cfg != nil {
			configured = strings.ToLower(cfg.GetString("output.mode"))
		}
		switch configured {
		case "epoch":
			kind = output.KindEpoch
		case "millis":
			kind = output.KindMillis
		case "readable":
			kind = output.KindReadable
		case "":
			return output.Mode{}, fmt.Errorf("genau eine der Optionen --epoch, --millis oder --readable wird benötigt")
		default:
			return output.Mode{}, fmt.Errorf("ungültiger Wert %q für output.mode in der Config-Datei", configured)
		}
	}

	if kind != output.KindReadable {
		if sel.zone != "" {
			return output.Mode{}, fmt.Errorf("--output ist nur zusammen mit --readable erlaubt")
		}
		return output.Mode{Kind: kind}, nil
	}

	zoneValue := sel.zone
	if zoneValue == "" && cfg != nil {
		zoneValue = cfg.GetString("output.zone")
	}
	if zoneValue == "" {
		return output.Mode{}, fmt.Errorf("--readable benötigt --output UTC|Local")
	}

	zone, err := output.ParseZone(zoneValue)
	if err != nil {
		return output.Mode{}, fmt.Errorf("ungültige Zeitzone %q: erlaubt sind UTC oder Local", zoneValue)
	}

	return output.Mode{Kind: output.KindReadable, Zone: zone}, nil
}

// loadConfig loads the configuration file. An explicitly given file must
// exist; the default locations are optional.
func loadConfig(logger *log.Logger) (*cconfig.Config, error) {
	if cfgFile != "" {
		cfg, err := cconfig.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("Config-Datei konnte nicht geladen werden: %w", err)
		}
		logger.Debug("config loaded", log.Field("path", cfg.FilePath()))
		return cfg.WithEnvPrefix("CHRONOS"), nil
	}

	for _, path := range defaultConfigPaths() {
		cfg, err := cconfig.Load(path)
		if err == nil {
			logger.Debug("config loaded", log.Field("path", cfg.FilePath()))
			return cfg.WithEnvPrefix("CHRONOS"), nil
		}
		if !cerror.HasCode(err, cerror.CodeConfigNotFound) {
			return nil, fmt.Errorf("Config-Datei %s ist fehlerhaft: %w", path, err)
		}
	}

	return nil, nil
}

// defaultConfigPaths lists the optional config file locations in lookup
// order.
func defaultConfigPaths() []string {
	paths := []string{"chronos.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".chronos.toml"))
	}
	return paths
}
