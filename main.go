package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/gocomplete/internal/app"
	"github.com/gocomplete/internal/config"
	"github.com/gocomplete/internal/console"
	"github.com/gocomplete/internal/logging"
	"github.com/gocomplete/internal/models"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line; each set flag overrides the config file
type options struct {
	configPath  string
	sourceName  string
	delay       time.Duration
	ordering    string
	endpoint    string
	table       string
	attribute   string
	region      string
	logFile     string
	debug       bool
	writeConfig bool

	flagSet *pflag.FlagSet
}

func newOptions() *options {
	o := &options{}

	flagSet := pflag.NewFlagSet("gocomplete", pflag.ContinueOnError)
	flagSet.StringVar(&o.configPath, "config", config.DefaultPath(), "path to the TOML config file")
	flagSet.StringVar(&o.sourceName, "source", "", "candidate source: static, http or dynamodb")
	flagSet.DurationVar(&o.delay, "delay", 0, "simulated lookup latency per keystroke")
	flagSet.StringVar(&o.ordering, "ordering", "", "result ordering: latest or arrival")
	flagSet.StringVar(&o.endpoint, "endpoint", "", "endpoint of the http source, or the DynamoDB endpoint for the dynamodb source")
	flagSet.StringVar(&o.table, "table", "", "DynamoDB table holding candidates")
	flagSet.StringVar(&o.attribute, "attribute", "", "DynamoDB string attribute to read")
	flagSet.StringVar(&o.region, "region", "", "AWS region")
	flagSet.StringVar(&o.logFile, "log-file", "", "write logs to this file")
	flagSet.BoolVar(&o.debug, "debug", false, "log at debug level")
	flagSet.BoolVar(&o.writeConfig, "write-config", false, "write the effective config to --config and exit")
	o.flagSet = flagSet

	return o
}

func (o *options) parse(args []string) error {
	if err := o.flagSet.Parse(args); err != nil {
		return err
	}
	if rest := o.flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return nil
}

func (o *options) configService() config.ConfigService {
	if o.flagSet.Changed("config") {
		return config.NewConfigServiceAt(o.configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file. An unreadable file falls back to the
// defaults, reported through loadErr, unless it is about to be overwritten.
func (o *options) loadConfig(svc config.ConfigService) (cfg *config.Config, loadErr error, err error) {
	cfg, loadErr = svc.Load()
	if loadErr == nil {
		return cfg, nil, nil
	}
	if o.writeConfig {
		return nil, nil, fmt.Errorf("refusing to overwrite %s: %w", svc.Path(), loadErr)
	}
	return config.DefaultConfig(), loadErr, nil
}

// apply overrides cfg with every flag that was set and validates the result
func (o *options) apply(cfg *config.Config) error {
	changed := o.flagSet.Changed

	if changed("source") {
		cfg.Lookup.Source = models.SourceKind(o.sourceName)
	}
	if changed("delay") {
		cfg.Lookup.Delay = config.Duration{Duration: o.delay}
	}
	if changed("ordering") {
		cfg.Lookup.Ordering = o.ordering
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if changed("endpoint") {
		if cfg.Lookup.Source == models.SourceDynamo {
			cfg.DynamoDB.Endpoint = o.endpoint
		} else {
			cfg.HTTP.Endpoint = o.endpoint
		}
	}
	if changed("table") {
		cfg.DynamoDB.Table = o.table
	}
	if changed("attribute") {
		cfg.DynamoDB.Attribute = o.attribute
	}
	if changed("region") {
		cfg.DynamoDB.Region = o.region
	}
	if changed("log-file") {
		cfg.Log.File = o.logFile
	}
	return nil
}

func run(args []string) error {
	o := newOptions()
	if err := o.parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	svc := o.configService()
	cfg, loadErr, err := o.loadConfig(svc)
	if err != nil {
		return err
	}
	if err := o.apply(cfg); err != nil {
		return err
	}

	if o.writeConfig {
		if err := svc.SaveToPath(cfg, svc.Path()); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", svc.Path())
		return nil
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, "gocomplete", logging.ParseLevel(cfg.Log.Level, o.debug))
	if err != nil {
		return err
	}
	defer closer.Close()

	if loadErr != nil {
		logger.Error("config load failed, using defaults", "path", svc.Path(), "err", loadErr)
	}

	if err := console.Prepare(); err != nil {
		logger.Warn("console setup failed", "err", err)
	}
	logger.Debug("console ready", "codepage", console.CodePage())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	src, err := app.NewSource(ctx, cfg, logger)
	cancel()
	if err != nil {
		return err
	}

	logger.Info("starting", "source", cfg.Lookup.Source, "delay", cfg.Lookup.Delay, "ordering", cfg.Lookup.Ordering)

	// Mouse capture is disabled to allow text selection in terminal
	p := tea.NewProgram(
		app.New(cfg, src, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running GoComplete: %w", err)
	}
	return nil
}
