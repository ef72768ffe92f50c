package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/kay-ou/SimTradeLab-sub001/config"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
)

type InitCmd struct {
	config.RootPathFlag

	Force bool `short:"f" long:"force" description:"Overwrite an existing configuration at the specified path"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	logger := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer logger.AtExit()

	cfgPath := filepath.Join(opts.RootPath, "config.toml")
	if _, err := os.Stat(cfgPath); err == nil && !opts.Force {
		return fmt.Errorf("configuration already exists at `%s` please remove it first or re-run using -f", cfgPath)
	}

	cfg := config.NewDefaultConfig()
	if err := config.Write(opts.RootPath, cfg); err != nil {
		return fmt.Errorf("couldn't save configuration file: %w", err)
	}

	logger.Info("configuration generated successfully", logging.String("path", cfgPath))
	return nil
}

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{
		RootPathFlag: config.NewRootPathFlag(),
	}

	short := "Initializes a backtest root"
	long := "Generate the minimal configuration required for a backtest run"

	_, err := parser.AddCommand("init", short, long, &initCmd)
	return err
}
