package config

import (
	"os"
	"path/filepath"
)

// Empty is the top level options holder handed to the flags parser, the
// real options all live on the subcommands.
type Empty struct{}

// RootPathFlag is shared by every subcommand needing the configuration root.
type RootPathFlag struct {
	RootPath string `short:"r" long:"root-path" description:"Path of the root directory in which the configuration is located"`
}

// NewRootPathFlag returns the flag preset to the default root directory.
func NewRootPathFlag() RootPathFlag {
	return RootPathFlag{
		RootPath: DefaultRoot(),
	}
}

// DefaultRoot is the default configuration directory, ~/.simtradelab or the
// working directory when the home directory cannot be resolved.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".simtradelab")
}
