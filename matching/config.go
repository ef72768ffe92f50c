package matching

import (
	"github.com/kay-ou/SimTradeLab-sub001/config/encoding"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'execution.matching'.
const namedLogger = "matching"

// Config represents the configuration of the matching engine.
type Config struct {
	Level encoding.LogLevel

	LogPriceLevelsDebug   bool
	LogRemovedOrdersDebug bool
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:                 encoding.LogLevel{Level: logging.InfoLevel},
		LogPriceLevelsDebug:   false,
		LogRemovedOrdersDebug: false,
	}
}
