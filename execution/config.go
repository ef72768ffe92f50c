package execution

import (
	"github.com/kay-ou/SimTradeLab-sub001/config/encoding"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
)

const namedLogger = "execution"

// Config is the execution engine configuration. The four model names select
// registered plugins, ModelParams carries their parameters verbatim.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	MatchingEngine  string            `long:"matching-engine" description:"Name of the registered matching engine to run"`
	SlippageModel   string            `long:"slippage-model" description:"Name of the registered slippage model"`
	CommissionModel string            `long:"commission-model" description:"Name of the registered commission model"`
	LatencyModel    string            `long:"latency-model" description:"Name of the registered latency model"`
	ModelParams     map[string]string `long:"model-params" description:"Parameters passed to the cost model factories"`
}

// NewDefaultConfig creates an instance of the package specific configuration,
// given a pointer to a logger instance to be used for logging within the
// package.
func NewDefaultConfig() Config {
	return Config{
		Level:           encoding.LogLevel{Level: logging.InfoLevel},
		MatchingEngine:  "DepthMatchingEngine",
		SlippageModel:   "NoSlippage",
		CommissionModel: "NoCommission",
		LatencyModel:    "NoLatency",
		ModelParams:     map[string]string{},
	}
}
