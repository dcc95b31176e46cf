package config

const (
	defaultMaxNgramOrder = 4
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scoring: Scoring{
			MaxNgramOrder: defaultMaxNgramOrder,
			EvalAnswers:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
