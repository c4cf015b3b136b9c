package csvtable

// Config holds the strategies used while encoding values. The zero value
// behaves like [DefaultConfig].
type Config struct {
	DateStrategy DateStrategy
	BoolStrategy BoolStrategy
}

// DefaultConfig is used by tables built without a configuration. It encodes
// dates as ISO 8601 and booleans as true/false. Treat it as read-only; derive
// variants from [Default] instead.
var DefaultConfig = Config{
	DateStrategy: ISO8601,
	BoolStrategy: TrueFalse,
}

// Default returns a copy of [DefaultConfig].
func Default() Config { return DefaultConfig }

// WithDateStrategy returns a copy of c using d for dates.
func (c Config) WithDateStrategy(d DateStrategy) Config {
	c.DateStrategy = d
	return c
}

// WithBoolStrategy returns a copy of c using b for booleans.
func (c Config) WithBoolStrategy(b BoolStrategy) Config {
	c.BoolStrategy = b
	return c
}

func resolve(cfg *Config) *Config {
	if cfg == nil {
		return &DefaultConfig
	}
	return cfg
}
