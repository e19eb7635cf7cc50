package observability

import (
	"time"

	"github.com/kbukum/viewkit/validation"
)

// Config is the telemetry section of a command configuration.
type Config struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate *float64      `yaml:"sample_rate" mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// ApplyDefaults fills the endpoint, sample rate and export interval.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == nil {
		c.SampleRate = SampleRate(1.0)
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// SampleRate returns a pointer for Config.SampleRate literals.
func SampleRate(rate float64) *float64 {
	return &rate
}

// sampleRate is the configured rate, or 1.0 when the key was never set.
// An explicit 0 is kept and disables sampling.
func (c *Config) sampleRate() float64 {
	if c.SampleRate == nil {
		return 1.0
	}
	return *c.SampleRate
}

// Validate checks the section.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

func (c *Config) meterConfig(service, version, environment string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    service,
		ServiceVersion: version,
		Environment:    environment,
		Endpoint:       c.Endpoint,
		Insecure:       c.Insecure,
		Interval:       c.Interval,
	}
}

func (c *Config) tracerConfig(service, version, environment string) TracerConfig {
	return TracerConfig{
		ServiceName:    service,
		ServiceVersion: version,
		Environment:    environment,
		Endpoint:       c.Endpoint,
		Insecure:       c.Insecure,
		SampleRate:     c.sampleRate(),
	}
}
