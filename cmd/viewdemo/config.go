package main

import (
	"github.com/kbukum/viewkit/config"
	"github.com/kbukum/viewkit/observability"
	"github.com/kbukum/viewkit/validation"
)

const serviceName = "viewdemo"

// Config is the viewdemo configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Demo      DemoConfig           `yaml:"demo" mapstructure:"demo"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// DemoConfig holds the inputs of the slice scenarios.
type DemoConfig struct {
	Numbers   []int `yaml:"numbers" mapstructure:"numbers" validate:"required,min=1"`
	TakeCount int   `yaml:"take_count" mapstructure:"take_count" validate:"gte=0"`
	DropCount int   `yaml:"drop_count" mapstructure:"drop_count" validate:"gte=0"`
}

var defaultNumbers = []int{1, 2, 3, 4, 5}

// defaultConfig is the base the loaded configuration is decoded over.
// Numbers stay nil here: decoding a shorter list over a longer slice would
// keep the trailing defaults.
func defaultConfig() Config {
	return Config{
		ServiceConfig: config.ServiceConfig{Name: serviceName},
		Demo: DemoConfig{
			TakeCount: 3,
			DropCount: 2,
		},
	}
}

func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Demo.Numbers == nil {
		c.Demo.Numbers = append([]int(nil), defaultNumbers...)
	}
	c.ServiceConfig.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Struct(&c.Demo); err != nil {
		return err
	}
	return c.Telemetry.Validate()
}
