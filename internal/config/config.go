package config

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	_EnvPrefix  = "TIMESLOTS"
	_ConfigName = "timeslots"
)

// Config is read from an optional timeslots.yaml, overridden by
// TIMESLOTS_* environment variables.
type Config struct {
	Environment     string `mapstructure:"environment" valid:"required,in(development|production)"`
	Timezone        string `mapstructure:"timezone" valid:"required"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`

	RecurrenceHorizon time.Duration `mapstructure:"recurrence_horizon"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("environment", EnvProduction)
	v.SetDefault("timezone", "UTC")
	v.SetDefault("metrics_textfile", "")
	v.SetDefault("recurrence_horizon", 90*24*time.Hour)
}

// Load reads the configuration file at path, or looks for timeslots.yaml
// in the working directory when path is empty. A missing default file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults(v)

	v.SetEnvPrefix(_EnvPrefix)
	v.AutomaticEnv()

	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(_ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if errRead := v.ReadInConfig(); errRead != nil {
		var errNotFound viper.ConfigFileNotFoundError

		if len(path) > 0 || !errors.As(errRead, &errNotFound) {
			return nil,
				fmt.Errorf("read config: %w", errRead)
		}
	}

	var result Config

	if errUnmarshal := v.Unmarshal(&result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("decode config: %w", errUnmarshal)
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &result,
		nil
}

func (cfg *Config) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(cfg); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "timeslots",
			Caller:      "Config.IsValid",
			Issue:       errValidation,
		}
	}

	if cfg.RecurrenceHorizon <= 0 {
		return goerrors.ErrValidation{
			Caller: "Config.IsValid",
			Issue: goerrors.ErrNegativeInput{
				InputName: "RecurrenceHorizon",
			},
		}
	}

	if _, errLocation := time.LoadLocation(cfg.Timezone); errLocation != nil {
		return goerrors.ErrValidation{
			Caller: "Config.IsValid",
			Issue:  errLocation,
		}
	}

	return nil
}

func (cfg *Config) Location() *time.Location {
	location, errLocation := time.LoadLocation(cfg.Timezone)
	if errLocation != nil {
		return time.UTC
	}

	return location
}
