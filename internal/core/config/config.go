package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the viewer and the lookup CLI.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the viewer will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// OrderService holds the order-lookup service connection details.
	OrderService OrderServiceConfig `mapstructure:",squash"`

	// Display controls how timestamps are rendered.
	Display DisplayConfig `mapstructure:",squash"`

	// Redis enables operator notices when set.
	Redis RedisConfig `mapstructure:",squash"`

	// Browser configures the headless browser used by the lookup CLI.
	Browser BrowserConfig `mapstructure:",squash"`
}

// OrderServiceConfig points at the remote order-lookup service.
type OrderServiceConfig struct {
	// URL is the base URL; lookups go to {URL}/order/{uid}.
	URL string `mapstructure:"ORDER_SERVICE_URL" required:"true"`
	// Timeout bounds a single lookup request.
	Timeout time.Duration `mapstructure:"ORDER_SERVICE_TIMEOUT" default:"10s"`
}

// DisplayConfig holds locale settings for rendered timestamps.
type DisplayConfig struct {
	// Locale is a BCP 47 tag such as ru-RU or en-US.
	Locale string `mapstructure:"DISPLAY_LOCALE" default:"ru-RU"`
	// TimeZone is an IANA zone name, or "Local".
	TimeZone string `mapstructure:"DISPLAY_TIMEZONE" default:"Local"`
}

// RedisConfig holds the notice store connection.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database]. Empty disables notices.
	URL string `mapstructure:"REDIS_URL"`
}

// BrowserConfig holds headless browser settings.
type BrowserConfig struct {
	// Bin is an explicit Chromium binary; empty lets rod download or locate one.
	Bin string `mapstructure:"BROWSER_BIN"`
	// Headless runs the browser without a window.
	Headless bool `mapstructure:"BROWSER_HEADLESS" default:"true"`
}

// Location resolves the configured display time zone.
func (d DisplayConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", d.TimeZone, err)
	}
	return loc, nil
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	return LoadWith(path, nil)
}

// LoadWith is Load with explicit key overrides applied on top of the file and
// environment. Empty override values are ignored.
func LoadWith(path string, overrides map[string]string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
