package util

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ReadConfig loads ./data/config.* if present. A missing config file is not an error,
// defaults and BINKNAP_* environment variables still apply.
func ReadConfig() error {
	setDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvPrefix("BINKNAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("RESULT_FILE", "result.txt")
	viper.SetDefault("CLASSIFY_MODE", "strict")
	viper.SetDefault("CUT_POLICY", "strict")
	viper.SetDefault("MAX_POINTS", 0)
	viper.SetDefault("COMPRESS", false)

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("CACHE_SIZE", 256)
	viper.SetDefault("MAX_REQUEST_ITEMS", 100000)
	viper.SetDefault("MAX_RESPONSE_POINTS", 200000)
}

type SolverConfig struct {
	ResultFile   string `validate:"required"`
	ClassifyMode string `validate:"oneof=strict literal"`
	CutPolicy    string `validate:"oneof=none zone strict"`
	MaxPoints    int    `validate:"min=0"`
	Compress     bool
}

func LoadSolverConfig() (SolverConfig, error) {
	cfg := SolverConfig{
		ResultFile:   viper.GetString("RESULT_FILE"),
		ClassifyMode: viper.GetString("CLASSIFY_MODE"),
		CutPolicy:    viper.GetString("CUT_POLICY"),
		MaxPoints:    viper.GetInt("MAX_POINTS"),
		Compress:     viper.GetBool("COMPRESS"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return SolverConfig{}, WrapErrorf(err, ErrBadParamInput, "invalid solver config")
	}
	return cfg, nil
}

type ServerConfig struct {
	Port              int           `validate:"min=1,max=65535"`
	Timeout           time.Duration `validate:"gt=0"`
	RateLimitRPS      float64       `validate:"gte=0"`
	RateLimitBurst    int           `validate:"gte=0"`
	CacheSize         int           `validate:"gte=0"`
	MaxRequestItems   int           `validate:"gt=0"`
	MaxResponsePoints int           `validate:"gt=0"` // points held in memory for one response
}

func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		Port:              viper.GetInt("API_PORT"),
		Timeout:           viper.GetDuration("API_TIMEOUT"),
		RateLimitRPS:      viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:    viper.GetInt("RATE_LIMIT_BURST"),
		CacheSize:         viper.GetInt("CACHE_SIZE"),
		MaxRequestItems:   viper.GetInt("MAX_REQUEST_ITEMS"),
		MaxResponsePoints: viper.GetInt("MAX_RESPONSE_POINTS"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return ServerConfig{}, WrapErrorf(err, ErrBadParamInput, "invalid server config")
	}
	return cfg, nil
}
