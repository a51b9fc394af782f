// internal/config/config.go
//
// Layered configuration for the CLI and server.
//
// Precedence (highest first):
//   1. command-line flags bound with BindFlags
//   2. environment (WRDLSTAB_* , plus LOG_LEVEL / PORT / CLIENT_ORIGIN / JWT_SECRET)
//   3. wrdlstab.yaml in the working directory, or the file given by --config
//   4. defaults below
//
// A .env file, if present, is loaded into the environment first.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/rank"
)

// Config keys.
const (
	KeyLength       = "length"
	KeyWordsFile    = "words_file"
	KeyDB           = "db"
	KeyLang         = "lang"
	KeyTopN         = "top_n"
	KeyMaxShow      = "max_show"
	KeyPort         = "port"
	KeyClientOrigin = "client_origin"
	KeyJWTSecret    = "jwt_secret"
	KeyLogLevel     = "log_level"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Length       int
	WordsFile    string
	DB           string
	Lang         string
	TopN         int
	MaxShow      int
	Port         string
	ClientOrigin string
	JWTSecret    string
	LogLevel     string
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyLength, 5)
	v.SetDefault(KeyWordsFile, "")
	v.SetDefault(KeyDB, "./data/freq.db")
	v.SetDefault(KeyLang, "en")
	v.SetDefault(KeyTopN, 50000)
	v.SetDefault(KeyMaxShow, rank.DefaultMaxShow)
	v.SetDefault(KeyPort, "5175")
	v.SetDefault(KeyClientOrigin, "http://localhost:5173")
	v.SetDefault(KeyJWTSecret, "")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix("WRDLSTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// unprefixed names kept for parity with the usual server env files
	_ = v.BindEnv(KeyLogLevel, "WRDLSTAB_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv(KeyPort, "WRDLSTAB_PORT", "PORT")
	_ = v.BindEnv(KeyClientOrigin, "WRDLSTAB_CLIENT_ORIGIN", "CLIENT_ORIGIN")
	_ = v.BindEnv(KeyJWTSecret, "WRDLSTAB_JWT_SECRET", "JWT_SECRET")
	return v
}

// BindFlags binds every flag in fs whose name (with '-' → '_') is a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isKey(key) {
			return
		}
		if e := v.BindPFlag(key, f); e != nil && err == nil {
			err = e
		}
	})
	return err
}

func isKey(k string) bool {
	switch k {
	case KeyLength, KeyWordsFile, KeyDB, KeyLang, KeyTopN, KeyMaxShow,
		KeyPort, KeyClientOrigin, KeyJWTSecret, KeyLogLevel:
		return true
	}
	return false
}

// Load reads the optional config file and returns the resolved values.
// An explicit file that cannot be read is an error; a missing default file is not.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("wrdlstab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Length:       v.GetInt(KeyLength),
		WordsFile:    v.GetString(KeyWordsFile),
		DB:           v.GetString(KeyDB),
		Lang:         v.GetString(KeyLang),
		TopN:         v.GetInt(KeyTopN),
		MaxShow:      v.GetInt(KeyMaxShow),
		Port:         v.GetString(KeyPort),
		ClientOrigin: v.GetString(KeyClientOrigin),
		JWTSecret:    v.GetString(KeyJWTSecret),
		LogLevel:     v.GetString(KeyLogLevel),
	}
	if cfg.Length < 1 || cfg.Length > puzzle.MaxLength {
		return Config{}, fmt.Errorf("%w: length must be 1..%d, got %d", ErrInvalidConfig, puzzle.MaxLength, cfg.Length)
	}
	if cfg.Lang == "" {
		return Config{}, fmt.Errorf("%w: lang is empty", ErrInvalidConfig)
	}
	return cfg, nil
}
