/*
Package config loads service configuration.

SOURCES (later wins):
  1. Built-in defaults (Default)
  2. config.yaml (explicit path, or searched in ., ./config, ../config, ../../config)
  3. Environment variables prefixed PAYROLL_

ENVIRONMENT MAPPING:
  Underscores separate path segments and each segment is matched against the
  keys already present in the YAML, ignoring case:

    PAYROLL_HTTP_PORT=9090                   -> http.port
    PAYROLL_ENV_LOG_LEVEL=debug              -> env.log.level
    PAYROLL_PAY_STRICT=true                  -> pay.strict
    PAYROLL_PAY_DEFAULTPAYPERCOMMISSION=10   -> pay.defaultPayPerCommission
    PAYROLL_HTTP_ALLOWEDORIGINS=a,b          -> http.allowedOrigins
*/
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	envPrefix      = "PAYROLL_"
	configFileName = "config.yaml"
)

type Config struct {
	Env  Env  `yaml:"env"`
	HTTP HTTP `yaml:"http"`
	Pay  Pay  `yaml:"pay"`
}

type Env struct {
	Name string `yaml:"name"`
	Log  Log    `yaml:"log"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

type HTTP struct {
	Port           int      `yaml:"port" validate:"min=1,max=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	MaxBodyBytes   int64    `yaml:"maxBodyBytes" validate:"gt=0"`
	Timeouts       Timeouts `yaml:"timeouts"`
}

type Timeouts struct {
	Read     time.Duration `yaml:"read"`
	Write    time.Duration `yaml:"write"`
	Idle     time.Duration `yaml:"idle"`
	Shutdown time.Duration `yaml:"shutdown"`
}

// Pay holds the defaults handed to the employee factory.
type Pay struct {
	Currency                string  `yaml:"currency" validate:"len=3,alpha"`
	DefaultPayPerCommission float64 `yaml:"defaultPayPerCommission" validate:"gte=0"`
	Strict                  bool    `yaml:"strict"`
}

// Default returns the configuration used when no file or variable overrides it.
func Default() *Config {
	return &Config{
		Env: Env{
			Name: "local",
			Log:  Log{Level: "info", Format: "json"},
		},
		HTTP: HTTP{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
			MaxBodyBytes:   1 << 20,
			Timeouts: Timeouts{
				Read:     15 * time.Second,
				Write:    15 * time.Second,
				Idle:     60 * time.Second,
				Shutdown: 30 * time.Second,
			},
		},
		Pay: Pay{
			Currency:                "USD",
			DefaultPayPerCommission: 100,
		},
	}
}

// Load reads configuration from path, or from the first config.yaml found in
// the search paths when path is empty. A missing file is only an error when
// path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	configFile := path
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, envPrefix), existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "yaml",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.HTTP.Port)
}

func findConfigFile() string {
	for _, dir := range []string{".", "config", "../config", "../../config"} {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// =============================================================================
// ENV KEY MATCHING
// =============================================================================

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}
		child, _ := value.(map[string]any)
		return key, child, true
	}
	return "", nil, false
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
