// Package app provides the application container wrapping all
// dependencies and services.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/notin-app/notin-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig application configuration.
type AppConfig struct {
	// File is the config file path, not serialized.
	File     string         `yaml:"-"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	User     UserConfig     `yaml:"user"`
	Security SecurityConfig `yaml:"security"`
	AI       AIConfig       `yaml:"ai"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// LogConfig log configuration.
type LogConfig struct {
	// Level see zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
	// File log file path, empty for stderr only
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production enables JSON output
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig server configuration.
type ServerConfig struct {
	RunMode      string `yaml:"run-mode" default:"release"`
	HttpPort     string `yaml:"http-port" default:":9000"`
	ReadTimeout  int    `yaml:"read-timeout" default:"60"`
	WriteTimeout int    `yaml:"write-timeout" default:"60"`
}

// SecurityConfig security configuration.
type SecurityConfig struct {
	AuthTokenKey string `yaml:"auth-token-key" default:"notin-service-Auth-Token"`
	// TokenExpiry supports formats like 7d, 24h, 30m
	TokenExpiry string `yaml:"token-expiry" default:"365d"`
}

// DatabaseConfig database configuration.
type DatabaseConfig struct {
	Type        string `yaml:"type" default:"sqlite"`
	Path        string `yaml:"path" default:"storage/database/db.sqlite3"`
	UserName    string `yaml:"username"`
	Password    string `yaml:"password"`
	Host        string `yaml:"host"`
	Name        string `yaml:"name"`
	TablePrefix string `yaml:"table-prefix"`
	AutoMigrate bool   `yaml:"auto-migrate" default:"true"`
	Charset     string `yaml:"charset" default:"utf8mb4"`
	ParseTime   bool   `yaml:"parse-time" default:"true"`
	// MaxIdleConns max idle connections in the pool
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns max open connections
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime supports formats like 30m, 1h
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
	// ConnMaxIdleTime supports formats like 10m, 1h
	ConnMaxIdleTime string `yaml:"conn-max-idle-time" default:"10m"`
}

// UserConfig user configuration.
type UserConfig struct {
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

// AppSettings application settings.
type AppSettings struct {
	// DefaultContextTimeout request timeout in seconds
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"120"`
	// UploadMaxSize maximum upload size in megabytes
	UploadMaxSize int `yaml:"upload-max-size" default:"32"`
	// TempPath upload temp path
	TempPath string `yaml:"temp-path" default:"storage/temp"`
}

// AIConfig generative AI configuration.
type AIConfig struct {
	// Provider only gemini is supported
	Provider string `yaml:"provider" default:"gemini"`
	// APIKey Gemini API key, falls back to GOOGLE_API_KEY
	APIKey string `yaml:"api-key"`
	Model  string `yaml:"model" default:"gemini-2.5-flash"`
	// APIVersion Gemini API version
	APIVersion string `yaml:"api-version" default:"v1alpha"`
	// TranscriptLanguages preferred caption languages, most preferred first
	TranscriptLanguages []string `yaml:"transcript-languages" default:"[\"en\"]"`
}

// TracerConfig request tracing configuration.
type TracerConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
	// Header trace id header name
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig loads the configuration from a file and returns the
// config with its absolute path.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// Fill fields the YAML left at their zero value.
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv("GOOGLE_API_KEY")
	}

	return c, realpath, nil
}

// Save writes the configuration back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	if err := os.WriteFile(c.File, data, 0644); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

// GetTokenExpiry returns the parsed token lifetime.
func (c *AppConfig) GetTokenExpiry() time.Duration {
	if expiry, err := util.ParseDuration(c.Security.TokenExpiry); err == nil {
		return expiry
	}
	return 365 * 24 * time.Hour
}

// GetContextTimeout returns the per-request deadline.
func (c *AppConfig) GetContextTimeout() time.Duration {
	return time.Duration(c.App.DefaultContextTimeout) * time.Second
}
