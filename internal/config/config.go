// Package config loads exporter settings from a YAML or TOML file, a .env
// file and SBMLEXPORT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	SourceNeo4j = "neo4j"
	SourceLoam  = "loam"
	SourceFile  = "file"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SBMLEXPORT_"

type SourceConfig struct {
	Kind string `yaml:"kind" toml:"kind"`
	Dir  string `yaml:"dir" toml:"dir"`
	File string `yaml:"file" toml:"file"`
}

type Neo4jConfig struct {
	// URI wins over Host and Port when set.
	URI      string `yaml:"uri" toml:"uri"`
	Host     string `yaml:"host" toml:"host"`
	Port     int    `yaml:"port" toml:"port"`
	User     string `yaml:"user" toml:"user"`
	Password string `yaml:"password" toml:"password"`
	Database string `yaml:"database" toml:"database"`
}

// Target returns the bolt URI to dial.
func (n Neo4jConfig) Target() string {
	if n.URI != "" {
		return n.URI
	}
	return fmt.Sprintf("bolt://%s:%d", n.Host, n.Port)
}

type S3Config struct {
	Bucket    string `yaml:"bucket" toml:"bucket"`
	Prefix    string `yaml:"prefix" toml:"prefix"`
	Endpoint  string `yaml:"endpoint" toml:"endpoint"`
	Region    string `yaml:"region" toml:"region"`
	AccessKey string `yaml:"access_key" toml:"access_key"`
	SecretKey string `yaml:"secret_key" toml:"secret_key"`
}

type OutputConfig struct {
	// Dir is a directory, or "-" for stdout.
	Dir    string   `yaml:"dir" toml:"dir"`
	Format string   `yaml:"format" toml:"format"`
	S3     S3Config `yaml:"s3" toml:"s3"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" toml:"addr"`
	Password string `yaml:"password" toml:"password"`
	DB       int    `yaml:"db" toml:"db"`
	TTL      string `yaml:"ttl" toml:"ttl"`
	Lock     bool   `yaml:"lock" toml:"lock"`
}

// TTLDuration parses TTL; empty means no expiry.
func (r RedisConfig) TTLDuration() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(r.TTL)
}

type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

type ExportConfig struct {
	Annotations bool `yaml:"annotations" toml:"annotations"`
	Concurrency int  `yaml:"concurrency" toml:"concurrency"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Config is the full exporter configuration.
type Config struct {
	Source SourceConfig `yaml:"source" toml:"source"`
	Neo4j  Neo4jConfig  `yaml:"neo4j" toml:"neo4j"`
	Output OutputConfig `yaml:"output" toml:"output"`
	Redis  RedisConfig  `yaml:"redis" toml:"redis"`
	Server ServerConfig `yaml:"server" toml:"server"`
	Export ExportConfig `yaml:"export" toml:"export"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Source: SourceConfig{Kind: SourceNeo4j},
		Neo4j: Neo4jConfig{
			Host:     "localhost",
			Port:     7687,
			User:     "neo4j",
			Password: "neo4j",
		},
		Output: OutputConfig{Dir: ".", Format: "sbml"},
		Server: ServerConfig{Addr: ":8080"},
		Export: ExportConfig{Annotations: true, Concurrency: 4},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .yaml, .yml or .toml. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment. Missing
// files are not an error; variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from SBMLEXPORT_* variables. lookup is
// os.LookupEnv when nil.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("NEO4J_URI", &c.Neo4j.URI)
	str("NEO4J_USER", &c.Neo4j.User)
	str("NEO4J_PASSWORD", &c.Neo4j.Password)
	str("NEO4J_DATABASE", &c.Neo4j.Database)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("OUTPUT_DIR", &c.Output.Dir)
	str("S3_BUCKET", &c.Output.S3.Bucket)
	str("LOG_LEVEL", &c.Log.Level)

	if v, ok := lookup(EnvPrefix + "NEO4J_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sNEO4J_PORT %q: %w", EnvPrefix, v, err)
		}
		c.Neo4j.Port = port
	}
	return nil
}

// Validate reports every invalid or conflicting setting.
func (c *Config) Validate() error {
	var errs []error

	switch c.Source.Kind {
	case SourceNeo4j:
		if c.Neo4j.URI == "" && (c.Neo4j.Host == "" || c.Neo4j.Port <= 0) {
			errs = append(errs, errors.New("neo4j source needs a uri or host and port"))
		}
	case SourceLoam:
		if c.Source.Dir == "" {
			errs = append(errs, errors.New("loam source needs a directory"))
		}
	case SourceFile:
		if c.Source.File == "" {
			errs = append(errs, errors.New("file source needs a bundle path"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source kind %q", c.Source.Kind))
	}
	if c.Source.Dir != "" && c.Source.File != "" {
		errs = append(errs, errors.New("source dir and file are mutually exclusive"))
	}

	if c.Output.Format == "" {
		errs = append(errs, errors.New("output format is empty"))
	}
	if c.Output.S3.Bucket != "" && c.Output.Dir == "-" {
		errs = append(errs, errors.New("s3 bucket and stdout output are mutually exclusive"))
	}
	if c.Export.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("export concurrency must be at least 1, got %d", c.Export.Concurrency))
	}
	if _, err := c.Redis.TTLDuration(); err != nil {
		errs = append(errs, fmt.Errorf("invalid redis ttl: %w", err))
	}
	if c.Redis.Lock && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis lock needs a redis address"))
	}
	return errors.Join(errs...)
}
