package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Default(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.Target())
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "sbml", cfg.Output.Format)
	assert.True(t, cfg.Export.Annotations)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "sbmlexport.yaml", `
source:
  kind: loam
  dir: ./fixtures
output:
  format: biopax3
redis:
  addr: localhost:6379
  ttl: 10m
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceLoam, cfg.Source.Kind)
	assert.Equal(t, "./fixtures", cfg.Source.Dir)
	assert.Equal(t, "biopax3", cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Dir, "unset keys keep defaults")
	ttl, err := cfg.Redis.TTLDuration()
	require.NoError(t, err)
	assert.Equal(t, "10m0s", ttl.String())
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "sbmlexport.toml", `
[neo4j]
host = "reactome.local"
port = 7688
database = "graph"

[export]
concurrency = 8
annotations = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt://reactome.local:7688", cfg.Neo4j.Target())
	assert.Equal(t, "graph", cfg.Neo4j.Database)
	assert.Equal(t, 8, cfg.Export.Concurrency)
	assert.False(t, cfg.Export.Annotations)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(write(t, "config.ini", "a=b"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(write(t, "bad.yaml", "source: ["))
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = Load(write(t, "bad.toml", "[neo4j\n"))
	assert.ErrorContains(t, err, "failed to parse TOML")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SBMLEXPORT_NEO4J_URI":      "neo4j://db:7687",
		"SBMLEXPORT_NEO4J_USER":     "reader",
		"SBMLEXPORT_NEO4J_PASSWORD": "secret",
		"SBMLEXPORT_REDIS_ADDR":     "cache:6379",
		"SBMLEXPORT_OUTPUT_DIR":     "/tmp/out",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "neo4j://db:7687", cfg.Neo4j.Target())
	assert.Equal(t, "reader", cfg.Neo4j.User)
	assert.Equal(t, "secret", cfg.Neo4j.Password)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)

	env["SBMLEXPORT_NEO4J_PORT"] = "bolt"
	assert.ErrorContains(t, Default().ApplyEnv(lookup), "NEO4J_PORT")
}

func TestLoadDotEnv(t *testing.T) {
	path := write(t, ".env", "SBMLEXPORT_TEST_DOTENV=loaded\n")
	t.Cleanup(func() { os.Unsetenv("SBMLEXPORT_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("SBMLEXPORT_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")), "missing files are ignored")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown source", func(c *Config) { c.Source.Kind = "sql" }, "unknown source kind"},
		{"loam without dir", func(c *Config) { c.Source.Kind = SourceLoam }, "needs a directory"},
		{"file without path", func(c *Config) { c.Source.Kind = SourceFile }, "needs a bundle path"},
		{"dir and file", func(c *Config) { c.Source.Kind = SourceFile; c.Source.File = "a.yaml"; c.Source.Dir = "d" }, "mutually exclusive"},
		{"neo4j without host", func(c *Config) { c.Neo4j.Host = "" }, "uri or host"},
		{"s3 and stdout", func(c *Config) { c.Output.S3.Bucket = "b"; c.Output.Dir = "-" }, "stdout"},
		{"concurrency", func(c *Config) { c.Export.Concurrency = 0 }, "at least 1"},
		{"ttl", func(c *Config) { c.Redis.TTL = "soon" }, "invalid redis ttl"},
		{"lock without redis", func(c *Config) { c.Redis.Lock = true }, "redis address"},
		{"empty format", func(c *Config) { c.Output.Format = "" }, "format is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Export.Concurrency = 0
	cfg.Output.Format = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
	assert.Contains(t, err.Error(), "format is empty")
}
