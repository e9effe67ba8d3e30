package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/sbmlexport"
	"github.com/aretw0/sbmlexport/internal/config"
	"github.com/aretw0/sbmlexport/internal/logging"
	"github.com/aretw0/sbmlexport/pkg/adapters/file"
	loamAdapter "github.com/aretw0/sbmlexport/pkg/adapters/loam"
	neo4jAdapter "github.com/aretw0/sbmlexport/pkg/adapters/neo4j"
	redisAdapter "github.com/aretw0/sbmlexport/pkg/adapters/redis"
	s3Adapter "github.com/aretw0/sbmlexport/pkg/adapters/s3"
	"github.com/aretw0/sbmlexport/pkg/observability"
	"github.com/aretw0/sbmlexport/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// StdoutDir is the output directory that sends models to standard output.
const StdoutDir = "-"

// Overrides are command line settings. Zero values leave the loaded
// configuration untouched.
type Overrides struct {
	Dir      string
	File     string
	Host     string
	Port     int
	User     string
	Password string
	OutDir   string
	Format   string

	LogLevel  string
	LogFormat string
}

// Apply writes the non-zero overrides into cfg. A fixture directory or a
// bundle file switches the source kind; a host replaces any configured uri.
func (o Overrides) Apply(cfg *config.Config) {
	switch {
	case o.Dir != "":
		cfg.Source = config.SourceConfig{Kind: config.SourceLoam, Dir: o.Dir}
	case o.File != "":
		cfg.Source = config.SourceConfig{Kind: config.SourceFile, File: o.File}
	}
	if o.Host != "" {
		cfg.Neo4j.Host = o.Host
		cfg.Neo4j.URI = ""
	}
	if o.Port != 0 {
		cfg.Neo4j.Port = o.Port
	}
	if o.User != "" {
		cfg.Neo4j.User = o.User
	}
	if o.Password != "" {
		cfg.Neo4j.Password = o.Password
	}
	if o.OutDir != "" {
		cfg.Output.Dir = o.OutDir
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
}

// LoadConfig resolves settings from, lowest first: defaults, the file at
// path, .env, SBMLEXPORT_* variables and o.
func LoadConfig(path string, o Overrides, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	o.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the application logger from cfg.Log.
func NewLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewFormat(cfg.Log.Format, level)
}

// closer releases a resource opened by the factory.
type closer func(context.Context) error

// Resources holds what the factory opened, so callers can release it.
type Resources struct {
	closers []closer
}

func (r *Resources) add(c closer) {
	r.closers = append(r.closers, c)
}

// Close releases every resource, last opened first.
func (r *Resources) Close(ctx context.Context) error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

// NewSource opens the graph source cfg.Source names.
func NewSource(ctx context.Context, cfg *config.Config, logger *slog.Logger, res *Resources) (ports.GraphSource, string, error) {
	switch cfg.Source.Kind {
	case config.SourceLoam:
		src, err := loamAdapter.Open(cfg.Source.Dir, loamAdapter.WithLogger(logger))
		if err != nil {
			return nil, "", fmt.Errorf("failed to open fixture directory: %w", err)
		}
		return src, cfg.Source.Dir, nil
	case config.SourceFile:
		src, err := file.Open(cfg.Source.File)
		if err != nil {
			return nil, "", err
		}
		return src, cfg.Source.File, nil
	case config.SourceNeo4j:
		target := cfg.Neo4j.Target()
		driver, err := neo4jAdapter.Connect(ctx, target, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
		if err != nil {
			return nil, "", err
		}
		src := neo4jAdapter.New(driver, neo4jAdapter.WithLogger(logger))
		res.add(src.Close)
		return src, "", nil
	default:
		return nil, "", fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}

// NewSink chooses where exported files go: standard output for "-", the
// S3 bucket when one is configured, the output directory otherwise.
func NewSink(ctx context.Context, cfg *config.Config) (ports.OutputSink, error) {
	if cfg.Output.Dir == StdoutDir {
		return file.NewWriterSink(os.Stdout), nil
	}
	if s3 := cfg.Output.S3; s3.Bucket != "" {
		return s3Adapter.New(ctx, s3Adapter.Params{
			Bucket:    s3.Bucket,
			Prefix:    s3.Prefix,
			Endpoint:  s3.Endpoint,
			Region:    s3.Region,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
		})
	}
	return file.NewSink(cfg.Output.Dir), nil
}

// NewExporter wires an Exporter from cfg. reg, when set, receives the
// export metrics. The returned Resources must be closed by the caller.
func NewExporter(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*sbmlexport.Exporter, *Resources, error) {
	res := &Resources{}
	fail := func(err error) (*sbmlexport.Exporter, *Resources, error) {
		_ = res.Close(context.WithoutCancel(ctx))
		return nil, nil, err
	}

	src, name, err := NewSource(ctx, cfg, logger, res)
	if err != nil {
		return fail(err)
	}
	sink, err := NewSink(ctx, cfg)
	if err != nil {
		return fail(err)
	}

	opts := []sbmlexport.Option{
		sbmlexport.WithSource(src),
		sbmlexport.WithSink(sink),
		sbmlexport.WithLogger(logger),
		sbmlexport.WithAnnotations(cfg.Export.Annotations),
		sbmlexport.WithConcurrency(cfg.Export.Concurrency),
	}
	if reg != nil {
		opts = append(opts, sbmlexport.WithMetrics(observability.NewMetrics(reg)))
	}

	if cfg.Redis.Addr != "" {
		ttl, err := cfg.Redis.TTLDuration()
		if err != nil {
			return fail(err)
		}
		cache := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redisAdapter.WithTTL(ttl))
		res.add(func(context.Context) error { return cache.Close() })
		opts = append(opts, sbmlexport.WithCache(cache))
		if cfg.Redis.Lock {
			locker := redisAdapter.NewLocker(cache.Client(), redisAdapter.DefaultPrefix)
			opts = append(opts, sbmlexport.WithLocker(locker, sbmlexport.DefaultLockTTL))
		}
	}

	exp, err := sbmlexport.New(name, opts...)
	if err != nil {
		return fail(err)
	}
	return exp, res, nil
}
