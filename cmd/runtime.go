package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zpam/year-classifier/pkg/config"
	"github.com/zpam/year-classifier/pkg/learning"
	"github.com/zpam/year-classifier/pkg/logging"
	"github.com/zpam/year-classifier/pkg/profiler"
)

// runtime bundles what every command needs: configuration, logger and the
// learning options derived from them
type runtime struct {
	cfg    *config.Config
	logger *logrus.Logger

	closers []io.Closer
}

// newRuntime loads the configuration, applies the global flag overrides and
// sets up logging
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(rootConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if rootLogLevel != "" {
		cfg.Logging.Level = rootLogLevel
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		closers: []io.Closer{closer},
	}, nil
}

// options converts the configuration into learning options.
// A Redis client is opened when the redis counter is selected.
func (rt *runtime) options(ctx context.Context, prof *profiler.Profiler) ([]learning.Option, error) {
	lc := rt.cfg.Learning

	opts := []learning.Option{
		learning.WithLogger(rt.logger),
		learning.WithLabels(lc.Labels...),
		learning.WithExtensions(rt.cfg.Corpus.Extensions...),
		learning.WithWorkers(lc.Workers),
		learning.RequireVocabulary(lc.RequireVocabulary),
	}
	if prof != nil {
		opts = append(opts, learning.WithProfiler(prof))
	}

	if lc.Counter == "redis" {
		ttl, err := lc.Redis.ParseTTL()
		if err != nil {
			return nil, err
		}
		redisConfig := &learning.RedisConfig{
			RedisURL:    lc.Redis.RedisURL,
			KeyPrefix:   lc.Redis.KeyPrefix,
			DatabaseNum: lc.Redis.DatabaseNum,
			BatchSize:   lc.Redis.BatchSize,
			TTL:         ttl,
		}

		client, err := learning.NewRedisClient(ctx, redisConfig)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, client)
		opts = append(opts, learning.WithCounter(learning.RedisCounterFactory(client, redisConfig)))
	}

	return opts, nil
}

// trainingInputs resolves the training directory and cutoff, preferring flags
// the user set over the configuration
func (rt *runtime) trainingInputs(cmd *cobra.Command, dir string, cutoff int) (string, int) {
	if dir == "" {
		dir = rt.cfg.Corpus.TrainDir
	}
	if !cmd.Flags().Changed("cutoff") {
		cutoff = rt.cfg.Learning.Cutoff
	}
	return dir, cutoff
}

// train fits a model on dir
func (rt *runtime) train(ctx context.Context, dir string, cutoff int, prof *profiler.Profiler) (*learning.Model, error) {
	opts, err := rt.options(ctx, prof)
	if err != nil {
		return nil, err
	}

	return learning.Train(ctx, dir, cutoff, opts...)
}

func (rt *runtime) Close() error {
	var first error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
