package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	fakeskema "github.com/reoring/fakeskema"
	"github.com/reoring/fakeskema/schemaio"
	"github.com/reoring/fakeskema/sink"
)

type generateOptions struct {
	schemaPath string
	refsPath   string
	count      int
	nullable   float64
	seed       int64
	format     string
	out        string
	redisKey   string
	redisAddr  string
	watch      bool
}

func generateCmd(ctx context.Context, env envConfig, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var o generateOptions
	var verbose bool
	fs.StringVar(&o.schemaPath, "schema", env.Schema, "schema file (.json, .yaml)")
	fs.StringVar(&o.refsPath, "refs", env.References, "reference table file")
	fs.IntVar(&o.count, "n", env.Count, "number of documents")
	fs.Float64Var(&o.nullable, "nullable", env.Nullable, "default nullable percentage in [0,1]")
	fs.Int64Var(&o.seed, "seed", 0, "random seed; 0 seeds from the clock")
	fs.StringVar(&o.format, "format", env.Format, "output format: json or yaml")
	fs.StringVar(&o.out, "o", "", "output filename (default stdout)")
	fs.StringVar(&o.redisKey, "redis-key", env.RedisKey, "push documents onto this Redis list instead of writing them")
	fs.BoolVar(&o.watch, "watch", false, "regenerate when the schema or reference file changes")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	o.redisAddr = env.RedisAddr
	if o.schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(verbose)

	if err := generateOnce(ctx, o, os.Stdout, logger); err != nil {
		fatalf("generate: %v", err)
	}
	if !o.watch {
		return
	}
	if err := watch(ctx, []string{o.schemaPath, o.refsPath}, logger, func() error {
		return generateOnce(ctx, o, os.Stdout, logger)
	}); err != nil && !errors.Is(err, context.Canceled) {
		fatalf("watch: %v", err)
	}
}

// generateOnce loads the inputs and writes o.count documents. Output files are
// truncated on every call and removed again when generation fails.
func generateOnce(ctx context.Context, o generateOptions, stdout io.Writer, logger *slog.Logger) (err error) {
	if o.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", o.count)
	}
	schema, err := schemaio.LoadSchema(o.schemaPath)
	if err != nil {
		return err
	}
	refs, err := schemaio.LoadReferences(o.refsPath)
	if err != nil {
		return err
	}

	w, closeOut, err := openSink(ctx, o, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = w.Close()
		}
		closeOut()
		if err != nil && o.out != "" && o.redisKey == "" {
			_ = os.Remove(o.out)
		}
	}()

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < o.count; i++ {
		doc, err := fakeskema.Generate(schema, o.nullable, refs, fakeskema.WithRand(r), fakeskema.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if err := w.Write(ctx, doc); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("generated documents", slog.Int("count", o.count), slog.Int64("seed", seed), slog.String("schema", o.schemaPath))
	return nil
}

func openSink(ctx context.Context, o generateOptions, stdout io.Writer) (sink.Writer, func(), error) {
	if o.redisKey != "" {
		cl, err := sink.DialRedis(ctx, o.redisAddr)
		if err != nil {
			return nil, nil, err
		}
		w, err := sink.NewRedisList(sink.RedisConfig{Client: cl, Key: o.redisKey})
		if err != nil {
			_ = cl.Close()
			return nil, nil, err
		}
		return w, func() { _ = cl.Close() }, nil
	}

	out := stdout
	closeOut := func() {}
	if o.out != "" {
		if err := os.MkdirAll(filepath.Dir(o.out), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating output dir: %w", err)
		}
		f, err := os.Create(o.out)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output: %w", err)
		}
		out = f
		closeOut = func() { _ = f.Close() }
	}
	switch o.format {
	case "", "json":
		return sink.NewJSONLines(out), closeOut, nil
	case "yaml":
		return sink.NewYAMLStream(out), closeOut, nil
	}
	closeOut()
	return nil, nil, fmt.Errorf("unknown format %q (want json or yaml)", o.format)
}

// watch calls fn whenever one of files changes, until ctx is done. Parent
// directories are watched so editors that replace files are seen.
func watch(ctx context.Context, files []string, logger *slog.Logger, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	targets := map[string]struct{}{}
	dirs := map[string]struct{}{}
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}
	logger.Info("watching for changes", slog.Int("files", len(targets)))

	const debounce = 100 * time.Millisecond
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", slog.String("err", err.Error()))
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, hit := targets[name]; !hit {
				continue
			}
			logger.Debug("input changed", slog.String("file", name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := fn(); err != nil {
				logger.Error("regenerate failed", slog.String("err", err.Error()))
			}
		}
	}
}
