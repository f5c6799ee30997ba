package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeshaw/envdecode"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := loadEnv()
	if err != nil {
		fatalf("environment: %v", err)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(ctx, env, os.Args[2:])
	case "jsonschema":
		jsonSchemaCmd(env, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fakeskema CLI\n\nUsage:\n  fakeskema generate -schema schema.yaml [-refs refs.yaml] [-n 10] [-nullable 0.1] [-seed 42] [-format json|yaml] [-o out] [-redis-key key] [-watch] [-v]\n  fakeskema jsonschema -schema schema.yaml [-refs refs.yaml] [-nullable 0.1] [-o out]\n\nEnvironment:\n  FAKESKEMA_SCHEMA, FAKESKEMA_REFS, FAKESKEMA_COUNT, FAKESKEMA_NULLABLE,\n  FAKESKEMA_FORMAT, FAKESKEMA_REDIS_KEY, REDIS_ADDR")
}

// envConfig holds flag defaults taken from the environment.
type envConfig struct {
	Schema     string  `env:"FAKESKEMA_SCHEMA"`
	References string  `env:"FAKESKEMA_REFS"`
	Count      int     `env:"FAKESKEMA_COUNT,default=1"`
	Nullable   float64 `env:"FAKESKEMA_NULLABLE,default=0"`
	Format     string  `env:"FAKESKEMA_FORMAT,default=json"`
	RedisKey   string  `env:"FAKESKEMA_REDIS_KEY"`
	RedisAddr  string  `env:"REDIS_ADDR,default=localhost:6379"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
