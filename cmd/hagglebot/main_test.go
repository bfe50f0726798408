package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/hagglebot/hagglebot/internal/api"
	"github.com/hagglebot/hagglebot/internal/config"
	"github.com/hagglebot/hagglebot/internal/events"
	"github.com/hagglebot/hagglebot/internal/store"
	"github.com/hagglebot/hagglebot/internal/store/memory"
)

type stubServer struct {
	err error
}

func (s stubServer) Start(ctx context.Context, addr string) error {
	return s.err
}

func captureDeps() func() {
	origLoadConfig := loadConfig
	origNewBroker := newBroker
	origNewStore := newStore
	origNewAnalyzer := newAnalyzer
	origNewCallController := newCallController
	origNewServer := newServer
	origNotifyContext := notifyContext

	return func() {
		loadConfig = origLoadConfig
		newBroker = origNewBroker
		newStore = origNewStore
		newAnalyzer = origNewAnalyzer
		newCallController = origNewCallController
		newServer = origNewServer
		notifyContext = origNotifyContext
	}
}

func TestRunSuccess(t *testing.T) {
	restore := captureDeps()
	t.Cleanup(restore)

	loadConfig = func() (config.Config, error) {
		return config.Config{Port: "0"}, nil
	}
	usedMemory := false
	newStore = func(conn string) (store.Store, error) {
		if conn == "" {
			usedMemory = true
		}
		return memory.New(), nil
	}
	newServer = func(_ store.Store, _ api.Analyzer, _ api.CallService, _ *events.Broker, _ config.Config) server {
		return stubServer{}
	}
	notifyContext = func(ctx context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(ctx)
	}

	if err := run(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !usedMemory {
		t.Fatal("expected in-memory store when POSTGRES_URL is empty")
	}
}

func TestRunConfigLoadFailure(t *testing.T) {
	restore := captureDeps()
	t.Cleanup(restore)

	loadConfig = func() (config.Config, error) {
		return config.Config{}, errors.New("config load failed")
	}

	if err := run(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRunStoreInitFailure(t *testing.T) {
	restore := captureDeps()
	t.Cleanup(restore)

	loadConfig = func() (config.Config, error) {
		return config.Config{PostgresURL: "postgres://example"}, nil
	}
	newStore = func(_ string) (store.Store, error) {
		return nil, errors.New("store init failed")
	}
	notifyContext = func(ctx context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(ctx)
	}

	if err := run(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRunServerStartFailure(t *testing.T) {
	restore := captureDeps()
	t.Cleanup(restore)

	loadConfig = func() (config.Config, error) {
		return config.Config{Port: "0"}, nil
	}
	newStore = func(_ string) (store.Store, error) {
		return memory.New(), nil
	}
	newServer = func(_ store.Store, _ api.Analyzer, _ api.CallService, _ *events.Broker, _ config.Config) server {
		return stubServer{err: errors.New("listen failed")}
	}
	notifyContext = func(ctx context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(ctx)
	}

	if err := run(); err == nil {
		t.Fatal("expected error, got nil")
	}
}
