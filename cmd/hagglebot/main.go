package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hagglebot/hagglebot/internal/api"
	"github.com/hagglebot/hagglebot/internal/call"
	"github.com/hagglebot/hagglebot/internal/config"
	"github.com/hagglebot/hagglebot/internal/events"
	"github.com/hagglebot/hagglebot/internal/listing"
	"github.com/hagglebot/hagglebot/internal/llm"
	"github.com/hagglebot/hagglebot/internal/store"
	"github.com/hagglebot/hagglebot/internal/store/memory"
	"github.com/hagglebot/hagglebot/internal/store/postgres"
	"github.com/hagglebot/hagglebot/internal/voice"
)

type server interface {
	Start(ctx context.Context, addr string) error
}

var (
	loadConfig = func() (config.Config, error) {
		return config.Load(), nil
	}
	newBroker = events.NewBroker
	newStore  = func(conn string) (store.Store, error) {
		if conn == "" {
			log.Println("POSTGRES_URL not set, using in-memory store")
			return memory.New(), nil
		}
		return postgres.New(conn)
	}
	newAnalyzer = func(cfg config.Config) api.Analyzer {
		fetcher := listing.NewFetcher(cfg.FetchMode, cfg.ChromeBin)
		provider := llm.NewProvider(llm.Config{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			TextModel:   cfg.OpenAITextModel,
			VisionModel: cfg.OpenAIVisionModel,
		})
		return listing.NewAnalyzer(fetcher, provider, cfg.MarketplaceDomain, cfg.ListingCharBudget)
	}
	newCallController = func(cfg config.Config, st store.Store, broker *events.Broker) api.CallService {
		dispatcher := voice.NewClient(voice.Config{
			APIKey:        cfg.VapiAPIKey,
			BaseURL:       cfg.VapiBaseURL,
			PhoneNumberID: cfg.VapiPhoneNumberID,
			Model:         cfg.VapiModel,
			VoiceProvider: cfg.VapiVoiceProvider,
			VoiceID:       cfg.VapiVoiceID,
		})
		return call.NewController(dispatcher, st, broker)
	}
	newServer = func(st store.Store, analyzer api.Analyzer, calls api.CallService, broker *events.Broker, cfg config.Config) server {
		return api.NewServer(st, analyzer, calls, broker, cfg)
	}
	notifyContext = signal.NotifyContext
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	broker := newBroker()
	st, err := newStore(cfg.PostgresURL)
	if err != nil {
		return err
	}

	analyzer := newAnalyzer(cfg)
	calls := newCallController(cfg, st, broker)

	srv := newServer(st, analyzer, calls, broker, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Hagglebot listening on %s", addr)
	if err := srv.Start(ctx, addr); err != nil {
		return err
	}

	return nil
}
