package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/TavernCrawl_Go/internal/action"
	"github.com/osse101/TavernCrawl_Go/internal/catalog"
	"github.com/osse101/TavernCrawl_Go/internal/combat"
	"github.com/osse101/TavernCrawl_Go/internal/config"
	"github.com/osse101/TavernCrawl_Go/internal/event"
	"github.com/osse101/TavernCrawl_Go/internal/eventlog"
	"github.com/osse101/TavernCrawl_Go/internal/game"
	"github.com/osse101/TavernCrawl_Go/internal/logger"
	"github.com/osse101/TavernCrawl_Go/internal/metrics"
	"github.com/osse101/TavernCrawl_Go/internal/prompt"
	"github.com/osse101/TavernCrawl_Go/internal/random"
	"github.com/osse101/TavernCrawl_Go/internal/session"
)

func main() {
	// Defaults until the real config is known
	logger.InitLogger(logger.DefaultConfig())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger.InitLogger(cfg.LoggerConfig())
	for _, w := range cfg.Warnings() {
		logger.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Session failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	logger.Info("Random source ready", "seed", seed)

	loader, err := catalog.NewLoader(cfg.CatalogCacheSize)
	if err != nil {
		return err
	}
	cat, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()
	collector := metrics.NewCollector()
	if err := collector.Register(bus); err != nil {
		return err
	}
	journal := eventlog.NewService(eventlog.NewMemoryRepository(cfg.JournalMaxEntries))
	if err := journal.Subscribe(bus); err != nil {
		return err
	}

	console := prompt.NewConsole(prompt.NewLineInput(os.Stdin), prompt.NewWriterOutput(os.Stdout))
	deps := &session.Deps{
		Settings: session.Settings{
			BaseHealth:    cfg.BaseHealth,
			BaseAttack:    cfg.BaseAttack,
			BaseDefense:   cfg.BaseDefense,
			StartingMoney: cfg.StartingMoney,
		},
		Game: game.New(cat, random.New(seed)),
		Actions: &action.Deps{
			Console:    console,
			Bus:        bus,
			Resolver:   combat.NewResolver(bus, cfg.MaxRounds),
			FleeChance: cfg.FleeChance,
		},
		Registry: action.DefaultRegistry(),
	}

	report, err := session.Run(ctx, deps)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	summary, err := collector.Summary()
	if err != nil {
		return err
	}
	printSummary(console, summary)

	if err := eventlog.NewPruneJob(journal, cfg.JournalMaxEntries).Process(ctx); err != nil {
		return err
	}
	if cfg.JournalPath != "" {
		if err := writeJournal(ctx, journal, cfg.JournalPath); err != nil {
			return err
		}
	}

	logger.Info("Goodbye",
		"session_id", report.SessionID,
		"reason", report.Reason,
		"turns", report.Turns,
		"seed", seed)
	return nil
}

func printSummary(console *prompt.Console, summary map[string]float64) {
	if len(summary) == 0 {
		return
	}
	console.Header("Session Stats")
	for _, key := range metrics.SortedKeys(summary) {
		console.Line("  %-60s %g", key, summary[key])
	}
}

func writeJournal(ctx context.Context, journal eventlog.Service, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create journal file: %w", err)
	}
	if err := saveJournal(ctx, journal, f); err != nil {
		return err
	}
	logger.Info("Journal written", "path", path)
	return nil
}

// saveJournal exports the journal to w and closes it. A close failure is
// reported when the export itself succeeded.
func saveJournal(ctx context.Context, journal eventlog.Service, w io.WriteCloser) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close journal file: %w", cerr)
		}
	}()
	return journal.Export(ctx, w)
}
