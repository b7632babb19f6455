package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jwebster45206/doom-launchers/internal/config"
	"github.com/jwebster45206/doom-launchers/internal/logger"
	"github.com/jwebster45206/doom-launchers/internal/menu"
	"github.com/jwebster45206/doom-launchers/pkg/engine"
	"github.com/jwebster45206/doom-launchers/pkg/launcher"
	"github.com/jwebster45206/doom-launchers/pkg/storage"
)

const bannerWidth = 80

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.WithRunID(logger.Setup(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogue := storage.NewFileStorage(cfg.GameDataDir, log)
	selector := menu.NewSelector(cfg.UI, os.Stdin, os.Stdout)
	if err := run(ctx, cfg, log, catalogue, selector, os.Stdout); err != nil {
		if errors.Is(err, menu.ErrNoSelection) || errors.Is(err, context.Canceled) {
			log.Info("No campaign selected, exiting")
			os.Exit(1)
		}
		logger.WithError(log, err).Error("Launcher generation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, catalogue storage.Storage, selector menu.Selector, out io.Writer) error {
	log.Debug("Starting launcher generation",
		"windows_home", cfg.Home.Windows,
		"unix_home", cfg.Home.Unix,
		"game_data_dir", cfg.GameDataDir)

	profiles, err := engine.Discover(cfg.Home.UnixSourcePortsDir(), cfg.Home)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, menu.Banner(bannerWidth))
	fmt.Fprintln(out, menu.EngineList(profiles))

	campaigns, err := catalogue.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	if len(campaigns) == 0 {
		return fmt.Errorf("no campaign files found in %s", cfg.GameDataDir)
	}

	chosen, err := selector.Select(ctx, campaigns)
	if err != nil {
		return err
	}

	gen := launcher.NewGenerator(cfg.Home, profiles, launcher.NewWriter(out, log), log)
	for _, c := range chosen {
		if err := gen.Generate(ctx, c); err != nil {
			return fmt.Errorf("failed to generate %s: %w", c.Name, err)
		}
	}
	log.Info("Launcher generation complete", "campaigns", len(chosen), "engines", len(profiles))
	return nil
}
