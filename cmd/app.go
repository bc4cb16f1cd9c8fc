package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"lifesaver/internal/components"
	"lifesaver/internal/config"
)

func Run() error {
	bootLogger := components.SetupLogger("local")

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(appCtx)
	if err != nil {
		bootLogger.Error("load config failed", "err", err)
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY is empty")
	}

	logger := components.SetupLogger(cfg.Env)

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()
	go func() {
		defer wg.Done()
		comps.RunWorkers(ctx)
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}
