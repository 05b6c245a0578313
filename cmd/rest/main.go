package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"brand-dashboard-be/internal/bootstrap"
	"brand-dashboard-be/internal/config"
	"brand-dashboard-be/internal/server"
	"brand-dashboard-be/internal/tracer"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg.Telemetry, cfg.App.Environment)

	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hub, notification consumer and scheduler run until ctx is cancelled.
	if err := container.Start(ctx); err != nil {
		log.Panicf("Unable to start background services: %v", err)
	}

	srv := server.New(cfg, container)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("Server stopped: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	container.Close(shutdownCtx)
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
}
