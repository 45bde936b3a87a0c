package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/rl1809/partstore/internal/adapter/handler"
	"github.com/rl1809/partstore/internal/adapter/handler/pb"
	"github.com/rl1809/partstore/internal/adapter/storage"
	"github.com/rl1809/partstore/internal/config"
	"github.com/rl1809/partstore/internal/core/service"
	"github.com/rl1809/partstore/internal/port"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP (and optional gRPC) server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, lis)
}

// serve runs until ctx is cancelled or a listener fails. The HTTP listener
// accepts traffic straight away; API calls answer 503 until the store is up.
func serve(ctx context.Context, cfg *config.Config, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	partService := service.NewPartService(service.WithStrictNotFound(cfg.StrictNotFound))

	var connectWg sync.WaitGroup
	connectWg.Add(1)
	go func() {
		defer connectWg.Done()
		connectStore(ctx, cfg, partService)
	}()

	errCh := make(chan error, 2)

	// Initialize gRPC server
	var grpcServer *grpc.Server
	if cfg.GRPCAddr != "" {
		grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			cancel()
			connectWg.Wait()
			partService.Close()
			lis.Close()
			return err
		}

		grpcServer = grpc.NewServer()
		pb.RegisterPartServiceServer(grpcServer, handler.NewGRPCHandler(partService))

		go func() {
			log.Printf("gRPC server listening on %s", grpcLis.Addr())
			if err := grpcServer.Serve(grpcLis); err != nil {
				errCh <- err
			}
		}()
	}

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(partService)
	httpServer := &http.Server{
		Handler: handler.NewRouter(httpHandler, cfg.PublicDir),
	}

	go func() {
		log.Printf("HTTP server listening on %s", lis.Addr())
		if err := httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		log.Printf("server error: %v", serveErr)
	}

	log.Println("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")

	if grpcServer != nil {
		grpcServer.GracefulStop()
		log.Println("gRPC server stopped")
	}

	connectWg.Wait()
	if err := partService.Close(); err != nil {
		log.Printf("store close error: %v", err)
	}
	log.Println("connections closed")

	return serveErr
}

// connectStore opens the store once. Failure is logged and the service stays
// not ready; there is no retry.
func connectStore(ctx context.Context, cfg *config.Config, partService *service.PartService) {
	repo, err := openStore(ctx, cfg)
	if err != nil {
		log.Printf("store connection error: %v", err)
		return
	}

	if ctx.Err() != nil {
		repo.Close()
		return
	}

	partService.Attach(repo)
	log.Println("connected to store")
}

func openStore(ctx context.Context, cfg *config.Config) (port.PartRepository, error) {
	repo, err := storage.Open(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, err
	}

	if m, ok := repo.(storage.Migrator); ok && cfg.AutoMigrate {
		if err := m.Migrate(ctx); err != nil {
			repo.Close()
			return nil, err
		}
	}

	return repo, nil
}
