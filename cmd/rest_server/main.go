package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	motmedelContext "github.com/Motmedel/http_response_go/pkg/context"
	motmedelEnv "github.com/Motmedel/http_response_go/pkg/env"
	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/compressor/compressor_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/response_config"
	motmedelLog "github.com/Motmedel/http_response_go/pkg/log"
)

const (
	defaultListenAddress = "127.0.0.1:8529"

	listenAddressEnvName        = "LISTEN_ADDRESS"
	hideProductHeaderEnvName    = "HIDE_PRODUCT_HEADER"
	compressionChunkSizeEnvName = "COMPRESSION_CHUNK_SIZE"
	compressionFallbackEnvName  = "COMPRESSION_FALLBACK"
)

func responseOptionsFromEnv() ([]response_config.Option, error) {
	hideProductHeader, err := motmedelEnv.GetEnvBoolWithDefault(hideProductHeaderEnvName, false)
	if err != nil {
		return nil, fmt.Errorf("get env bool with default (hide product header): %w", err)
	}

	chunkSize, err := motmedelEnv.GetEnvIntWithDefault(compressionChunkSizeEnvName, compressor_config.DefaultChunkSize)
	if err != nil {
		return nil, fmt.Errorf("get env int with default (compression chunk size): %w", err)
	}

	fallback, err := motmedelEnv.GetEnvBoolWithDefault(compressionFallbackEnvName, true)
	if err != nil {
		return nil, fmt.Errorf("get env bool with default (compression fallback): %w", err)
	}

	return []response_config.Option{
		response_config.WithHideProductHeader(hideProductHeader),
		response_config.WithCompressionChunkSize(chunkSize),
		response_config.WithCompressionFallback(fallback),
	}, nil
}

func serve(ctx context.Context, listener net.Listener, handler *Handler) error {
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return motmedelErrors.NewWithTrace(fmt.Errorf("listener accept: %w", err))
		}

		go func() {
			if err := handler.ServeConn(ctx, conn); err != nil {
				slog.WarnContext(
					motmedelContext.WithErrorContextValue(ctx, err),
					"A connection could not be served.",
					slog.String("remote_address", conn.RemoteAddr().String()),
				)
			}
		}()
	}
}

func main() {
	logger := motmedelLog.NewContextLogger(
		slog.NewJSONHandler(os.Stdout, nil),
		&motmedelLog.ErrorContextExtractor{},
		&motmedelLog.RequestIdContextExtractor{},
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	responseOptions, err := responseOptionsFromEnv()
	if err != nil {
		slog.ErrorContext(
			motmedelContext.WithErrorContextValue(ctx, err),
			"The response configuration could not be read.",
		)
		os.Exit(1)
	}

	listenAddress := motmedelEnv.GetEnvWithDefault(listenAddressEnvName, defaultListenAddress)

	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		slog.ErrorContext(
			motmedelContext.WithErrorContextValue(
				ctx,
				motmedelErrors.NewWithTrace(fmt.Errorf("net listen: %w", err), listenAddress),
			),
			"The listener could not be created.",
		)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "Listening for requests.", slog.String("address", listener.Addr().String()))

	if err := serve(ctx, listener, &Handler{ResponseOptions: responseOptions}); err != nil {
		slog.ErrorContext(motmedelContext.WithErrorContextValue(ctx, err), "The server stopped unexpectedly.")
		os.Exit(1)
	}
}
