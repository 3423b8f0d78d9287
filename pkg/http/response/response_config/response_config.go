package response_config

import (
	"github.com/Motmedel/http_response_go/pkg/http/renderer"
	"github.com/Motmedel/http_response_go/pkg/http/renderer/json_renderer"
	"github.com/Motmedel/http_response_go/pkg/http/response/compressor/compressor_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/encoder/encoder_config"
)

type Config struct {
	Renderer          renderer.Renderer
	EncoderOptions    []encoder_config.Option
	CompressorOptions []compressor_config.Option
	// CompressionFallback makes Compress keep the uncompressed body when compression fails instead of returning
	// the failure.
	CompressionFallback bool
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{Renderer: json_renderer.New()}
	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithEncoderOptions(options ...encoder_config.Option) Option {
	return func(config *Config) {
		config.EncoderOptions = append(config.EncoderOptions, options...)
	}
}

func WithCompressorOptions(options ...compressor_config.Option) Option {
	return func(config *Config) {
		config.CompressorOptions = append(config.CompressorOptions, options...)
	}
}

func WithHideProductHeader(hide bool) Option {
	return WithEncoderOptions(encoder_config.WithHideProductHeader(hide))
}

func WithCompressionChunkSize(chunkSize int) Option {
	return WithCompressorOptions(compressor_config.WithChunkSize(chunkSize))
}

func WithCompressionFallback(fallback bool) Option {
	return func(config *Config) {
		config.CompressionFallback = fallback
	}
}

func WithRenderer(renderer renderer.Renderer) Option {
	return func(config *Config) {
		config.Renderer = renderer
	}
}
