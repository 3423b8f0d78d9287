package compressor_config

import "compress/flate"

const (
	DeflateEncoding = "deflate"
	GzipEncoding    = "gzip"
)

const (
	DefaultEncoding  = DeflateEncoding
	DefaultChunkSize = 16384
	DefaultLevel     = flate.DefaultCompression
)

type Config struct {
	Encoding string
	// ChunkSize is the size of the pieces fed to the compressor. It does not limit the body size.
	ChunkSize int
	Level     int
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{
		Encoding:  DefaultEncoding,
		ChunkSize: DefaultChunkSize,
		Level:     DefaultLevel,
	}
	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}

	return config
}

func WithEncoding(encoding string) Option {
	return func(config *Config) {
		config.Encoding = encoding
	}
}

func WithChunkSize(chunkSize int) Option {
	return func(config *Config) {
		config.ChunkSize = chunkSize
	}
}

func WithLevel(level int) Option {
	return func(config *Config) {
		config.Level = level
	}
}
