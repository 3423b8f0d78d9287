package compressor

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/compressor/compressor_config"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
)

// SupportedEncodings lists the content codings in order of preference.
var SupportedEncodings = []string{compressor_config.DeflateEncoding, compressor_config.GzipEncoding}

func IsSupportedEncoding(encoding string) bool {
	for _, supportedEncoding := range SupportedEncodings {
		if strings.EqualFold(encoding, supportedEncoding) {
			return true
		}
	}
	return false
}

func newWriter(buffer *bytes.Buffer, encoding string, level int) (io.WriteCloser, error) {
	switch strings.ToLower(encoding) {
	case compressor_config.DeflateEncoding:
		writer, err := zlib.NewWriterLevel(buffer, level)
		if err != nil {
			return nil, fmt.Errorf("zlib new writer level: %w", err)
		}
		return writer, nil
	case compressor_config.GzipEncoding:
		writer, err := gzip.NewWriterLevel(buffer, level)
		if err != nil {
			return nil, fmt.Errorf("gzip new writer level: %w", err)
		}
		return writer, nil
	default:
		return nil, fmt.Errorf("%w: %q", responseErrors.ErrUnsupportedEncoding, encoding)
	}
}

// Compress returns the compressed representation of data. data itself is never modified, so a failure leaves the
// caller's body intact.
func Compress(data []byte, options ...compressor_config.Option) ([]byte, error) {
	config := compressor_config.New(options...)

	var buffer bytes.Buffer

	writer, err := newWriter(&buffer, config.Encoding, config.Level)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: new writer: %w", responseErrors.ErrCompressionFailure, err),
			config.Encoding,
			config.Level,
		)
	}

	for offset := 0; offset < len(data); offset += config.ChunkSize {
		end := min(offset+config.ChunkSize, len(data))
		if _, err := writer.Write(data[offset:end]); err != nil {
			return nil, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: writer write: %w", responseErrors.ErrCompressionFailure, err),
			)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: writer close: %w", responseErrors.ErrCompressionFailure, err),
		)
	}

	return buffer.Bytes(), nil
}

func Decompress(data []byte, encoding string) ([]byte, error) {
	var reader io.ReadCloser

	switch strings.ToLower(encoding) {
	case compressor_config.DeflateEncoding:
		zlibReader, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("zlib new reader: %w", err))
		}
		reader = zlibReader
	case compressor_config.GzipEncoding:
		gzipReader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("gzip new reader: %w", err))
		}
		reader = gzipReader
	default:
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %q", responseErrors.ErrUnsupportedEncoding, encoding),
			encoding,
		)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("io read all: %w", err))
	}

	return decompressed, nil
}
