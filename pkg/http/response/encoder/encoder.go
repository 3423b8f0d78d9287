package encoder

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/errors/types/nil_error"
	"github.com/Motmedel/http_response_go/pkg/http/response/encoder/encoder_config"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/connection_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/content_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/cookie"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/header"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/response_code"
	"go.uber.org/multierr"
)

const (
	ContentTypeHeaderName      = "Content-Type"
	ContentLengthHeaderName    = "Content-Length"
	ContentEncodingHeaderName  = "Content-Encoding"
	ConnectionHeaderName       = "Connection"
	SetCookieHeaderName        = "Set-Cookie"
	TransferEncodingHeaderName = "Transfer-Encoding"
)

var managedHeaderNames = map[string]struct{}{
	strings.ToLower(ContentTypeHeaderName):            {},
	strings.ToLower(ContentLengthHeaderName):          {},
	strings.ToLower(ContentEncodingHeaderName):        {},
	strings.ToLower(ConnectionHeaderName):             {},
	strings.ToLower(SetCookieHeaderName):              {},
	strings.ToLower(TransferEncodingHeaderName):       {},
	strings.ToLower(encoder_config.ProductHeaderName): {},
}

// IsManagedHeader reports whether the header is derived from response state and therefore cannot be supplied as
// a free-form header.
func IsManagedHeader(name string) bool {
	_, ok := managedHeaderNames[strings.ToLower(name)]
	return ok
}

// Input is a snapshot of final response state.
type Input struct {
	StatusCode      response_code.ResponseCode
	ConnectionType  connection_type.ConnectionType
	ContentType     content_type.ContentType
	Headers         *header.Header
	Cookies         []*cookie.Cookie
	ContentEncoding string
	BodySize        int
}

func Validate(input *Input, config *encoder_config.Config) error {
	if input == nil {
		return motmedelErrors.NewWithTrace(nil_error.New("encoder input"))
	}
	if config == nil {
		config = encoder_config.New()
	}

	var err error

	if !input.StatusCode.Valid() {
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %d", responseErrors.ErrInvalidStatusCode, input.StatusCode),
				input.StatusCode,
			),
		)
	}

	switch config.HttpVersion {
	case encoder_config.HttpVersion10, encoder_config.HttpVersion11:
	default:
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %q", responseErrors.ErrInvalidHttpVersion, config.HttpVersion),
				config.HttpVersion,
			),
		)
	}

	if input.BodySize < 0 {
		err = multierr.Append(err, motmedelErrors.NewWithTrace(responseErrors.ErrNegativeSize, input.BodySize))
	}

	if !config.HideProductHeader {
		err = multierr.Append(err, ValidateHeaderField(encoder_config.ProductHeaderName, config.ProductHeaderValue))
	}

	contentTypeValue := input.ContentType.HeaderValue()
	if contentTypeValue == "" {
		err = multierr.Append(err, motmedelErrors.NewWithTrace(responseErrors.ErrEmptyContentType))
	} else {
		err = multierr.Append(err, ValidateHeaderField(ContentTypeHeaderName, contentTypeValue))
	}

	for _, entry := range input.Headers.Entries() {
		if IsManagedHeader(entry.Name) {
			err = multierr.Append(
				err,
				motmedelErrors.NewWithTrace(
					fmt.Errorf("%w: %q", responseErrors.ErrReservedHeader, entry.Name),
					entry.Name,
				),
			)
			continue
		}
		err = multierr.Append(err, ValidateHeaderField(entry.Name, entry.Value))
	}

	if input.ContentEncoding != "" {
		err = multierr.Append(err, ValidateHeaderField(ContentEncodingHeaderName, input.ContentEncoding))
	}

	for _, c := range input.Cookies {
		err = multierr.Append(err, ValidateCookie(c))
	}

	return err
}

func writeHeaderLine(buffer *bytes.Buffer, name string, value string) {
	buffer.WriteString(name)
	buffer.WriteString(": ")
	buffer.WriteString(value)
	buffer.WriteString("\r\n")
}

// FormatCookie renders the Set-Cookie value of a cookie. The cookie is expected to be valid.
func FormatCookie(c *cookie.Cookie) string {
	var builder strings.Builder

	builder.WriteString(c.Name)
	builder.WriteByte('=')
	builder.WriteString(c.Value)

	if c.Path != "" {
		builder.WriteString("; Path=")
		builder.WriteString(c.Path)
	}

	if c.Domain != "" {
		builder.WriteString("; Domain=")
		builder.WriteString(c.Domain)
	}

	if maxAge, ok := c.MaxAge(); ok {
		builder.WriteString("; Max-Age=")
		builder.WriteString(strconv.Itoa(maxAge))
	}

	if c.Secure {
		builder.WriteString("; Secure")
	}

	if c.HttpOnly {
		builder.WriteString("; HttpOnly")
	}

	if c.SameSite != "" {
		builder.WriteString("; SameSite=")
		builder.WriteString(c.SameSite)
	}

	return builder.String()
}

// Encode appends the status line and header block, including the terminating empty line, to buffer. On error,
// buffer is left untouched.
func Encode(buffer *bytes.Buffer, input *Input, options ...encoder_config.Option) error {
	if buffer == nil {
		return motmedelErrors.NewWithTrace(responseErrors.ErrNilBuffer)
	}

	config := encoder_config.New(options...)

	if err := Validate(input, config); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	var block bytes.Buffer

	block.WriteString(config.HttpVersion)
	block.WriteByte(' ')
	block.WriteString(input.StatusCode.String())
	block.WriteString("\r\n")

	if !config.HideProductHeader {
		writeHeaderLine(&block, encoder_config.ProductHeaderName, config.ProductHeaderValue)
	}

	if connectionValue := input.ConnectionType.HeaderValue(); connectionValue != "" {
		writeHeaderLine(&block, ConnectionHeaderName, connectionValue)
	}

	writeHeaderLine(&block, ContentTypeHeaderName, input.ContentType.HeaderValue())

	for _, entry := range input.Headers.Entries() {
		writeHeaderLine(&block, http.CanonicalHeaderKey(entry.Name), entry.Value)
	}

	if input.ContentEncoding != "" {
		writeHeaderLine(&block, ContentEncodingHeaderName, input.ContentEncoding)
	}

	writeHeaderLine(&block, ContentLengthHeaderName, strconv.Itoa(input.BodySize))

	for _, c := range input.Cookies {
		if c == nil {
			continue
		}
		writeHeaderLine(&block, SetCookieHeaderName, FormatCookie(c))
	}

	block.WriteString("\r\n")

	buffer.Write(block.Bytes())

	return nil
}
