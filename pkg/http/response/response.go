package response

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	motmedelContext "github.com/Motmedel/http_response_go/pkg/context"
	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/errors/types/nil_error"
	"github.com/Motmedel/http_response_go/pkg/http/content_encoding"
	"github.com/Motmedel/http_response_go/pkg/http/parsing/headers/accept_encoding"
	"github.com/Motmedel/http_response_go/pkg/http/renderer/renderer_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/compressor"
	"github.com/Motmedel/http_response_go/pkg/http/response/compressor/compressor_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/encoder"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/response_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/body"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/connection_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/content_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/cookie"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/header"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/response_code"
)

const acceptEncodingHeaderName = "Accept-Encoding"

// Response is a fully buffered HTTP response. It is owned by one request-handling flow at a time and is not safe
// for concurrent use.
//
// The header block may only be written once the body is final; see State.
type Response struct {
	code            response_code.ResponseCode
	connectionType  connection_type.ConnectionType
	contentType     content_type.ContentType
	headers         *header.Header
	cookies         []*cookie.Cookie
	body            body.Body
	contentEncoding string
	state           State

	config *response_config.Config
}

func New(code response_code.ResponseCode, options ...response_config.Option) *Response {
	response := &Response{config: response_config.New(options...)}
	response.Reset(code)
	return response
}

// Reset restores the defaults of a new response with the given status code.
func (response *Response) Reset(code response_code.ResponseCode) {
	response.code = code
	response.connectionType = connection_type.Default
	response.contentType = content_type.Default
	response.headers = header.New()
	response.cookies = nil
	response.body.Reset()
	response.contentEncoding = ""
	response.state = Fresh
}

func (response *Response) Code() response_code.ResponseCode {
	return response.code
}

func (response *Response) State() State {
	return response.state
}

func (response *Response) IsHeadResponse() bool {
	return response.body.IsHead()
}

// invalidateHeader returns a written response to its final body state after a header-affecting mutation.
func (response *Response) invalidateHeader() {
	if response.state != HeaderWritten {
		return
	}

	if response.contentEncoding != "" {
		response.state = Compressed
	} else {
		response.state = BodyFilled
	}
}

func (response *Response) ConnectionType() connection_type.ConnectionType {
	return response.connectionType
}

func (response *Response) SetConnectionType(connectionType connection_type.ConnectionType) {
	response.connectionType = connectionType
	response.invalidateHeader()
}

func (response *Response) ContentType() content_type.ContentType {
	return response.contentType
}

func (response *Response) SetContentType(kind content_type.Kind) {
	response.contentType = content_type.New(kind)
	response.invalidateHeader()
}

// SetCustomContentType is meant for user-defined content types only; the predefined kinds go through
// SetContentType.
func (response *Response) SetCustomContentType(value string) {
	response.contentType = content_type.NewCustom(value)
	response.invalidateHeader()
}

// SetHeader sets a free-form header. Content-Type is routed to SetCustomContentType; the other headers derived from
// response state cannot be set.
func (response *Response) SetHeader(name string, value string) error {
	if strings.EqualFold(name, encoder.ContentTypeHeaderName) {
		response.SetCustomContentType(value)
		return nil
	}

	if encoder.IsManagedHeader(name) {
		return motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", responseErrors.ErrManagedHeader, name), name)
	}

	response.headers.Set(name, value)
	response.invalidateHeader()

	return nil
}

func (response *Response) DeleteHeader(name string) {
	response.headers.Delete(name)
	response.invalidateHeader()
}

func (response *Response) Header(name string) (string, bool) {
	if strings.EqualFold(name, encoder.ContentTypeHeaderName) {
		return response.contentType.HeaderValue(), true
	}
	return response.headers.Get(name)
}

func (response *Response) Headers() []header.Entry {
	return response.headers.Entries()
}

func (response *Response) SetCookie(c *cookie.Cookie) {
	if c == nil {
		return
	}

	response.cookies = append(response.cookies, c.Clone())
	response.invalidateHeader()
}

func (response *Response) Cookies() []*cookie.Cookie {
	cookies := make([]*cookie.Cookie, 0, len(response.cookies))
	for _, c := range response.cookies {
		cookies = append(cookies, c.Clone())
	}
	return cookies
}

func (response *Response) ContentEncoding() string {
	return response.contentEncoding
}

// BodySize returns the logical body size, i.e. the value of the Content-Length header.
func (response *Response) BodySize() int {
	return response.body.Size()
}

// Body returns the bytes transmitted after the header block; empty for head responses.
func (response *Response) Body() []byte {
	return response.body.Bytes()
}

func (response *Response) isCompressed() bool {
	return response.contentEncoding != ""
}

// Write appends to the body. Writes to a head response are discarded without affecting its size.
func (response *Response) Write(data []byte) (int, error) {
	if response.body.IsHead() {
		return len(data), nil
	}

	if response.isCompressed() {
		return 0, motmedelErrors.NewWithTrace(responseErrors.ErrBodyAlreadyCompressed)
	}

	n, err := response.body.Write(data)
	if err != nil {
		return n, motmedelErrors.NewWithTrace(fmt.Errorf("body write: %w", err))
	}

	response.state = BodyFilled

	return n, nil
}

func (response *Response) WriteString(s string) (int, error) {
	return response.Write([]byte(s))
}

// FinalizeBody declares the current body, possibly empty, final.
func (response *Response) FinalizeBody() {
	if response.state == Fresh {
		response.state = BodyFilled
	}
}

// HeadResponse turns the response into a response to a HEAD request: size is reported as the body size while no
// body bytes are transmitted. The mode lasts until Reset; calling it again re-declares the size. A declared size
// describes an identity-coded body, so any content encoding is dropped and Compress leaves the response alone.
func (response *Response) HeadResponse(size int) error {
	if err := response.body.SetHead(size); err != nil {
		return fmt.Errorf("body set head: %w", err)
	}

	response.contentEncoding = ""
	response.state = BodyFilled

	return nil
}

// FillBody renders value with the configured renderer and adopts the content type it reports. When generateBody
// is false, or the response already is a head response, the rendered bytes are retained untransmitted so that the
// declared size, after any compression, matches what the body would have been.
func (response *Response) FillBody(
	request *http.Request,
	value any,
	generateBody bool,
	options ...renderer_config.Option,
) error {
	renderer := response.config.Renderer
	if renderer == nil {
		return motmedelErrors.NewWithTrace(responseErrors.ErrNilRenderer)
	}

	if response.isCompressed() {
		return motmedelErrors.NewWithTrace(responseErrors.ErrBodyAlreadyCompressed)
	}

	result, err := renderer.Render(request, value, renderer_config.New(options...))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if result == nil {
		return motmedelErrors.NewWithTrace(nil_error.New("render result"))
	}

	response.contentType = result.ContentType

	if !generateBody || response.body.IsHead() {
		response.body.SetHeadRepresentation(result.Data)
		response.state = BodyFilled
		return nil
	}

	if _, err := response.Write(result.Data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

func (response *Response) checkCompressible() error {
	switch response.state {
	case Fresh:
		return motmedelErrors.NewWithTrace(responseErrors.ErrCompressBeforeBody)
	case Compressed:
		return motmedelErrors.NewWithTrace(responseErrors.ErrBodyAlreadyCompressed)
	case HeaderWritten:
		return motmedelErrors.NewWithTrace(responseErrors.ErrHeaderAlreadyWritten)
	}
	return nil
}

func (response *Response) compress(ctx context.Context, options ...compressor_config.Option) error {
	if !response.body.HasRepresentation() {
		return nil
	}

	if err := response.checkCompressible(); err != nil {
		return err
	}

	config := compressor_config.New(options...)

	data, err := compressor.Compress(response.body.Representation(), options...)
	if err != nil {
		if response.config.CompressionFallback && errors.Is(err, responseErrors.ErrCompressionFailure) {
			slog.WarnContext(
				motmedelContext.WithErrorContextValue(ctx, err),
				"A compression failure occurred. Sending the body uncompressed.",
				slog.String("encoding", config.Encoding),
			)
			return nil
		}
		return fmt.Errorf("compressor compress: %w", err)
	}

	if err := response.body.Replace(data); err != nil {
		return fmt.Errorf("body replace: %w", err)
	}

	response.contentEncoding = strings.ToLower(config.Encoding)
	response.state = Compressed

	return nil
}

// Compress replaces the body with its compressed representation using the configured encoding. A failure either
// leaves the body unchanged and returns an error wrapping ErrCompressionFailure or, with compression fallback
// enabled, is logged and the body is sent uncompressed. A head response filled by FillBody is compressed like its
// GET counterpart, so both report the same Content-Encoding and Content-Length; one with a size declared through
// HeadResponse is left alone.
func (response *Response) Compress(ctx context.Context) error {
	return response.compress(ctx, response.config.CompressorOptions...)
}

// CompressForRequest compresses the body with the content coding the request's Accept-Encoding header prefers. An
// unparsable header is treated as absent.
func (response *Response) CompressForRequest(ctx context.Context, request *http.Request) error {
	if request == nil {
		return nil
	}

	acceptEncodingValue := request.Header.Get(acceptEncodingHeaderName)
	if acceptEncodingValue == "" {
		return nil
	}

	acceptEncodingData := []byte(acceptEncodingValue)
	acceptEncoding, err := accept_encoding.Parse(acceptEncodingData)
	if err != nil {
		slog.DebugContext(
			motmedelContext.WithErrorContextValue(ctx, fmt.Errorf("accept encoding parse: %w", err)),
			"The Accept-Encoding header could not be parsed. Not compressing.",
		)
		return nil
	}
	if acceptEncoding == nil {
		return nil
	}

	coding := content_encoding.GetMatchingContentEncoding(acceptEncoding.Encodings, compressor.SupportedEncodings)
	switch coding {
	case "":
		return motmedelErrors.NewWithTrace(responseErrors.ErrNoAcceptableContentEncoding, acceptEncodingValue)
	case content_encoding.AcceptContentIdentityIdentifier:
		return nil
	}

	options := append(
		append([]compressor_config.Option{}, response.config.CompressorOptions...),
		compressor_config.WithEncoding(coding),
	)

	return response.compress(ctx, options...)
}

func (response *Response) encoderInput() *encoder.Input {
	return &encoder.Input{
		StatusCode:      response.code,
		ConnectionType:  response.connectionType,
		ContentType:     response.contentType,
		Headers:         response.headers,
		Cookies:         response.cookies,
		ContentEncoding: response.contentEncoding,
		BodySize:        response.body.Size(),
	}
}

// WriteHeader appends the status line and header block to buffer. The body must be final; otherwise nothing is
// written and an error wrapping ErrUsage is returned. Repeated calls without intermediate mutation produce identical
// output.
func (response *Response) WriteHeader(buffer *bytes.Buffer) error {
	if buffer == nil {
		return motmedelErrors.NewWithTrace(responseErrors.ErrNilBuffer)
	}

	if response.state == Fresh {
		return motmedelErrors.NewWithTrace(responseErrors.ErrHeaderBeforeBody)
	}

	if err := encoder.Encode(buffer, response.encoderInput(), response.config.EncoderOptions...); err != nil {
		return fmt.Errorf("encoder encode: %w", err)
	}

	response.state = HeaderWritten

	return nil
}

// WriteTo writes the complete message, header block followed by the transmittable body, to writer.
func (response *Response) WriteTo(writer io.Writer) (int64, error) {
	if writer == nil {
		return 0, motmedelErrors.NewWithTrace(nil_error.New("writer"))
	}

	var buffer bytes.Buffer
	if err := response.WriteHeader(&buffer); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	buffer.Write(response.body.Bytes())

	n, err := buffer.WriteTo(writer)
	if err != nil {
		return n, motmedelErrors.NewWithTrace(fmt.Errorf("buffer write to: %w", err))
	}

	return n, nil
}
