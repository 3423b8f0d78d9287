package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	motmedelContext "github.com/Motmedel/http_response_go/pkg/context"
	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/response_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/connection_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/response_code"
	"github.com/Motmedel/http_response_go/pkg/http/types/problem_detail"
	"github.com/Motmedel/http_response_go/pkg/http/types/problem_detail/problem_detail_config"
	"github.com/google/uuid"
)

const (
	echoPath = "/_admin/echo"
	timePath = "/_admin/time"
)

type routeFunction func(request *http.Request) (any, error)

type echoBody struct {
	Method  string              `json:"method"`
	Url     string              `json:"url"`
	Headers map[string][]string `json:"headers"`
	Cookies map[string]string   `json:"cookies"`
}

type timeBody struct {
	Time float64 `json:"time"`
}

type Handler struct {
	ResponseOptions []response_config.Option
	Now             func() time.Time
}

func (handler *Handler) now() time.Time {
	if handler.Now != nil {
		return handler.Now()
	}
	return time.Now()
}

func (handler *Handler) echo(request *http.Request) (any, error) {
	cookies := make(map[string]string)
	for _, requestCookie := range request.Cookies() {
		cookies[requestCookie.Name] = requestCookie.Value
	}

	return &echoBody{
		Method:  request.Method,
		Url:     request.URL.String(),
		Headers: request.Header,
		Cookies: cookies,
	}, nil
}

func (handler *Handler) currentTime(*http.Request) (any, error) {
	return &timeBody{Time: float64(handler.now().UnixNano()) / float64(time.Second)}, nil
}

func (handler *Handler) route(path string) routeFunction {
	switch path {
	case echoPath:
		return handler.echo
	case timePath:
		return handler.currentTime
	}
	return nil
}

func (handler *Handler) fill(
	ctx context.Context,
	request *http.Request,
	code response_code.ResponseCode,
	value any,
) (*response.Response, error) {
	httpResponse := response.New(code, handler.ResponseOptions...)
	if err := httpResponse.FillBody(request, value, request.Method != http.MethodHead); err != nil {
		return nil, fmt.Errorf("fill body: %w", err)
	}

	if err := httpResponse.CompressForRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("compress for request: %w", err)
	}

	return httpResponse, nil
}

func (handler *Handler) problem(
	ctx context.Context,
	request *http.Request,
	code response_code.ResponseCode,
	options ...problem_detail_config.Option,
) *response.Response {
	detail := problem_detail.New(int(code), options...)

	httpResponse := response.New(code, handler.ResponseOptions...)
	err := httpResponse.FillBody(request, detail, request == nil || request.Method != http.MethodHead)
	if err != nil {
		slog.ErrorContext(
			motmedelContext.WithErrorContextValue(ctx, fmt.Errorf("fill body: %w", err)),
			"A problem detail could not be rendered.",
			slog.String("instance", detail.Instance),
		)
		httpResponse.Reset(code)
		httpResponse.FinalizeBody()
		return httpResponse
	}
	httpResponse.SetCustomContentType(problem_detail.MimeType)

	return httpResponse
}

// Serve produces the response to a single request. Failures are logged and answered with a problem detail.
func (handler *Handler) Serve(ctx context.Context, request *http.Request) *response.Response {
	if request == nil || request.URL == nil {
		return handler.problem(ctx, request, response_code.BadRequest)
	}

	routeFn := handler.route(request.URL.Path)
	if routeFn == nil {
		return handler.problem(ctx, request, response_code.NotFound)
	}

	if request.Method != http.MethodGet && request.Method != http.MethodHead {
		httpResponse := handler.problem(ctx, request, response_code.MethodNotAllowed)
		_ = httpResponse.SetHeader("Allow", "GET, HEAD")
		return httpResponse
	}

	value, err := routeFn(request)
	if err == nil {
		var httpResponse *response.Response
		httpResponse, err = handler.fill(ctx, request, response_code.Ok, value)
		if err == nil {
			return httpResponse
		}
	}

	var options []problem_detail_config.Option
	code := response_code.InternalServerError
	if errors.Is(err, responseErrors.ErrNoAcceptableContentEncoding) {
		code = response_code.NotAcceptable
		options = append(options, problem_detail_config.WithDetail("No acceptable content coding is supported."))
	}

	httpResponse := handler.problem(ctx, request, code, options...)
	if code == response_code.InternalServerError {
		slog.ErrorContext(
			motmedelContext.WithErrorContextValue(ctx, err),
			"An error occurred when handling a request.",
			slog.String("path", request.URL.Path),
		)
	}

	return httpResponse
}

// ServeConn serves requests on conn until the client closes the connection or asks for it to be closed.
func (handler *Handler) ServeConn(ctx context.Context, conn net.Conn) error {
	if conn == nil {
		return nil
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		request, err := http.ReadRequest(reader)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}

			httpResponse := handler.problem(ctx, nil, response_code.BadRequest)
			httpResponse.SetConnectionType(connection_type.Close)
			_, _ = httpResponse.WriteTo(conn)

			return motmedelErrors.NewWithTrace(fmt.Errorf("http read request: %w", err))
		}

		requestCtx := motmedelContext.WithRequestIdContextValue(ctx, uuid.New().String())

		httpResponse := handler.Serve(requestCtx, request)
		if request.Close {
			httpResponse.SetConnectionType(connection_type.Close)
		}

		_, _ = io.Copy(io.Discard, request.Body)
		_ = request.Body.Close()

		if _, err := httpResponse.WriteTo(conn); err != nil {
			return fmt.Errorf("response write to: %w", err)
		}

		if request.Close {
			return nil
		}
	}
}
