package encoder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Motmedel/http_response_go/pkg/errors/types/nil_error"
	"github.com/Motmedel/http_response_go/pkg/http/response/encoder/encoder_config"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/connection_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/content_type"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/cookie"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/header"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/response_code"
	motmedelTestingCmp "github.com/Motmedel/http_response_go/pkg/testing/cmp"
	"github.com/google/go-cmp/cmp"
)

func makeInput() *Input {
	return &Input{
		StatusCode:     response_code.Ok,
		ConnectionType: connection_type.KeepAlive,
		ContentType:    content_type.New(content_type.Json),
		Headers:        header.New(),
		BodySize:       2,
	}
}

func encode(t *testing.T, input *Input, options ...encoder_config.Option) string {
	t.Helper()

	var buffer bytes.Buffer
	if err := Encode(&buffer, input, options...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buffer.String()
}

func headerLines(block string, name string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\r\n") {
		if strings.HasPrefix(strings.ToLower(line), strings.ToLower(name)+":") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestEncode(t *testing.T) {
	t.Parallel()

	input := makeInput()
	input.Headers.Set("x-arango-queue-time-seconds", "0.5")
	input.Headers.Set("Location", "/_api/document/1")
	input.ContentEncoding = "deflate"
	input.Cookies = []*cookie.Cookie{{Name: "sid", Value: "abc", Path: "/", HttpOnly: true}}

	expected := "HTTP/1.1 200 OK\r\n" +
		"Server: ArangoDB\r\n" +
		"Connection: Keep-Alive\r\n" +
		"Content-Type: application/json; charset=utf-8\r\n" +
		"X-Arango-Queue-Time-Seconds: 0.5\r\n" +
		"Location: /_api/document/1\r\n" +
		"Content-Encoding: deflate\r\n" +
		"Content-Length: 2\r\n" +
		"Set-Cookie: sid=abc; Path=/; HttpOnly\r\n" +
		"\r\n"

	if diff := cmp.Diff(expected, encode(t, input)); diff != "" {
		t.Errorf("header block mismatch (-expected +got):\n%s", diff)
	}
}

func TestEncodeAppendsToBuffer(t *testing.T) {
	t.Parallel()

	input := makeInput()
	input.ConnectionType = connection_type.None

	var buffer bytes.Buffer
	buffer.WriteString("prefix")
	if err := Encode(&buffer, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(buffer.String(), "prefixHTTP/1.1 200 OK\r\n") {
		t.Errorf("expected header block to be appended, got %q", buffer.String())
	}
	if len(headerLines(buffer.String(), "Connection")) != 0 {
		t.Error("expected no Connection header for connection type none")
	}
}

func TestEncodeStatusLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		code     response_code.ResponseCode
		expected string
	}{
		{code: response_code.NotFound, expected: "HTTP/1.1 404 Not Found\r\n"},
		{code: response_code.InternalServerError, expected: "HTTP/1.1 500 Internal Server Error\r\n"},
		{code: 599, expected: "HTTP/1.1 599 Unknown\r\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			t.Parallel()

			input := makeInput()
			input.StatusCode = testCase.code

			if block := encode(t, input); !strings.HasPrefix(block, testCase.expected) {
				t.Errorf("got %q, expected prefix %q", block, testCase.expected)
			}
		})
	}
}

func TestEncodeCookies(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cookie   *cookie.Cookie
		expected string
	}{
		{
			name:     "name and value only",
			cookie:   &cookie.Cookie{Name: "a", Value: "1"},
			expected: "a=1",
		},
		{
			name: "all attributes",
			cookie: &cookie.Cookie{
				Name:            "sid",
				Value:           "xyz",
				LifetimeSeconds: 3600,
				Path:            "/_db/_system",
				Domain:          "example.com",
				Secure:          true,
				HttpOnly:        true,
				SameSite:        cookie.SameSiteStrict,
			},
			expected: "sid=xyz; Path=/_db/_system; Domain=example.com; Max-Age=3600; Secure; HttpOnly; SameSite=Strict",
		},
		{
			name:     "negative lifetime expires",
			cookie:   &cookie.Cookie{Name: "sid", Value: "", LifetimeSeconds: -10},
			expected: "sid=; Max-Age=0",
		},
		{
			name:     "secure only",
			cookie:   &cookie.Cookie{Name: "t", Value: "\"quoted\"", Secure: true},
			expected: "t=\"quoted\"; Secure",
		},
		{
			name:     "domain without path",
			cookie:   &cookie.Cookie{Name: "d", Value: "v", Domain: ".example.org"},
			expected: "d=v; Domain=.example.org",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			input := makeInput()
			input.Cookies = []*cookie.Cookie{testCase.cookie}

			lines := headerLines(encode(t, input), SetCookieHeaderName)
			if diff := cmp.Diff([]string{SetCookieHeaderName + ": " + testCase.expected}, lines); diff != "" {
				t.Errorf("Set-Cookie mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeCookieOrder(t *testing.T) {
	t.Parallel()

	input := makeInput()
	names := []string{"z", "a", "m", "b"}
	for _, name := range names {
		input.Cookies = append(input.Cookies, &cookie.Cookie{Name: name, Value: "v"})
	}
	input.Cookies = append(input.Cookies, nil)

	var expected []string
	for _, name := range names {
		expected = append(expected, SetCookieHeaderName+": "+name+"=v")
	}

	if diff := cmp.Diff(expected, headerLines(encode(t, input), SetCookieHeaderName)); diff != "" {
		t.Errorf("Set-Cookie order mismatch (-expected +got):\n%s", diff)
	}
}

func TestEncodeContentType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		contentType content_type.ContentType
		expected    string
	}{
		{name: "predefined", contentType: content_type.New(content_type.Html), expected: content_type.HtmlMimeType},
		{name: "custom", contentType: content_type.NewCustom("image/png"), expected: "image/png"},
		{name: "default", contentType: content_type.ContentType{}, expected: content_type.TextMimeType},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			input := makeInput()
			input.ContentType = testCase.contentType

			lines := headerLines(encode(t, input), ContentTypeHeaderName)
			if diff := cmp.Diff([]string{ContentTypeHeaderName + ": " + testCase.expected}, lines); diff != "" {
				t.Errorf("Content-Type mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeProductHeader(t *testing.T) {
	t.Parallel()

	input := makeInput()

	if lines := headerLines(encode(t, input), encoder_config.ProductHeaderName); len(lines) != 1 ||
		lines[0] != "Server: "+encoder_config.DefaultProductHeaderValue {
		t.Errorf("got %v, expected the product header", lines)
	}

	hidden := encode(t, input, encoder_config.WithHideProductHeader(true))
	if lines := headerLines(hidden, encoder_config.ProductHeaderName); len(lines) != 0 {
		t.Errorf("got %v, expected no product header", lines)
	}

	custom := encode(t, input, encoder_config.WithProductHeaderValue("db/3.0"))
	if lines := headerLines(custom, encoder_config.ProductHeaderName); len(lines) != 1 || lines[0] != "Server: db/3.0" {
		t.Errorf("got %v, expected custom product header", lines)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	t.Parallel()

	input := makeInput()
	for _, name := range []string{"X-C", "X-A", "X-B"} {
		input.Headers.Set(name, "v")
	}

	first := encode(t, input)
	for i := 0; i < 10; i++ {
		if got := encode(t, input); got != first {
			t.Fatalf("encoding not deterministic:\n%q\n%q", first, got)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		modify   func(*Input)
		expected []error
	}{
		{
			name:     "header name with space",
			modify:   func(input *Input) { input.Headers.Set("Bad Name", "v") },
			expected: []error{responseErrors.ErrInvalidHeaderName, responseErrors.ErrEncoding},
		},
		{
			name:     "header value with newline",
			modify:   func(input *Input) { input.Headers.Set("X-Injected", "a\r\nSet-Cookie: x=y") },
			expected: []error{responseErrors.ErrInvalidHeaderValue},
		},
		{
			name:     "reserved header",
			modify:   func(input *Input) { input.Headers.Set("Content-Length", "10") },
			expected: []error{responseErrors.ErrReservedHeader},
		},
		{
			name:     "empty custom content type",
			modify:   func(input *Input) { input.ContentType = content_type.NewCustom("") },
			expected: []error{responseErrors.ErrEmptyContentType},
		},
		{
			name:     "custom content type with control character",
			modify:   func(input *Input) { input.ContentType = content_type.NewCustom("text/plain\x00") },
			expected: []error{responseErrors.ErrInvalidHeaderValue},
		},
		{
			name:     "invalid status code",
			modify:   func(input *Input) { input.StatusCode = 42 },
			expected: []error{responseErrors.ErrInvalidStatusCode},
		},
		{
			name:     "negative body size",
			modify:   func(input *Input) { input.BodySize = -1 },
			expected: []error{responseErrors.ErrNegativeSize},
		},
		{
			name: "cookie name",
			modify: func(input *Input) {
				input.Cookies = []*cookie.Cookie{{Name: "a;b", Value: "v"}}
			},
			expected: []error{responseErrors.ErrInvalidCookieName},
		},
		{
			name: "cookie value",
			modify: func(input *Input) {
				input.Cookies = []*cookie.Cookie{{Name: "a", Value: "x y"}}
			},
			expected: []error{responseErrors.ErrInvalidCookieValue},
		},
		{
			name: "cookie path",
			modify: func(input *Input) {
				input.Cookies = []*cookie.Cookie{{Name: "a", Path: "/;Secure"}}
			},
			expected: []error{responseErrors.ErrInvalidCookiePath},
		},
		{
			name: "cookie domain",
			modify: func(input *Input) {
				input.Cookies = []*cookie.Cookie{{Name: "a", Domain: "exa mple.com"}}
			},
			expected: []error{responseErrors.ErrInvalidCookieDomain},
		},
		{
			name: "cookie public suffix domain",
			modify: func(input *Input) {
				input.Cookies = []*cookie.Cookie{{Name: "a", Domain: "co.uk"}}
			},
			expected: []error{responseErrors.ErrPublicSuffixDomain},
		},
		{
			name: "cookie same site",
			modify: func(input *Input) {
				input.Cookies = []*cookie.Cookie{{Name: "a", SameSite: "sometimes"}}
			},
			expected: []error{responseErrors.ErrInvalidCookieSameSite},
		},
		{
			name: "all problems reported",
			modify: func(input *Input) {
				input.Headers.Set("Bad Name", "v")
				input.Cookies = []*cookie.Cookie{{Name: "", Value: "x y"}}
			},
			expected: []error{
				responseErrors.ErrInvalidHeaderName,
				responseErrors.ErrInvalidCookieName,
				responseErrors.ErrInvalidCookieValue,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			input := makeInput()
			testCase.modify(input)

			var buffer bytes.Buffer
			buffer.WriteString("untouched")

			err := Encode(&buffer, input)
			motmedelTestingCmp.CompareErrIs(t, err, testCase.expected...)

			if buffer.String() != "untouched" {
				t.Errorf("expected buffer to be untouched, got %q", buffer.String())
			}
		})
	}
}

func TestEncodeHttpVersion(t *testing.T) {
	t.Parallel()

	block := encode(t, makeInput(), encoder_config.WithHttpVersion(encoder_config.HttpVersion10))
	if !strings.HasPrefix(block, "HTTP/1.0 200 OK\r\n") {
		t.Errorf("got %q, expected an HTTP/1.0 status line", block)
	}

	for _, version := range []string{"", "HTTP/2", "HTTP/1.1\r\nSet-Cookie: x=y"} {
		var buffer bytes.Buffer
		err := Encode(&buffer, makeInput(), encoder_config.WithHttpVersion(version))
		motmedelTestingCmp.CompareErrIs(t, err, responseErrors.ErrInvalidHttpVersion, responseErrors.ErrEncoding)

		if buffer.Len() != 0 {
			t.Errorf("expected nothing written for %q, got %q", version, buffer.String())
		}
	}
}

func TestEncodeNilArguments(t *testing.T) {
	t.Parallel()

	motmedelTestingCmp.CompareErrIs(t, Encode(nil, makeInput()), responseErrors.ErrNilBuffer)

	var buffer bytes.Buffer
	motmedelTestingCmp.CompareErr(t, Encode(&buffer, nil), nil_error.New("encoder input"))
}

func TestValidateCookieDomain(t *testing.T) {
	t.Parallel()

	for _, domain := range []string{"example.com", ".example.com", "localhost", "db.internal", "Example.COM"} {
		t.Run(domain, func(t *testing.T) {
			t.Parallel()

			if err := ValidateCookie(&cookie.Cookie{Name: "a", Domain: domain}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestIsManagedHeader(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"content-length", "Content-Type", "SERVER", "set-cookie", "Transfer-Encoding"} {
		if !IsManagedHeader(name) {
			t.Errorf("expected %q to be managed", name)
		}
	}
	if IsManagedHeader("X-Custom") {
		t.Error("expected X-Custom not to be managed")
	}
}
