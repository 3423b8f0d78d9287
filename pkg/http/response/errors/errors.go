package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Usage, compression and encoding errors of the response core wrap exactly one of these. Content-coding
// negotiation failures are the client's doing and wrap none; see ErrNoAcceptableContentEncoding.
var (
	ErrUsage              = errors.New("usage error")
	ErrCompressionFailure = errors.New("compression failure")
	ErrEncoding           = errors.New("encoding error")
)

var (
	ErrHeaderBeforeBody      = fmt.Errorf("%w: header written before body finalized", ErrUsage)
	ErrBodyAlreadyCompressed = fmt.Errorf("%w: body already compressed", ErrUsage)
	ErrCompressBeforeBody    = fmt.Errorf("%w: compression before body finalized", ErrUsage)
	ErrHeaderAlreadyWritten  = fmt.Errorf("%w: header already written", ErrUsage)
	ErrManagedHeader         = fmt.Errorf("%w: managed header", ErrUsage)
	ErrNegativeSize          = fmt.Errorf("%w: negative size", ErrUsage)
	ErrNilRenderer           = fmt.Errorf("%w: nil renderer", ErrUsage)
	ErrNilBuffer             = fmt.Errorf("%w: nil buffer", ErrUsage)
	ErrHeadBodyReplace       = fmt.Errorf("%w: replace on head response body", ErrUsage)

	ErrUnsupportedEncoding = fmt.Errorf("%w: unsupported content encoding", ErrCompressionFailure)
	// ErrNoAcceptableContentEncoding means the request's Accept-Encoding refuses identity and every supported coding.
	ErrNoAcceptableContentEncoding = errors.New("no acceptable content encoding")

	ErrInvalidHeaderName     = fmt.Errorf("%w: invalid header name", ErrEncoding)
	ErrInvalidHeaderValue    = fmt.Errorf("%w: invalid header value", ErrEncoding)
	ErrEmptyContentType      = fmt.Errorf("%w: empty content type", ErrEncoding)
	ErrInvalidCookieName     = fmt.Errorf("%w: invalid cookie name", ErrEncoding)
	ErrInvalidCookieValue    = fmt.Errorf("%w: invalid cookie value", ErrEncoding)
	ErrInvalidCookiePath     = fmt.Errorf("%w: invalid cookie path", ErrEncoding)
	ErrInvalidCookieDomain   = fmt.Errorf("%w: invalid cookie domain", ErrEncoding)
	ErrPublicSuffixDomain    = fmt.Errorf("%w: cookie domain is a public suffix", ErrEncoding)
	ErrInvalidCookieSameSite = fmt.Errorf("%w: invalid cookie same site", ErrEncoding)
	ErrReservedHeader        = fmt.Errorf("%w: reserved header", ErrEncoding)
	ErrInvalidStatusCode     = fmt.Errorf("%w: invalid status code", ErrEncoding)
	ErrInvalidHttpVersion    = fmt.Errorf("%w: invalid http version", ErrEncoding)
)
