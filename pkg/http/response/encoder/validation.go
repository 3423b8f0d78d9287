package encoder

import (
	"fmt"
	"strings"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/cookie"
	"go.uber.org/multierr"
	"golang.org/x/net/http/httpguts"
	"golang.org/x/net/publicsuffix"
)

const maxDomainLabelLength = 63

func ValidateHeaderField(name string, value string) error {
	var err error

	if !httpguts.ValidHeaderFieldName(name) {
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", responseErrors.ErrInvalidHeaderName, name), name),
		)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(
				fmt.Errorf("%w (%s)", responseErrors.ErrInvalidHeaderValue, name),
				value,
			),
		)
	}

	return err
}

// cookie-octet = %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E
func isCookieOctet(b byte) bool {
	switch {
	case b == 0x21:
	case b >= 0x23 && b <= 0x2B:
	case b >= 0x2D && b <= 0x3A:
	case b >= 0x3C && b <= 0x5B:
	case b >= 0x5D && b <= 0x7E:
	default:
		return false
	}
	return true
}

func validCookieValue(value string) bool {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	for i := 0; i < len(value); i++ {
		if !isCookieOctet(value[i]) {
			return false
		}
	}
	return true
}

// av-octet = %x20-3A / %x3C-7E
func validCookiePath(path string) bool {
	for i := 0; i < len(path); i++ {
		if b := path[i]; b < 0x20 || b > 0x7E || b == ';' {
			return false
		}
	}
	return true
}

func validDomainLabel(label string) bool {
	if label == "" || len(label) > maxDomainLabelLength {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}

	for i := 0; i < len(label); i++ {
		b := label[i]
		switch {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9', b == '-':
		default:
			return false
		}
	}
	return true
}

func validateCookieDomain(domain string) error {
	normalizedDomain := strings.ToLower(strings.TrimPrefix(domain, "."))

	for _, label := range strings.Split(normalizedDomain, ".") {
		if !validDomainLabel(label) {
			return motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %q", responseErrors.ErrInvalidCookieDomain, domain),
				domain,
			)
		}
	}

	if suffix, icann := publicsuffix.PublicSuffix(normalizedDomain); icann && suffix == normalizedDomain {
		return motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %q", responseErrors.ErrPublicSuffixDomain, domain),
			domain,
		)
	}

	return nil
}

// ValidateCookie reports every problem with the cookie rather than the first one.
func ValidateCookie(c *cookie.Cookie) error {
	if c == nil {
		return nil
	}

	var err error

	if c.Name == "" || !httpguts.ValidHeaderFieldName(c.Name) {
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", responseErrors.ErrInvalidCookieName, c.Name), c.Name),
		)
	}

	if !validCookieValue(c.Value) {
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(
				fmt.Errorf("%w (%s)", responseErrors.ErrInvalidCookieValue, c.Name),
				c.Value,
			),
		)
	}

	if c.Path != "" && !validCookiePath(c.Path) {
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(
				fmt.Errorf("%w (%s)", responseErrors.ErrInvalidCookiePath, c.Name),
				c.Path,
			),
		)
	}

	if c.Domain != "" {
		err = multierr.Append(err, validateCookieDomain(c.Domain))
	}

	switch c.SameSite {
	case "", cookie.SameSiteStrict, cookie.SameSiteLax, cookie.SameSiteNone:
	default:
		err = multierr.Append(
			err,
			motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %q", responseErrors.ErrInvalidCookieSameSite, c.SameSite),
				c.SameSite,
			),
		)
	}

	return err
}
