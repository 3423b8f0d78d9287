package cookie

const (
	SameSiteStrict = "Strict"
	SameSiteLax    = "Lax"
	SameSiteNone   = "None"
)

// Cookie is rendered as one Set-Cookie line.
//
// LifetimeSeconds > 0 renders Max-Age=<n>, < 0 renders Max-Age=0 (expire immediately) and 0 leaves the attribute
// out, making it a session cookie.
type Cookie struct {
	Name            string
	Value           string
	LifetimeSeconds int
	Path            string
	Domain          string
	Secure          bool
	HttpOnly        bool
	SameSite        string
}

// MaxAge returns the Max-Age attribute value and whether the attribute is present.
func (cookie *Cookie) MaxAge() (int, bool) {
	switch {
	case cookie.LifetimeSeconds > 0:
		return cookie.LifetimeSeconds, true
	case cookie.LifetimeSeconds < 0:
		return 0, true
	default:
		return 0, false
	}
}

func (cookie *Cookie) Clone() *Cookie {
	if cookie == nil {
		return nil
	}
	clone := *cookie
	return &clone
}
