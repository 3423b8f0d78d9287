package encoder_config

const (
	ProductHeaderName         = "Server"
	DefaultProductHeaderValue = "ArangoDB"
	HttpVersion10             = "HTTP/1.0"
	HttpVersion11             = "HTTP/1.1"
	DefaultHttpVersion        = HttpVersion11
)

type Config struct {
	HideProductHeader  bool
	ProductHeaderValue string
	HttpVersion        string
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{
		ProductHeaderValue: DefaultProductHeaderValue,
		HttpVersion:        DefaultHttpVersion,
	}
	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithHideProductHeader(hide bool) Option {
	return func(config *Config) {
		config.HideProductHeader = hide
	}
}

func WithProductHeaderValue(value string) Option {
	return func(config *Config) {
		config.ProductHeaderValue = value
	}
}

// WithHttpVersion sets the status-line protocol version; only HttpVersion10 and HttpVersion11 pass validation.
func WithHttpVersion(version string) Option {
	return func(config *Config) {
		config.HttpVersion = version
	}
}
