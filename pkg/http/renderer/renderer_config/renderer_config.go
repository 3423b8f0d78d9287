package renderer_config

type Config struct {
	Pretty     bool
	EscapeHtml bool
	Indent     string
}

const DefaultIndent = "  "

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{Indent: DefaultIndent}
	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithPretty(pretty bool) Option {
	return func(config *Config) {
		config.Pretty = pretty
	}
}

func WithEscapeHtml(escapeHtml bool) Option {
	return func(config *Config) {
		config.EscapeHtml = escapeHtml
	}
}

func WithIndent(indent string) Option {
	return func(config *Config) {
		config.Indent = indent
	}
}
