package renderer

import (
	"net/http"

	"github.com/Motmedel/http_response_go/pkg/http/renderer/renderer_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/content_type"
)

type Result struct {
	Data        []byte
	ContentType content_type.ContentType
}

// Renderer produces a response body from a structured value. The request is available for negotiation and may be
// nil.
type Renderer interface {
	Render(request *http.Request, value any, config *renderer_config.Config) (*Result, error)
}

type RendererFunction func(*http.Request, any, *renderer_config.Config) (*Result, error)

func (rf RendererFunction) Render(request *http.Request, value any, config *renderer_config.Config) (*Result, error) {
	return rf(request, value, config)
}
