package json_renderer

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/http/renderer"
	"github.com/Motmedel/http_response_go/pkg/http/renderer/renderer_config"
	"github.com/Motmedel/http_response_go/pkg/http/response/types/content_type"
	"github.com/goccy/go-json"
)

const PrettyQueryParameter = "pretty"

type Renderer struct{}

func requestsPretty(request *http.Request) bool {
	if request == nil || request.URL == nil {
		return false
	}

	pretty, err := strconv.ParseBool(request.URL.Query().Get(PrettyQueryParameter))
	return err == nil && pretty
}

func (r *Renderer) Render(request *http.Request, value any, config *renderer_config.Config) (*renderer.Result, error) {
	if config == nil {
		config = renderer_config.New()
	}

	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(config.EscapeHtml)
	if config.Pretty || requestsPretty(request) {
		encoder.SetIndent("", config.Indent)
	}

	if err := encoder.Encode(value); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json encoder encode: %w", err), value)
	}

	return &renderer.Result{
		Data:        bytes.TrimSuffix(buffer.Bytes(), []byte("\n")),
		ContentType: content_type.New(content_type.Json),
	}, nil
}

func New() *Renderer {
	return &Renderer{}
}
