package problem_detail

import (
	"fmt"
	"net/http"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	"github.com/Motmedel/http_response_go/pkg/http/types/problem_detail/problem_detail_config"
	"github.com/goccy/go-json"
)

const MimeType = "application/problem+json"

type Detail struct {
	Type      string         `json:"type,omitempty"`
	Title     string         `json:"title,omitempty"`
	Status    int            `json:"status,omitempty"`
	Detail    string         `json:"detail,omitempty"`
	Instance  string         `json:"instance,omitempty"`
	Extension map[string]any `json:"extension,omitempty"`
}

// MarshalJSON flattens the Extension map into the top-level JSON object,
// instead of nesting it under the "extension" key.
func (d *Detail) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}

	m := make(map[string]any, 5+len(d.Extension))

	for k, v := range d.Extension {
		if k == "" {
			continue
		}
		m[k] = v
	}

	if d.Type != "" {
		m["type"] = d.Type
	}
	if d.Title != "" {
		m["title"] = d.Title
	}
	if d.Status != 0 {
		m["status"] = d.Status
	}
	if d.Detail != "" {
		m["detail"] = d.Detail
	}
	if d.Instance != "" {
		m["instance"] = d.Instance
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json marshal (detail): %w", err), m)
	}
	return b, nil
}

func New(code int, options ...problem_detail_config.Option) *Detail {
	config := problem_detail_config.New(options...)

	title := config.Title
	if title == "" {
		title = http.StatusText(code)
	}

	return &Detail{
		Type:      config.Type,
		Title:     title,
		Status:    code,
		Detail:    config.Detail,
		Instance:  config.Instance,
		Extension: config.Extension,
	}
}
