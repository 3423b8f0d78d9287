package parsing

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
)

// ParseHttpResponseData parses a complete serialized response and reads its body. request supplies the method
// the response answers; a HEAD request means the declared Content-Length is not followed by body bytes.
func ParseHttpResponseData(responseBytes []byte, request *http.Request) (*http.Response, []byte, error) {
	if len(responseBytes) == 0 {
		return nil, nil, nil
	}

	reader := bufio.NewReader(bytes.NewReader(responseBytes))
	response, err := http.ReadResponse(reader, request)
	if err != nil {
		return nil, nil, motmedelErrors.NewWithTrace(fmt.Errorf("http read response: %w", err), responseBytes)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, motmedelErrors.NewWithTrace(fmt.Errorf("io read all: %w", err), responseBytes)
	}

	if reader.Buffered() != 0 {
		return nil, nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %d trailing bytes", motmedelErrors.ErrSyntaxError, reader.Buffered()),
			responseBytes,
		)
	}

	return response, body, nil
}
