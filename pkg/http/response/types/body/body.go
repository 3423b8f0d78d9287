package body

import (
	"bytes"

	motmedelErrors "github.com/Motmedel/http_response_go/pkg/errors"
	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
)

// Body accumulates response bytes and tracks the logical size reported to the client. In head mode no bytes are
// transmitted; the logical size is either a declared one or the length of a retained representation that is never
// sent but can still be transformed, e.g. compressed.
type Body struct {
	buffer   bytes.Buffer
	isHead   bool
	retained bool
	headSize int
}

func (body *Body) Write(data []byte) (int, error) {
	if body.isHead {
		return len(data), nil
	}

	return body.buffer.Write(data)
}

func (body *Body) WriteString(s string) (int, error) {
	if body.isHead {
		return len(s), nil
	}

	return body.buffer.WriteString(s)
}

// Size returns the logical size.
func (body *Body) Size() int {
	if body.isHead && !body.retained {
		return body.headSize
	}
	return body.buffer.Len()
}

// Bytes returns the bytes to transmit. The slice is only valid until the next mutation.
func (body *Body) Bytes() []byte {
	if body.isHead {
		return nil
	}
	return body.buffer.Bytes()
}

// Representation returns the bytes the logical size is derived from, including a retained head representation;
// nil when only a size was declared.
func (body *Body) Representation() []byte {
	if body.isHead && !body.retained {
		return nil
	}
	return body.buffer.Bytes()
}

func (body *Body) IsHead() bool {
	return body.isHead
}

// HasRepresentation reports whether Representation yields the body bytes, i.e. the body is not a declared-size
// head body.
func (body *Body) HasRepresentation() bool {
	return !body.isHead || body.retained
}

// SetHead switches the body to head mode with the given logical size, dropping any accumulated bytes.
func (body *Body) SetHead(size int) error {
	if size < 0 {
		return motmedelErrors.NewWithTrace(responseErrors.ErrNegativeSize, size)
	}

	body.isHead = true
	body.retained = false
	body.headSize = size
	body.buffer.Reset()

	return nil
}

// SetHeadRepresentation switches the body to head mode, retaining data as the untransmitted representation whose
// length is the logical size.
func (body *Body) SetHeadRepresentation(data []byte) {
	body.isHead = true
	body.retained = true
	body.headSize = 0
	body.buffer.Reset()
	body.buffer.Write(data)
}

// Replace swaps the representation for data. A declared-size head body has none to replace.
func (body *Body) Replace(data []byte) error {
	if !body.HasRepresentation() {
		return motmedelErrors.NewWithTrace(responseErrors.ErrHeadBodyReplace)
	}

	body.buffer.Reset()
	body.buffer.Write(data)

	return nil
}

func (body *Body) Reset() {
	body.buffer.Reset()
	body.isHead = false
	body.retained = false
	body.headSize = 0
}
