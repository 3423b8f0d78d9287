package response_code

import (
	"net/http"
	"strconv"
)

type ResponseCode int

const (
	Ok                  ResponseCode = http.StatusOK
	Created             ResponseCode = http.StatusCreated
	Accepted            ResponseCode = http.StatusAccepted
	NoContent           ResponseCode = http.StatusNoContent
	NotModified         ResponseCode = http.StatusNotModified
	BadRequest          ResponseCode = http.StatusBadRequest
	Unauthorized        ResponseCode = http.StatusUnauthorized
	Forbidden           ResponseCode = http.StatusForbidden
	NotFound            ResponseCode = http.StatusNotFound
	MethodNotAllowed    ResponseCode = http.StatusMethodNotAllowed
	NotAcceptable       ResponseCode = http.StatusNotAcceptable
	Conflict            ResponseCode = http.StatusConflict
	PreconditionFailed  ResponseCode = http.StatusPreconditionFailed
	InternalServerError ResponseCode = http.StatusInternalServerError
	NotImplemented      ResponseCode = http.StatusNotImplemented
	ServiceUnavailable  ResponseCode = http.StatusServiceUnavailable
)

const unknownReason = "Unknown"

// Valid reports whether the code is a three-digit status code.
func (code ResponseCode) Valid() bool {
	return code >= 100 && code <= 999
}

func (code ResponseCode) Reason() string {
	if text := http.StatusText(int(code)); text != "" {
		return text
	}
	return unknownReason
}

func (code ResponseCode) String() string {
	return strconv.Itoa(int(code)) + " " + code.Reason()
}
