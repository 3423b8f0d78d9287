package body

import (
	"testing"

	responseErrors "github.com/Motmedel/http_response_go/pkg/http/response/errors"
	motmedelTestingCmp "github.com/Motmedel/http_response_go/pkg/testing/cmp"
)

func TestBodyWrite(t *testing.T) {
	t.Parallel()

	var b Body

	if _, err := b.WriteString("hello "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Write([]byte("world")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(b.Bytes()) != "hello world" {
		t.Errorf("got %q, expected %q", b.Bytes(), "hello world")
	}
	if b.Size() != len("hello world") {
		t.Errorf("got size %d, expected %d", b.Size(), len("hello world"))
	}
}

func TestBodyHead(t *testing.T) {
	t.Parallel()

	var b Body
	_, _ = b.WriteString("before")

	if err := b.SetHead(128); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := b.WriteString("after")
	if err != nil || n != len("after") {
		t.Fatalf("got %d, %v, expected %d, nil", n, err, len("after"))
	}

	if !b.IsHead() {
		t.Error("expected head mode")
	}
	if b.Size() != 128 {
		t.Errorf("got size %d, expected 128", b.Size())
	}
	if len(b.Bytes()) != 0 {
		t.Errorf("got %d transmittable bytes, expected 0", len(b.Bytes()))
	}

	motmedelTestingCmp.CompareErrIs(t, b.Replace([]byte("x")), responseErrors.ErrHeadBodyReplace, responseErrors.ErrUsage)
	motmedelTestingCmp.CompareErrIs(t, b.SetHead(-1), responseErrors.ErrNegativeSize)

	b.Reset()
	if b.IsHead() || b.Size() != 0 {
		t.Errorf("got head %v, size %d after reset, expected false, 0", b.IsHead(), b.Size())
	}
}

func TestBodyReplace(t *testing.T) {
	t.Parallel()

	var b Body
	_, _ = b.WriteString("original")

	if err := b.Replace([]byte("new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b.Bytes()) != "new" || b.Size() != 3 {
		t.Errorf("got %q (size %d), expected %q (size 3)", b.Bytes(), b.Size(), "new")
	}
}

func TestBodyHeadRepresentation(t *testing.T) {
	t.Parallel()

	var b Body
	_, _ = b.WriteString("discarded")

	b.SetHeadRepresentation([]byte(`{"a":"b"}`))
	_, _ = b.WriteString("ignored")

	if !b.IsHead() || !b.HasRepresentation() {
		t.Fatalf("got head %v, representation %v, expected both", b.IsHead(), b.HasRepresentation())
	}
	if b.Size() != len(`{"a":"b"}`) {
		t.Errorf("got size %d, expected %d", b.Size(), len(`{"a":"b"}`))
	}
	if len(b.Bytes()) != 0 {
		t.Errorf("got %d transmittable bytes, expected 0", len(b.Bytes()))
	}
	if string(b.Representation()) != `{"a":"b"}` {
		t.Errorf("got representation %q", b.Representation())
	}

	if err := b.Replace([]byte("xyz")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Size() != 3 || len(b.Bytes()) != 0 {
		t.Errorf("got size %d with %d bytes, expected 3 with 0", b.Size(), len(b.Bytes()))
	}

	if err := b.SetHead(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HasRepresentation() || b.Representation() != nil || b.Size() != 7 {
		t.Errorf("got representation %v (%q), size %d, expected a declared size of 7", b.HasRepresentation(), b.Representation(), b.Size())
	}
}
