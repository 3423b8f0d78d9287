package header

import (
	"net/http"
	"strings"
)

type Entry struct {
	Name  string
	Value string
}

// Header is an ordered mapping of header names to values. Names are unique case-insensitively and iteration
// follows first insertion.
type Header struct {
	entries []*Entry
	index   map[string]int
}

func New() *Header {
	return &Header{}
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// Set stores value under name. An existing entry keeps its position and takes the new value.
func (header *Header) Set(name string, value string) {
	key := normalize(name)

	if i, ok := header.index[key]; ok {
		header.entries[i].Value = value
		return
	}

	if header.index == nil {
		header.index = make(map[string]int)
	}

	header.index[key] = len(header.entries)
	header.entries = append(header.entries, &Entry{Name: http.CanonicalHeaderKey(name), Value: value})
}

func (header *Header) Get(name string) (string, bool) {
	if header == nil {
		return "", false
	}

	i, ok := header.index[normalize(name)]
	if !ok {
		return "", false
	}
	return header.entries[i].Value, true
}

func (header *Header) Delete(name string) {
	if header == nil {
		return
	}

	key := normalize(name)
	i, ok := header.index[key]
	if !ok {
		return
	}

	header.entries = append(header.entries[:i], header.entries[i+1:]...)
	delete(header.index, key)
	for j := i; j < len(header.entries); j++ {
		header.index[normalize(header.entries[j].Name)] = j
	}
}

func (header *Header) Len() int {
	if header == nil {
		return 0
	}
	return len(header.entries)
}

// Entries returns copies of the entries in emission order.
func (header *Header) Entries() []Entry {
	if header == nil {
		return nil
	}

	entries := make([]Entry, 0, len(header.entries))
	for _, entry := range header.entries {
		entries = append(entries, *entry)
	}
	return entries
}
