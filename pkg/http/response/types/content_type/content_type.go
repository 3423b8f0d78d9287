package content_type

type Kind int

const (
	Text Kind = iota
	Json
	Html
	VelocyPack
	Dump
	Custom
)

const (
	TextMimeType       = "text/plain; charset=utf-8"
	JsonMimeType       = "application/json; charset=utf-8"
	HtmlMimeType       = "text/html; charset=utf-8"
	VelocyPackMimeType = "application/x-velocypack"
	DumpMimeType       = "application/x-arango-dump; charset=utf-8"
)

var mimeTypes = map[Kind]string{
	Text:       TextMimeType,
	Json:       JsonMimeType,
	Html:       HtmlMimeType,
	VelocyPack: VelocyPackMimeType,
	Dump:       DumpMimeType,
}

func (kind Kind) String() string {
	switch kind {
	case Text:
		return "text"
	case Json:
		return "json"
	case Html:
		return "html"
	case VelocyPack:
		return "velocypack"
	case Dump:
		return "dump"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// ContentType is either one of the predefined kinds or Custom with a free-form value. The zero value is Text.
type ContentType struct {
	kind   Kind
	custom string
}

var Default = ContentType{kind: Text}

// New returns a predefined content type. Kinds without a predefined MIME type, Custom included, yield Default.
func New(kind Kind) ContentType {
	if _, ok := mimeTypes[kind]; !ok {
		return Default
	}
	return ContentType{kind: kind}
}

func NewCustom(value string) ContentType {
	return ContentType{kind: Custom, custom: value}
}

func (contentType ContentType) Kind() Kind {
	return contentType.kind
}

func (contentType ContentType) IsCustom() bool {
	return contentType.kind == Custom
}

// HeaderValue returns the Content-Type header value.
func (contentType ContentType) HeaderValue() string {
	if contentType.kind == Custom {
		return contentType.custom
	}
	return mimeTypes[contentType.kind]
}

func (contentType ContentType) String() string {
	return contentType.HeaderValue()
}
