package content_type

import "testing"

func TestContentType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		contentType   ContentType
		expectedKind  Kind
		expectedValue string
	}{
		{name: "zero value", contentType: ContentType{}, expectedKind: Text, expectedValue: TextMimeType},
		{name: "json", contentType: New(Json), expectedKind: Json, expectedValue: JsonMimeType},
		{name: "html", contentType: New(Html), expectedKind: Html, expectedValue: HtmlMimeType},
		{name: "velocypack", contentType: New(VelocyPack), expectedKind: VelocyPack, expectedValue: VelocyPackMimeType},
		{name: "dump", contentType: New(Dump), expectedKind: Dump, expectedValue: DumpMimeType},
		{name: "custom kind without value", contentType: New(Custom), expectedKind: Text, expectedValue: TextMimeType},
		{name: "unknown kind", contentType: New(Kind(42)), expectedKind: Text, expectedValue: TextMimeType},
		{
			name:          "custom",
			contentType:   NewCustom("application/vnd.api+json"),
			expectedKind:  Custom,
			expectedValue: "application/vnd.api+json",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if kind := testCase.contentType.Kind(); kind != testCase.expectedKind {
				t.Errorf("got kind %v, expected %v", kind, testCase.expectedKind)
			}
			if value := testCase.contentType.HeaderValue(); value != testCase.expectedValue {
				t.Errorf("got value %q, expected %q", value, testCase.expectedValue)
			}
			if testCase.contentType.IsCustom() != (testCase.expectedKind == Custom) {
				t.Errorf("got is custom %v for kind %v", testCase.contentType.IsCustom(), testCase.expectedKind)
			}
		})
	}
}
