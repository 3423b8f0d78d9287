package content_encoding

import (
	"strings"

	motmedelHttpTypes "github.com/Motmedel/http_response_go/pkg/http/types"
)

const AcceptContentIdentityIdentifier = "identity"

// GetMatchingContentEncoding selects a content coding from supportedEncodings given the client's acceptable
// encodings. It returns "identity" when no compression should be applied and "" when identity is explicitly
// forbidden and no supported coding matches.
func GetMatchingContentEncoding(
	acceptableEncodings []*motmedelHttpTypes.Encoding,
	supportedEncodings []string,
) string {
	if len(acceptableEncodings) == 0 {
		return AcceptContentIdentityIdentifier
	}

	acceptEncoding := motmedelHttpTypes.AcceptEncoding{Encodings: acceptableEncodings}

	refused := make(map[string]struct{})
	for _, acceptableEncoding := range acceptableEncodings {
		if acceptableEncoding != nil && acceptableEncoding.QualityValue == 0 {
			refused[strings.ToLower(acceptableEncoding.Coding)] = struct{}{}
		}
	}

	disallowIdentity := false

	for _, acceptableEncoding := range acceptEncoding.GetPriorityOrderedEncodings() {
		coding := strings.ToLower(acceptableEncoding.Coding)
		qualityValue := acceptableEncoding.QualityValue

		if coding == "*" {
			if qualityValue == 0 {
				disallowIdentity = true
				continue
			}

			for _, supportedEncoding := range supportedEncodings {
				if _, ok := refused[strings.ToLower(supportedEncoding)]; !ok {
					return supportedEncoding
				}
			}
			if _, ok := refused[AcceptContentIdentityIdentifier]; !ok && !disallowIdentity {
				return AcceptContentIdentityIdentifier
			}
			continue
		}

		if coding == AcceptContentIdentityIdentifier {
			if qualityValue == 0 {
				disallowIdentity = true
				continue
			}
			return AcceptContentIdentityIdentifier
		}

		if qualityValue == 0 {
			continue
		}

		for _, supportedEncoding := range supportedEncodings {
			if strings.EqualFold(coding, supportedEncoding) {
				return supportedEncoding
			}
		}
	}

	if disallowIdentity {
		return ""
	}
	return AcceptContentIdentityIdentifier
}
