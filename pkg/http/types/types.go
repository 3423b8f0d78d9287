package types

type Encoding struct {
	Coding       string
	QualityValue float32
}

type AcceptEncoding struct {
	Encodings []*Encoding
	Raw       string
}

// GetPriorityOrderedEncodings returns the encodings ordered by descending quality value. Encodings with equal
// quality values keep their order of appearance.
func (acceptEncoding *AcceptEncoding) GetPriorityOrderedEncodings() []*Encoding {
	if acceptEncoding == nil {
		return nil
	}

	ordered := make([]*Encoding, 0, len(acceptEncoding.Encodings))
	for _, encoding := range acceptEncoding.Encodings {
		if encoding == nil {
			continue
		}

		i := len(ordered)
		for i > 0 && ordered[i-1].QualityValue < encoding.QualityValue {
			i--
		}
		ordered = append(ordered, nil)
		copy(ordered[i+1:], ordered[i:])
		ordered[i] = encoding
	}

	return ordered
}
