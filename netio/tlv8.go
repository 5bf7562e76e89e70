package netio

import "fmt"

// TLV8 is the minimal tag-length-value helper the /pairings HTTP
// endpoint uses to peel a request body into tagged fields. Values longer than 255 bytes arrive as consecutive same-tag
// fragments and are concatenated on decode.
type TLV8 map[byte][]byte

// DecodeTLV8 parses a flat sequence of (tag byte, length byte, value)
// triples.
func DecodeTLV8(data []byte) (TLV8, error) {
	out := make(TLV8)
	for i := 0; i < len(data); {
		if i+2 > len(data) {
			return nil, fmt.Errorf("netio: truncated tlv8 at byte %d", i)
		}
		tag := data[i]
		length := int(data[i+1])
		i += 2
		if i+length > len(data) {
			return nil, fmt.Errorf("netio: tlv8 value for tag %d overruns buffer", tag)
		}
		out[tag] = append(out[tag], data[i:i+length]...)
		i += length
	}
	return out, nil
}

// EncodeTLV8 serializes tags in ascending order, splitting any value
// longer than 255 bytes into consecutive same-tag fragments per the
// TLV8 wire format.
func EncodeTLV8(t TLV8) []byte {
	tags := make([]byte, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	for i := 1; i < len(tags); i++ {
		for j := i; j > 0 && tags[j-1] > tags[j]; j-- {
			tags[j-1], tags[j] = tags[j], tags[j-1]
		}
	}

	var out []byte
	for _, tag := range tags {
		value := t[tag]
		if len(value) == 0 {
			out = append(out, tag, 0)
			continue
		}
		for len(value) > 0 {
			chunk := value
			if len(chunk) > 255 {
				chunk = chunk[:255]
			}
			out = append(out, tag, byte(len(chunk)))
			out = append(out, chunk...)
			value = value[len(chunk):]
		}
	}
	return out
}
