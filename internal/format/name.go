package format

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName renders a raw on-disk block name for display. Names written by
// this package are ASCII; anything else is decoded as ISO-8859-1 so foreign
// names never yield invalid UTF-8.
func DecodeName(raw []byte) string {
	if isASCII(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(bytesToValidUTF8(raw))
	}
	return string(decoded)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func bytesToValidUTF8(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c < utf8.RuneSelf {
			out = append(out, c)
			continue
		}
		out = utf8.AppendRune(out, utf8.RuneError)
	}
	return out
}
