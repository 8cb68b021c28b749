package loader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

type Encoding string

const (
	EncodingAuto        Encoding = "auto"
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingISO88591    Encoding = "iso-8859-1"
)

// Decode converts raw file content into UTF-8 text. In auto mode, content
// that is not valid UTF-8 is read as Windows-1252, the encoding of
// spreadsheet exports on German locales.
func Decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case "", EncodingAuto:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeWith(charmap.Windows1252, data)
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid utf-8 content")
		}
		return string(data), nil
	case EncodingWindows1252:
		return decodeWith(charmap.Windows1252, data)
	case EncodingISO88591:
		return decodeWith(charmap.ISO8859_1, data)
	default:
		return "", fmt.Errorf("unsupported encoding %q", enc)
	}
}

func decodeWith(cm *charmap.Charmap, data []byte) (string, error) {
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// normalizeText trims a field and brings it into NFC form, so that
// decomposed umlauts compare equal to precomposed ones.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
