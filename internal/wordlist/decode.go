package wordlist

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/alucardeht/wordcount/internal/failure"
)

const EncodingAuto = "auto"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding names the charset of data: a BOM wins, valid UTF-8 is taken
// as is, anything else is assumed to be windows-1252.
func DetectEncoding(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "utf-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "utf-16be"
	case utf8.Valid(data):
		return "utf-8"
	default:
		return "windows-1252"
	}
}

// ValidateEncoding fails with InvalidArgument when name is neither "auto"
// nor a supported IANA charset name.
func ValidateEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", EncodingAuto:
		return nil, nil
	case "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "windows-1252":
		return charmap.Windows1252, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, failure.InvalidArgument("unsupported encoding %q", name)
	}
	return enc, nil
}

// Decode converts data to UTF-8 using the named charset, or the detected one
// when name is "auto".
func Decode(data []byte, name string) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	if name == "" || strings.EqualFold(name, EncodingAuto) {
		name = DetectEncoding(data)
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	result, err := io.ReadAll(reader)
	if err != nil {
		return "", failure.SourceUnavailable(err, "decode word list as %s", name)
	}

	return string(bytes.ToValidUTF8(result, []byte("\uFFFD"))), nil
}
