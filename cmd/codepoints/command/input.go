package command

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/scalecode-solutions/codepoints"
)

// decoders maps the supported --encoding values to decoders producing UTF-8.
var decoders = map[string]func() *encoding.Decoder{
	"utf-8": func() *encoding.Decoder {
		return unicode.UTF8BOM.NewDecoder()
	},
	"utf-16": func() *encoding.Decoder {
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	},
	"utf-16le": func() *encoding.Decoder {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	},
	"utf-16be": func() *encoding.Decoder {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	},
}

// decodeInput reads r in the named encoding and returns it as UTF-16 code
// units. Malformed input is replaced by U+FFFD.
func decodeInput(r io.Reader, name string) ([]uint16, error) {
	newDecoder, ok := decoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	b, err := io.ReadAll(transform.NewReader(r, newDecoder()))
	if err != nil {
		return nil, err
	}
	return codepoints.EncodeString(string(b)), nil
}

// encodeArgs joins command line arguments with spaces.
func encodeArgs(args []string) []uint16 {
	return codepoints.EncodeString(strings.Join(args, " "))
}
