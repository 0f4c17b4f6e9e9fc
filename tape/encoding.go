package tape

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrNotExport reports that a file decoded fine but contains no
// document header anywhere.
var ErrNotExport = errors.New("no export header found")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeFile reads a raw export file and decodes it to text. The
// format ships in several encodings depending on the exporting
// system's configuration, so candidates are tried in a fixed order:
// UTF-16 little-endian, UTF-8, then Windows-1252. The first two are
// accepted only when a document header appears near the start of the
// decoded text; the single-byte fallback cannot fail and is accepted
// unconditionally, best effort. Only an unreadable file is an error.
func DecodeFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read export: %w", err)
	}

	return decode(raw), nil
}

func decode(raw []byte) string {
	if decoded, err := utf16le.NewDecoder().Bytes(raw); err == nil {
		text := strings.TrimPrefix(string(decoded), "\ufeff")
		if looksLikeExport(text) {
			return text
		}
	}

	if utf8.Valid(raw) && looksLikeExport(string(raw)) {
		return string(raw)
	}

	decoded, _ := charmap.Windows1252.NewDecoder().Bytes(raw)

	return string(decoded)
}

// looksLikeExport checks that the header token appears near the start
// of decoded text, guarding against a wrong-encoding false positive.
func looksLikeExport(text string) bool {
	const window = 1000

	head := text
	if len(head) > window {
		head = head[:window]
	}

	return strings.Contains(head, "**BEGIN")
}
