package scanner

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newTextReader wraps r so that a leading byte order mark selects the
// decoding: a UTF-8 BOM is stripped and UTF-16 (LE or BE) is transcoded to
// UTF-8. Input without a BOM passes through untouched and is validated
// line by line.
func newTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
