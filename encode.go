package fractal

import (
	"bytes"
	"fmt"
	"image/png"
)

// MIMEType is the media type of encoded render output.
const MIMEType = "image/png"

// EncodePNG serializes a ColorBuffer into a PNG byte stream. Encoding
// failures are wrapped as ErrEncodingFailure; they are fatal for the
// request and never retried.
func EncodePNG(b *ColorBuffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.Image()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}
