package sink

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// printDPI is the physical resolution stamped into PNG artifacts.
const printDPI = 300

// pngSignature is the fixed 8-byte PNG file header.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ihdrLength is the total size of signature plus IHDR chunk
// (8 sig + 4 length + 4 type + 13 data + 4 crc); the pHYs chunk must
// appear after IHDR and before IDAT.
const ihdrLength = 8 + 4 + 4 + 13 + 4

// stampDPI splices a pHYs chunk declaring the given dots-per-inch into
// an encoded PNG stream. The standard encoder never writes one itself.
func stampDPI(png []byte, dpi int) ([]byte, error) {
	if len(png) < ihdrLength || !bytes.Equal(png[:8], pngSignature) {
		return nil, fmt.Errorf("not a png stream")
	}
	if !bytes.Equal(png[12:16], []byte("IHDR")) {
		return nil, fmt.Errorf("png stream does not start with IHDR")
	}

	// pHYs data: pixels per unit (x, y) and unit specifier 1 (meter).
	pixelsPerMeter := uint32(float64(dpi)/0.0254 + 0.5)
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], pixelsPerMeter)
	binary.BigEndian.PutUint32(data[4:8], pixelsPerMeter)
	data[8] = 1

	chunk := make([]byte, 0, 4+4+9+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, []byte("pHYs")...)
	chunk = append(chunk, data...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(png)+len(chunk))
	out = append(out, png[:ihdrLength]...)
	out = append(out, chunk...)
	out = append(out, png[ihdrLength:]...)
	return out, nil
}
