package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Describe decodes the payload of well-known chunks.
// It returns "" for other types.
func (c *Chunk) Describe() string {
	r := bytes.NewReader(c.data)

	switch c.chunkType {
	case IHDR:
		if c.Length() != 13 {
			return "corrupted!"
		}
		var hdr struct {
			Width, Height     uint32
			BitDepth          uint8
			ColorType         uint8
			CompressionMethod uint8
			FilterMethod      uint8
			InterlaceMethod   uint8
		}
		binary.Read(r, binary.BigEndian, &hdr) //nolint:errcheck
		return fmt.Sprintf("Width = %d, Height = %d, Bit depth = %d, Color type = %d, "+
			"Compression method = %d, Filter method = %d, Interlace method = %d",
			hdr.Width, hdr.Height, hdr.BitDepth, hdr.ColorType,
			hdr.CompressionMethod, hdr.FilterMethod, hdr.InterlaceMethod)

	case SRGB:
		if c.Length() != 1 {
			return "corrupted!"
		}
		return fmt.Sprintf("Rendering intent = %d", c.data[0])

	case TEXT:
		if c.Length() == 0 {
			return "corrupted!"
		}
		keyword, text, found := bytes.Cut(c.data, []byte{0})
		if !found {
			return fmt.Sprintf("%q", keyword)
		}
		return fmt.Sprintf("%s: %q", keyword, text)
	}

	return ""
}
