package png

import (
	"encoding/binary"
	"hash/crc32"
	"strings"
	"unicode/utf8"
)

// chunk = length, type, data, CRC
const chunkOverhead = 4 + 4 + 4

// Chunk is a chunk of PNG.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk creates a chunk and computes its CRC.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	c := &Chunk{
		chunkType: chunkType,
		data:      append([]byte(nil), data...),
	}
	c.crc = checksum(chunkType, c.data)
	return c
}

func checksum(chunkType ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(chunkType[:])
	h.Write(data)
	return h.Sum32()
}

// ChunkFromBytes decodes the chunk at the start of b.
// Bytes after the chunk are ignored.
func ChunkFromBytes(b []byte) (*Chunk, error) {
	if len(b) < chunkOverhead {
		return nil, &ChunkError{Kind: Truncated, Need: chunkOverhead, Have: len(b)}
	}

	length := binary.BigEndian.Uint32(b[0:4])
	if uint64(length) > uint64(len(b)-chunkOverhead) {
		return nil, &ChunkError{Kind: Truncated, Need: chunkOverhead + int(length), Have: len(b)}
	}

	chunkType, err := NewChunkType([4]byte{b[4], b[5], b[6], b[7]})
	if err != nil {
		return nil, &ChunkError{Kind: InvalidType, Err: err}
	}

	end := 8 + int(length)
	c := NewChunk(chunkType, b[8:end])

	stored := binary.BigEndian.Uint32(b[end : end+4])
	if stored != c.crc {
		return nil, &ChunkError{Kind: CRCMismatch, Stored: stored, Computed: c.crc}
	}

	return c, nil
}

// Length returns the payload length.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns the chunk type.
func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns a copy of the payload.
func (c *Chunk) Data() []byte {
	return append([]byte(nil), c.data...)
}

// CRC returns the CRC-32 over the type and the payload.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString returns the payload as text.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", &ChunkError{Kind: PayloadNotUTF8}
	}
	return string(c.data), nil
}

func (c *Chunk) marshalSize() int {
	return chunkOverhead + len(c.data)
}

// Bytes encodes the chunk.
func (c *Chunk) Bytes() []byte {
	buf := make([]byte, c.marshalSize())
	c.marshalTo(buf)
	return buf
}

func (c *Chunk) marshalTo(buf []byte) int {
	binary.BigEndian.PutUint32(buf[0:4], c.Length())
	copy(buf[4:8], c.chunkType[:])
	n := 8 + copy(buf[8:], c.data)
	binary.BigEndian.PutUint32(buf[n:n+4], c.crc)
	return n + 4
}

// String makes Chunk satisfy the Stringer interface.
// Invalid UTF-8 sequences are replaced.
func (c *Chunk) String() string {
	return strings.ToValidUTF8(string(c.data), string(utf8.RuneError))
}
