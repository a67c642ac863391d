package png

// ChunkType is the 4-byte tag of a chunk.
// Bit 5 of each byte carries a property flag.
type ChunkType [4]byte

const flagBit byte = 0x20

// Well-known chunk types
var (
	IHDR = ChunkType{'I', 'H', 'D', 'R'} // Image header
	PLTE = ChunkType{'P', 'L', 'T', 'E'} // Palette
	IDAT = ChunkType{'I', 'D', 'A', 'T'} // Image data
	IEND = ChunkType{'I', 'E', 'N', 'D'} // Image trailer
	SRGB = ChunkType{'s', 'R', 'G', 'B'} // Standard RGB colour space
	TEXT = ChunkType{'t', 'E', 'X', 't'} // Textual data
)

// NewChunkType creates a chunk type from raw bytes.
// The bytes must be ASCII letters; the reserved bit is not checked here.
func NewChunkType(b [4]byte) (ChunkType, error) {
	t := ChunkType(b)
	if !t.IsValidASCII() {
		return ChunkType{}, &ChunkTypeError{Kind: NotASCIILetters, Tag: string(b[:])}
	}
	return t, nil
}

// ParseChunkType creates a chunk type from its textual form.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &ChunkTypeError{Kind: BadLength, Tag: s}
	}
	return NewChunkType([4]byte{s[0], s[1], s[2], s[3]})
}

// Bytes returns the raw tag.
func (t ChunkType) Bytes() [4]byte {
	return t
}

// IsCritical reports whether the ancillary bit is clear.
func (t ChunkType) IsCritical() bool {
	return t[0]&flagBit == 0
}

// IsPublic reports whether the private bit is clear.
func (t ChunkType) IsPublic() bool {
	return t[1]&flagBit == 0
}

// IsReservedBitValid reports whether the reserved bit is clear.
func (t ChunkType) IsReservedBitValid() bool {
	return t[2]&flagBit == 0
}

// IsSafeToCopy reports whether the safe-to-copy bit is set.
func (t ChunkType) IsSafeToCopy() bool {
	return t[3]&flagBit != 0
}

// IsValidASCII reports whether every byte is in A-Z or a-z.
func (t ChunkType) IsValidASCII() bool {
	for _, b := range t {
		if !('A' <= b && b <= 'Z') && !('a' <= b && b <= 'z') {
			return false
		}
	}
	return true
}

// IsValid reports whether the type is made of letters and has a clear reserved bit.
// The critical, public and safe-to-copy flags don't affect validity.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid() && t.IsValidASCII()
}

// String makes ChunkType satisfy the Stringer interface.
func (t ChunkType) String() string {
	return string(t[:])
}
