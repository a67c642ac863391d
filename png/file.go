package png

import (
	"bytes"
	"fmt"
	"io"
)

// Signature is the first 8 bytes of every PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// File is a struct for the PNG file.
type File struct {
	chunks []*Chunk
}

// NewFile creates a new PNG file struct from chunks.
func NewFile(chunks ...*Chunk) *File {
	return &File{chunks: append([]*Chunk(nil), chunks...)}
}

// Parse parses a whole PNG file.
// Parsing stops after IEND; any remaining bytes are ignored.
func Parse(b []byte) (*File, error) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, &FileError{Kind: BadSignature}
	}

	f := &File{}
	offset := len(Signature)
	for offset < len(b) {
		c, err := ChunkFromBytes(b[offset:])
		if err != nil {
			return nil, &FileError{Kind: MalformedChunk, Offset: offset, Err: err}
		}
		f.chunks = append(f.chunks, c)
		offset += c.marshalSize()

		if c.chunkType == IEND {
			break
		}
	}

	return f, nil
}

// Read reads r until EOF and parses the result.
func Read(r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Chunks returns the chunks in file order.
func (f *File) Chunks() []*Chunk {
	return append([]*Chunk(nil), f.chunks...)
}

// AppendChunk adds a chunk at the end of the file.
func (f *File) AppendChunk(c *Chunk) {
	f.chunks = append(f.chunks, c)
}

// Embed inserts a chunk before IEND, or at the end when there is no IEND.
func (f *File) Embed(c *Chunk) {
	i := f.index(IEND.String())
	if i < 0 {
		f.AppendChunk(c)
		return
	}
	f.chunks = append(f.chunks, nil)
	copy(f.chunks[i+1:], f.chunks[i:])
	f.chunks[i] = c
}

func (f *File) index(tag string) int {
	for i, c := range f.chunks {
		if c.chunkType.String() == tag {
			return i
		}
	}
	return -1
}

// ChunkByType returns the first chunk of the given type, or nil.
func (f *File) ChunkByType(tag string) *Chunk {
	i := f.index(tag)
	if i < 0 {
		return nil
	}
	return f.chunks[i]
}

// RemoveChunk removes the first chunk of the given type and returns it.
func (f *File) RemoveChunk(tag string) (*Chunk, error) {
	i := f.index(tag)
	if i < 0 {
		return nil, &FileError{Kind: ChunkTypeNotFound, Tag: tag}
	}
	c := f.chunks[i]
	f.chunks = append(f.chunks[:i], f.chunks[i+1:]...)
	return c, nil
}

// Bytes encodes the whole file.
func (f *File) Bytes() []byte {
	size := len(Signature)
	for _, c := range f.chunks {
		size += c.marshalSize()
	}

	buf := make([]byte, size)
	n := copy(buf, Signature[:])
	for _, c := range f.chunks {
		n += c.marshalTo(buf[n:])
	}
	return buf
}

// WriteTo writes the encoded file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

// String makes File satisfy the Stringer interface.
func (f *File) String() string {
	var buf bytes.Buffer
	for _, c := range f.chunks {
		buf.WriteString(fmt.Sprintf("chunk '%v' (%d bytes)\n", c.chunkType, c.Length()))
	}
	return buf.String()
}
