package png

import (
	"fmt"
)

// ChunkTypeErrorKind is the reason a chunk type could not be built.
type ChunkTypeErrorKind int

// Chunk type error kinds
const (
	NotASCIILetters ChunkTypeErrorKind = iota + 1
	BadLength
)

func (k ChunkTypeErrorKind) String() string {
	switch k {
	case NotASCIILetters:
		return "not ASCII letters"
	case BadLength:
		return "not 4 bytes long"
	}
	return fmt.Sprintf("ChunkTypeErrorKind(%d)", int(k))
}

// ChunkTypeError is returned by NewChunkType and ParseChunkType.
type ChunkTypeError struct {
	Kind ChunkTypeErrorKind
	Tag  string
}

func (e *ChunkTypeError) Error() string {
	return fmt.Sprintf("invalid chunk type %q: %s", e.Tag, e.Kind)
}

// ChunkErrorKind is the reason a chunk could not be decoded.
type ChunkErrorKind int

// Chunk error kinds
const (
	Truncated ChunkErrorKind = iota + 1
	InvalidType
	CRCMismatch
	PayloadNotUTF8
)

func (k ChunkErrorKind) String() string {
	switch k {
	case Truncated:
		return "truncated chunk"
	case InvalidType:
		return "invalid chunk type"
	case CRCMismatch:
		return "CRC mismatch"
	case PayloadNotUTF8:
		return "payload is not valid UTF-8"
	}
	return fmt.Sprintf("ChunkErrorKind(%d)", int(k))
}

// ChunkError is returned by ChunkFromBytes and Chunk.DataAsString.
type ChunkError struct {
	Kind ChunkErrorKind

	// Truncated
	Need, Have int

	// CRCMismatch
	Stored, Computed uint32

	Err error
}

func (e *ChunkError) Error() string {
	switch e.Kind {
	case Truncated:
		return fmt.Sprintf("%s: need %d bytes, have %d", e.Kind, e.Need, e.Have)
	case CRCMismatch:
		return fmt.Sprintf("%s: stored %08x, computed %08x", e.Kind, e.Stored, e.Computed)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// FileErrorKind is the reason a file operation failed.
type FileErrorKind int

// File error kinds
const (
	BadSignature FileErrorKind = iota + 1
	MalformedChunk
	ChunkTypeNotFound
)

func (k FileErrorKind) String() string {
	switch k {
	case BadSignature:
		return "invalid signature"
	case MalformedChunk:
		return "malformed chunk"
	case ChunkTypeNotFound:
		return "chunk type not found"
	}
	return fmt.Sprintf("FileErrorKind(%d)", int(k))
}

// FileError is returned by Parse and File methods.
type FileError struct {
	Kind FileErrorKind

	// MalformedChunk: file offset of the chunk
	Offset int
	// ChunkTypeNotFound
	Tag string

	Err error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case MalformedChunk:
		return fmt.Sprintf("%s at offset 0x%08x: %v", e.Kind, e.Offset, e.Err)
	case ChunkTypeNotFound:
		return fmt.Sprintf("%s: %q", e.Kind, e.Tag)
	}
	return e.Kind.String()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
