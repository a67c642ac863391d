package commands

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/ysh86/pngme/conf"
	"github.com/ysh86/pngme/oops"
	"github.com/ysh86/pngme/png"
)

const secret = "This is a secret message!"

func testImage() []byte {
	return png.NewFile(
		png.NewChunk(png.IHDR, []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}),
		png.NewChunk(png.IDAT, []byte{0x78, 0x9c, 0x63, 0x60, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01}),
		png.NewChunk(png.IEND, nil),
	).Bytes()
}

func newRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "dice.png", testImage(), 0o644))

	var out bytes.Buffer
	return &Runner{
		FS:   fs,
		Out:  &out,
		Conf: conf.Default(),
	}, &out
}

func readFile(t *testing.T, r *Runner, path string) []byte {
	buf, err := util.ReadFile(r.FS, path)
	require.NoError(t, err)
	return buf
}

func TestEncodeDecode(t *testing.T) {
	r, out := newRunner(t)

	require.NoError(t, r.Encode("dice.png", "ruSt", secret, ""))

	f, err := png.Parse(readFile(t, r, "dice.png"))
	require.NoError(t, err)
	chunks := f.Chunks()
	require.Len(t, chunks, 4)
	require.Equal(t, "ruSt", chunks[2].Type().String())
	require.Equal(t, png.IEND, chunks[3].Type())

	require.NoError(t, r.Decode("dice.png", "ruSt"))
	require.Equal(t, secret+"\n", out.String())
}

func TestEncodeNewFile(t *testing.T) {
	r, _ := newRunner(t)

	require.NoError(t, r.Encode("new.png", "ruSt", secret, ""))

	ct, err := png.ParseChunkType("ruSt")
	require.NoError(t, err)
	expected := png.NewFile(png.NewChunk(ct, []byte(secret))).Bytes()
	require.Equal(t, expected, readFile(t, r, "new.png"))
}

func TestEncodeOutput(t *testing.T) {
	r, out := newRunner(t)

	require.NoError(t, r.Encode("dice.png", "ruSt", secret, "out.png"))
	require.Equal(t, testImage(), readFile(t, r, "dice.png"))

	require.NoError(t, r.Decode("out.png", "ruSt"))
	require.Equal(t, secret+"\n", out.String())
}

func TestEncodeErrors(t *testing.T) {
	t.Run("invalid chunk type", func(t *testing.T) {
		r, _ := newRunner(t)

		err := r.Encode("dice.png", "ru1t", secret, "")
		var cterr *png.ChunkTypeError
		require.True(t, errors.As(err, &cterr))
		require.Equal(t, png.NotASCIILetters, cterr.Kind)

		var oerr *oops.Error
		require.True(t, errors.As(err, &oerr))
	})

	t.Run("bad chunk type length", func(t *testing.T) {
		r, _ := newRunner(t)

		err := r.Encode("dice.png", "rust!", secret, "")
		var cterr *png.ChunkTypeError
		require.True(t, errors.As(err, &cterr))
		require.Equal(t, png.BadLength, cterr.Kind)
	})

	t.Run("payload too large", func(t *testing.T) {
		r, _ := newRunner(t)
		r.Conf.MaxPayloadSize = 8

		err := r.Encode("dice.png", "ruSt", secret, "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "larger than the maximum of 8B")
		require.Equal(t, testImage(), readFile(t, r, "dice.png"))
	})

	t.Run("end of image", func(t *testing.T) {
		r, _ := newRunner(t)

		err := r.Encode("dice.png", "IEND", secret, "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "end of the image")
		require.Equal(t, testImage(), readFile(t, r, "dice.png"))

		require.NoError(t, r.Encode("dice.png", "ruSt", secret, ""))
		f, err := png.Parse(readFile(t, r, "dice.png"))
		require.NoError(t, err)
		chunks := f.Chunks()
		require.Equal(t, png.IEND, chunks[len(chunks)-1].Type())
	})

	t.Run("corrupted file", func(t *testing.T) {
		r, _ := newRunner(t)
		buf := testImage()
		buf[len(buf)-1] ^= 0xff
		require.NoError(t, util.WriteFile(r.FS, "bad.png", buf, 0o644))

		err := r.Encode("bad.png", "ruSt", secret, "")
		var cerr *png.ChunkError
		require.True(t, errors.As(err, &cerr))
		require.Equal(t, png.CRCMismatch, cerr.Kind)
		require.Equal(t, buf, readFile(t, r, "bad.png"))
	})
}

func TestDecodeErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, _ := newRunner(t)

		err := r.Decode("dice.png", "ruSt")
		var ferr *png.FileError
		require.True(t, errors.As(err, &ferr))
		require.Equal(t, png.ChunkTypeNotFound, ferr.Kind)
	})

	t.Run("missing file", func(t *testing.T) {
		r, _ := newRunner(t)

		err := r.Decode("nope.png", "ruSt")
		require.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("bad signature", func(t *testing.T) {
		r, _ := newRunner(t)
		require.NoError(t, util.WriteFile(r.FS, "text.txt", []byte("hello world"), 0o644))

		err := r.Decode("text.txt", "ruSt")
		var ferr *png.FileError
		require.True(t, errors.As(err, &ferr))
		require.Equal(t, png.BadSignature, ferr.Kind)
	})
}

func TestDecodeBinary(t *testing.T) {
	r, out := newRunner(t)

	require.NoError(t, r.Decode("dice.png", "IDAT"))
	require.Contains(t, out.String(), "78 9c 63 60")
}

func TestRemove(t *testing.T) {
	r, out := newRunner(t)

	require.NoError(t, r.Encode("dice.png", "ruSt", secret, ""))
	require.NoError(t, r.Remove("dice.png", "ruSt"))
	require.Equal(t, secret+"\n", out.String())
	require.Equal(t, testImage(), readFile(t, r, "dice.png"))

	err := r.Decode("dice.png", "ruSt")
	var ferr *png.FileError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, png.ChunkTypeNotFound, ferr.Kind)
}

func TestRemoveNotFound(t *testing.T) {
	r, _ := newRunner(t)

	err := r.Remove("dice.png", "ruSt")
	var ferr *png.FileError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, png.ChunkTypeNotFound, ferr.Kind)
	require.Equal(t, testImage(), readFile(t, r, "dice.png"))
}

func TestPrint(t *testing.T) {
	r, out := newRunner(t)
	require.NoError(t, r.Encode("dice.png", "ruSt", secret, ""))

	require.NoError(t, r.Print("dice.png"))

	s := out.String()
	require.Contains(t, s, "dice.png: 4 chunks, ")
	require.Contains(t, s, "   0  IHDR      13B  critical  public  unsafe  ")
	require.Contains(t, s, "Width = 1, Height = 1, Bit depth = 8")
	require.Contains(t, s, "   2  ruSt      25B  ancillary private safe    ")
	require.Contains(t, s, "   3  IEND       0B  critical  public  unsafe  ae426082\n")
	require.NotContains(t, s, "\x1b[")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintWriteError(t *testing.T) {
	r, _ := newRunner(t)
	r.Out = failingWriter{}

	err := r.Print("dice.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")

	var oerr *oops.Error
	require.True(t, errors.As(err, &oerr))
}
