// Package commands implements the pngme commands on top of package png.
package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/go-git/go-billy/v5"

	"github.com/ysh86/pngme/conf"
	"github.com/ysh86/pngme/logging"
	"github.com/ysh86/pngme/oops"
	"github.com/ysh86/pngme/png"
)

// Runner runs commands against files of FS.
type Runner struct {
	FS    billy.Basic
	Out   io.Writer
	Conf  *conf.Conf
	Color bool
}

func (r *Runner) load(path string, allowMissing bool) (*png.File, error) {
	file, err := r.FS.Open(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			logging.Debug().Str("file", path).Msg("file does not exist, starting a new one")
			return png.NewFile(), nil
		}
		return nil, oops.New(err, "opening %s", path)
	}
	defer file.Close()

	f, err := png.Read(file)
	if err != nil {
		return nil, oops.New(err, "parsing %s", path)
	}

	logging.Debug().Str("file", path).Int("chunks", len(f.Chunks())).Msg("loaded file")
	return f, nil
}

func (r *Runner) save(path string, f *png.File) error {
	file, err := r.FS.Create(path)
	if err != nil {
		return oops.New(err, "creating %s", path)
	}

	n, err := f.WriteTo(file)
	if err != nil {
		file.Close()
		return oops.New(err, "writing %s", path)
	}

	err = file.Close()
	if err != nil {
		return oops.New(err, "writing %s", path)
	}

	logging.Debug().Str("file", path).Str("size", bytefmt.ByteSize(uint64(n))).Msg("saved file")
	return nil
}

func parseChunkType(tag string) (png.ChunkType, error) {
	ct, err := png.ParseChunkType(tag)
	if err != nil {
		return png.ChunkType{}, oops.New(err, "chunk type")
	}
	return ct, nil
}

// Encode embeds message into a new chunk of type tag.
// The result is written to output, or back to path when output is empty.
// A missing file at path is treated as an empty PNG.
func (r *Runner) Encode(path string, tag string, message string, output string) error {
	ct, err := parseChunkType(tag)
	if err != nil {
		return err
	}

	if ct == png.IEND {
		return oops.New(nil, "chunk type %s marks the end of the image and cannot hold a message", tag)
	}

	if uint64(len(message)) > uint64(r.Conf.MaxPayloadSize) {
		return oops.New(nil, "message is %s, larger than the maximum of %s",
			bytefmt.ByteSize(uint64(len(message))), r.Conf.MaxPayloadSize)
	}

	if !ct.IsValid() {
		logging.Warn().Str("type", tag).Msg("reserved bit of the chunk type is set")
	}
	if ct.IsCritical() {
		logging.Warn().Str("type", tag).Msg("critical chunk type, decoders may reject the file")
	}

	f, err := r.load(path, true)
	if err != nil {
		return err
	}

	c := png.NewChunk(ct, []byte(message))
	f.Embed(c)

	if output == "" {
		output = path
	}
	err = r.save(output, f)
	if err != nil {
		return err
	}

	logging.Info().
		Str("file", output).
		Str("type", tag).
		Uint32("length", c.Length()).
		Str("crc", fmt.Sprintf("%08x", c.CRC())).
		Msg("encoded message")
	return nil
}

// Decode prints the payload of the first chunk of type tag.
// Payloads that are not text are printed as a hex dump.
func (r *Runner) Decode(path string, tag string) error {
	_, err := parseChunkType(tag)
	if err != nil {
		return err
	}

	f, err := r.load(path, false)
	if err != nil {
		return err
	}

	c := f.ChunkByType(tag)
	if c == nil {
		return oops.New(&png.FileError{Kind: png.ChunkTypeNotFound, Tag: tag}, "decoding %s", path)
	}

	r.writePayload(c)
	return nil
}

func (r *Runner) writePayload(c *png.Chunk) {
	s, err := c.DataAsString()
	if err != nil {
		logging.Warn().Err(err).Str("type", c.Type().String()).Msg("printing hex dump instead")
		fmt.Fprint(r.Out, hex.Dump(c.Data()))
		return
	}
	fmt.Fprintln(r.Out, s)
}

// Remove deletes the first chunk of type tag and prints its payload.
func (r *Runner) Remove(path string, tag string) error {
	_, err := parseChunkType(tag)
	if err != nil {
		return err
	}

	f, err := r.load(path, false)
	if err != nil {
		return err
	}

	c, err := f.RemoveChunk(tag)
	if err != nil {
		return oops.New(err, "removing from %s", path)
	}

	err = r.save(path, f)
	if err != nil {
		return err
	}

	logging.Info().Str("file", path).Str("type", tag).Msg("removed chunk")
	r.writePayload(c)
	return nil
}

// Print lists the chunks of a file.
func (r *Runner) Print(path string) error {
	f, err := r.load(path, false)
	if err != nil {
		return err
	}

	err = r.writeListing(path, f)
	if err != nil {
		return oops.New(err, "printing %s", path)
	}
	return nil
}
