// Command lspng lists the chunks of PNG files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ysh86/pngme/logging"
	"github.com/ysh86/pngme/png"
)

var cli struct {
	Files []string `arg:"" help:"src files"`
}

func dumpChunk(w io.Writer, c *png.Chunk) {
	fmt.Fprintf(w, "chunk '%v' (%d bytes)", c.Type(), c.Length())
	if desc := c.Describe(); desc != "" {
		fmt.Fprintf(w, ": %s", desc)
	}
	fmt.Fprintf(w, "\n")
}

func dumpFile(w io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	f, err := png.Read(file)
	if err != nil {
		return err
	}

	for _, c := range f.Chunks() {
		dumpChunk(w, c)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lspng"),
		kong.Description("List the chunks of PNG files."),
		kong.UsageOnError())

	failed := false
	for _, path := range cli.Files {
		if len(cli.Files) > 1 {
			fmt.Printf("%s:\n", path)
		}
		err := dumpFile(os.Stdout, path)
		if err != nil {
			logging.Error().Err(err).Str("file", path).Msg("invalid PNG file")
			failed = true
		}
	}

	if failed {
		ctx.Exit(1)
	}
}
