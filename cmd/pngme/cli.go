package main

import (
	"github.com/alecthomas/kong"

	"github.com/ysh86/pngme/commands"
)

var version = "v0.0.0"

type encodeCmd struct {
	File      string `arg:"" help:"PNG file. Created when it does not exist."`
	ChunkType string `arg:"" help:"4-letter chunk type, for example ruSt."`
	Message   string `arg:"" help:"Message to hide."`
	Output    string `short:"o" help:"Write the result here instead of overwriting FILE."`
}

func (c *encodeCmd) Run(r *commands.Runner) error {
	return r.Encode(c.File, c.ChunkType, c.Message, c.Output)
}

type decodeCmd struct {
	File      string `arg:"" help:"PNG file."`
	ChunkType string `arg:"" help:"4-letter chunk type."`
}

func (c *decodeCmd) Run(r *commands.Runner) error {
	return r.Decode(c.File, c.ChunkType)
}

type removeCmd struct {
	File      string `arg:"" help:"PNG file."`
	ChunkType string `arg:"" help:"4-letter chunk type."`
}

func (c *removeCmd) Run(r *commands.Runner) error {
	return r.Remove(c.File, c.ChunkType)
}

type printCmd struct {
	File string `arg:"" help:"PNG file."`
}

func (c *printCmd) Run(r *commands.Runner) error {
	return r.Print(c.File)
}

type cli struct {
	Config  string           `help:"Path to a config file. The default is pngme.yml if it exists." type:"path"`
	Version kong.VersionFlag `help:"Print version."`

	Encode encodeCmd `cmd:"" help:"Encode a message into a PNG file."`
	Decode decodeCmd `cmd:"" help:"Decode a message stored in a PNG file."`
	Remove removeCmd `cmd:"" help:"Remove a message from a PNG file."`
	Print  printCmd  `cmd:"" help:"Print a list of PNG chunks that can be searched for messages."`
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(c, append([]kong.Option{
		kong.Name("pngme"),
		kong.Description("Hide secret messages in PNG files."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}, options...)...)
}
