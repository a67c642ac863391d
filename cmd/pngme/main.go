// Command pngme hides messages in PNG chunks.
package main

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/gookit/color"

	"github.com/ysh86/pngme/commands"
	"github.com/ysh86/pngme/conf"
	"github.com/ysh86/pngme/logging"
)

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cnf, found, err := conf.Load(c.Config)
	if err != nil {
		logging.Error().Err(err).Msg("loading configuration")
		os.Exit(1)
	}

	logging.Init(cnf.LogLevel.Level(), cnf.Color.Enabled(logging.IsTerminal(os.Stderr)))
	if found {
		path := c.Config
		if path == "" {
			path = conf.DefaultPath
		}
		logging.Debug().Str("path", path).Msg("loaded configuration")
	}

	useColor := cnf.Color.Enabled(logging.IsTerminal(os.Stdout))
	if useColor && cnf.Color == conf.ColorAlways {
		color.ForceOpenColor()
	}

	runner := &commands.Runner{
		FS:    osfs.Default,
		Out:   os.Stdout,
		Conf:  cnf,
		Color: useColor,
	}

	err = ctx.Run(runner)
	if err != nil {
		logging.Error().Err(err).Msg(filepath.Base(os.Args[0]) + " failed")
		os.Exit(1)
	}
}
