package commands

import (
	"bytes"
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/gookit/color"

	"github.com/ysh86/pngme/png"
)

func (r *Runner) render(c color.Color, s string) string {
	if !r.Color {
		return s
	}
	return color.RenderString(c.Code(), s)
}

func flagNames(t png.ChunkType) string {
	criticality := "ancillary"
	if t.IsCritical() {
		criticality = "critical"
	}
	visibility := "private"
	if t.IsPublic() {
		visibility = "public"
	}
	copying := "unsafe"
	if t.IsSafeToCopy() {
		copying = "safe"
	}
	return fmt.Sprintf("%-9s %-7s %-6s", criticality, visibility, copying)
}

func (r *Runner) writeListing(path string, f *png.File) error {
	var buf bytes.Buffer
	chunks := f.Chunks()

	buf.WriteString(fmt.Sprintf("%s: %d chunks, %s\n",
		path, len(chunks), bytefmt.ByteSize(uint64(len(f.Bytes())))))

	for i, c := range chunks {
		typeColor := color.Green
		switch {
		case !c.Type().IsValid():
			typeColor = color.Red
		case c.Type().IsCritical():
			typeColor = color.Cyan
		}

		buf.WriteString(fmt.Sprintf("%4d  %s  %7s  %s  %08x",
			i,
			r.render(typeColor, c.Type().String()),
			bytefmt.ByteSize(uint64(c.Length())),
			flagNames(c.Type()),
			c.CRC()))

		if desc := c.Describe(); desc != "" {
			buf.WriteString("  ")
			buf.WriteString(r.render(color.Gray, desc))
		}
		buf.WriteByte('\n')
	}

	_, err := r.Out.Write(buf.Bytes())
	return err
}
