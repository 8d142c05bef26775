package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldpath"
	"github.com/signadot/fieldpath/token"
)

func parsePaths(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	exprs, err := pathArgs(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	nErrs := 0
	for _, expr := range exprs {
		fp, err := fieldpath.Parse(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q: %v\n", expr, err)
			nErrs++
			continue
		}
		fmt.Fprintf(cc.Out, "%s\n", renderPath(fp, cfg.Escape, colors))
		if cfg.Segments {
			printSegments(cc, fp, colors)
		}
	}
	if nErrs > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printSegments(cc *cli.Context, fp fieldpath.FieldPath, colors *pathColors) {
	i := 0
	for s := range fp.Segments() {
		kind, text := "name", ""
		switch {
		case s.Indexed():
			kind = "index"
			text = colors.Index(s.SegmentString())
		case s.Quoted:
			kind = "quoted"
			text = colors.Quoted(s.SegmentString())
		default:
			text = colors.Name(s.SegmentString())
		}
		fmt.Fprintf(cc.Out, "\t%d\t%s\t%s\n", i, kind, text)
		i++
	}
}

// renderPath is PathString with the palette applied per segment.
func renderPath(fp fieldpath.FieldPath, escape bool, colors *pathColors) string {
	b := &strings.Builder{}
	first := true
	for s := range fp.Segments() {
		switch {
		case s.Indexed():
			b.WriteString(colors.Sep("["))
			b.WriteString(colors.Index(fmt.Sprintf("%d", *s.Index)))
			b.WriteString(colors.Sep("]"))
		default:
			if !first {
				b.WriteString(colors.Sep("."))
			}
			name := *s.Name
			if s.Quoted || (escape && token.NeedsQuote(name)) {
				b.WriteString(colors.Quoted(token.Quote(name)))
			} else {
				b.WriteString(colors.Name(name))
			}
		}
		first = false
	}
	return b.String()
}
