package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Escape bool `cli:"name=e aliases=escape desc='render paths in re-parseable form'"`
	Color  bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colors selects the output palette: forced on with -color, otherwise on
// only when writing to a terminal.
func (cfg *MainConfig) colors(w io.Writer) *pathColors {
	if cfg.Color {
		return newPathColors()
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return noColors()
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return newPathColors()
	}
	return noColors()
}

type pathColors struct {
	Name   func(string, ...any) string
	Quoted func(string, ...any) string
	Index  func(string, ...any) string
	Sep    func(string, ...any) string
}

func newPathColors() *pathColors {
	return &pathColors{
		Name:   color.New(color.FgCyan).SprintfFunc(),
		Quoted: color.New(color.FgGreen).SprintfFunc(),
		Index:  color.RGB(196, 168, 128).SprintfFunc(),
		Sep:    color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func plain(v string, _ ...any) string { return v }

func noColors() *pathColors {
	return &pathColors{Name: plain, Quoted: plain, Index: plain, Sep: plain}
}

type ParseConfig struct {
	*MainConfig

	Segments bool `cli:"name=s aliases=segments desc='print a per-segment breakdown'"`

	Parse *cli.Command
}

type SortConfig struct {
	*MainConfig

	Unique  bool `cli:"name=u desc='drop equal duplicates'"`
	Reverse bool `cli:"name=r desc='reverse the order'"`

	Sort *cli.Command
}

type RelConfig struct {
	*MainConfig

	Skip bool `cli:"name=skip desc='skip paths not under the ancestor'"`

	Rel *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Values bool `cli:"name=v aliases=values desc='print leaf values with their paths'"`

	Paths *cli.Command
}
