package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "fieldpath").
		WithSynopsis("fieldpath [opts] command [opts]").
		WithDescription("fieldpath is a tool for working with dotted field path expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fpMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			SortCommand(cfg),
			RelCommand(cfg),
			PathsCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p", "pa").
		WithSynopsis("parse [opts] [paths]").
		WithDescription("parse path expressions and print their canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parsePaths(cfg, cc, args)
		})
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s", "so").
		WithSynopsis("sort [opts] [paths]").
		WithDescription("sort path expressions in path order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortPaths(cfg, cc, args)
		})
}

func RelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rel, "rel").
		WithAliases("r").
		WithSynopsis("rel [opts] <ancestor> [paths]").
		WithDescription("print paths relative to an ancestor path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return relPaths(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("ls").
		WithSynopsis("paths [opts] [files]").
		WithDescription("list the leaf field paths of yaml or json documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docPaths(cfg, cc, args)
		})
}
