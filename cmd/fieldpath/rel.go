package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldpath"
)

func relPaths(cfg *RelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rel.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rel requires an ancestor path argument", cli.ErrUsage)
	}
	anc, err := fieldpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("error parsing ancestor %q: %w", args[0], err)
	}
	exprs, err := pathArgs(cc, args[1:])
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		fp, err := fieldpath.Parse(expr)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", expr, err)
		}
		sub, ok := fp.CloneAfterAncestor(anc)
		if !ok {
			if cfg.Skip {
				continue
			}
			return fmt.Errorf("%q has no sub-path under %q", expr, args[0])
		}
		fmt.Fprintf(cc.Out, "%s\n", sub.PathString(cfg.Escape))
	}
	return nil
}
