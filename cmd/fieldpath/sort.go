package main

import (
	"fmt"
	"slices"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldpath"
)

func sortPaths(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	exprs, err := pathArgs(cc, args)
	if err != nil {
		return err
	}
	paths := make([]fieldpath.FieldPath, 0, len(exprs))
	for _, expr := range exprs {
		fp, err := fieldpath.Parse(expr)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", expr, err)
		}
		paths = append(paths, fp)
	}
	slices.SortStableFunc(paths, func(a, b fieldpath.FieldPath) int {
		return a.Compare(b)
	})
	if cfg.Unique {
		paths = slices.CompactFunc(paths, func(a, b fieldpath.FieldPath) bool {
			return a.Equal(b)
		})
	}
	if cfg.Reverse {
		slices.Reverse(paths)
	}
	for _, p := range paths {
		fmt.Fprintf(cc.Out, "%s\n", p.PathString(cfg.Escape))
	}
	return nil
}
