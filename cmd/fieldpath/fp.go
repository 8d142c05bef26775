package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func fpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// pathArgs returns the path expressions to operate on: the arguments if
// any were given, otherwise one expression per line of input.
func pathArgs(cc *cli.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var res []string
	sc := bufio.NewScanner(cc.In)
	for sc.Scan() {
		res = append(res, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading paths: %w", err)
	}
	return res, nil
}
