package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldpath"
	"github.com/signadot/fieldpath/token"
)

func docPaths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return pathsReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := pathsFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func pathsFile(cfg *PathsConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := pathsReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func pathsReader(cfg *PathsConfig, w io.Writer, r io.Reader) error {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	for i := 0; ; i++ {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := walkDoc(cfg, w, fieldpath.FieldPath{}, false, doc); err != nil {
			return err
		}
	}
}

// walkDoc emits one line per leaf of the document, addressed by its field
// path. Mapping keys become name segments and sequence offsets become
// index segments; everything else is a leaf.
func walkDoc(cfg *PathsConfig, w io.Writer, at fieldpath.FieldPath, rooted bool, v any) error {
	switch t := v.(type) {
	case yaml.MapSlice:
		for _, item := range t {
			child := childName(at, rooted, fmt.Sprintf("%v", item.Key))
			if err := walkDoc(cfg, w, child, true, item.Value); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, elem := range t {
			child := at.CloneWithIndex(i)
			if !rooted {
				child = fieldpath.Empty.CloneWithIndex(i)
			}
			if err := walkDoc(cfg, w, child, true, elem); err != nil {
				return err
			}
		}
		return nil
	default:
		text := at.PathString(cfg.Escape)
		if cfg.Values {
			_, err := fmt.Fprintf(w, "%s: %v\n", text, v)
			return err
		}
		_, err := fmt.Fprintf(w, "%s\n", text)
		return err
	}
}

// childName appends a name segment, going through the parser for root
// level keys so the resulting path has no hidden empty root.
func childName(at fieldpath.FieldPath, rooted bool, name string) fieldpath.FieldPath {
	if rooted {
		return at.CloneWithName(name)
	}
	if token.NeedsQuote(name) {
		return fieldpath.MustParse(token.Quote(name))
	}
	return fieldpath.MustParse(name)
}
