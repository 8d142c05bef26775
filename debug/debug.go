// Package debug provides env-gated debug switches for fieldpath.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Cache bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FIELDPATH_DEBUG_PARSE")
	d.Cache = boolEnv("FIELDPATH_DEBUG_CACHE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Cache() bool {
	return d.Cache
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
