// Package debug holds environment-gated trace switches.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Events bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("CYAML_DEBUG_TOKENS")
	d.Events = boolEnv("CYAML_DEBUG_EVENTS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}

func Events() bool {
	return d.Events
}
