package main

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/mazepath/config"
)

// newLogger returns a logger whose lines start with a coloured [name] tag.
func newLogger(name, color string, w io.Writer) *log.Logger {
	return log.New(w, fmt.Sprintf("%s[%s]%s ", color, name, config.LogColorReset), log.LstdFlags)
}
