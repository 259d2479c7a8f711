package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/bytearena/ventscan/common/overlap"
)

var show = spew.ConfigState{
	Indent:                  "    ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// writeReport dumps the overlapping points, then their count on its own line.
func writeReport(w io.Writer, counter *overlap.Counter, countOnly bool) error {
	if !countOnly {
		show.Fdump(w, counter.Overlapping())
	}

	_, err := fmt.Fprintln(w, counter.Count())

	return err
}
