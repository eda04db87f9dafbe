// Package renderer formats fund state into markdown reports.
package renderer

import (
	"fmt"
	"strings"
)

// reportRenderer accumulates markdown output for the fund reports.
type reportRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *reportRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func newReportRenderer() *reportRenderer {
	return &reportRenderer{Builder: &strings.Builder{}}
}
