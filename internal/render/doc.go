// Package render holds read-only output adapters for a built cell or
// diagram: gnuplot polylines, POV-Ray fragments, a printf-style custom
// formatter, and an HTML report built with go-echarts. Every adapter
// here only reads a *cell2d.Cell's public measurement and
// boundary-walk surface; none of them touch cell internals.
package render
