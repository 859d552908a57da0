// Package render turns a module dependency map into a styled Graphviz graph
// and drives the external dot executable to produce output.
//
// # Overview
//
// The input is the result of an external dependency scan: a map from module
// identifiers to the identifiers they depend on, plus a list of dependency
// cycles. This package builds a deduplicated node/edge description from that
// map, colors each node by its category prefix (components/, pages/, ...),
// and pipes the resulting DOT text to Graphviz.
//
// # Entry points
//
//	svg, err := render.SVG(ctx, modules, circular, cfg)
//	path, err := render.File(ctx, modules, circular, "graph.png", cfg)
//	dot, err := render.DOT(ctx, modules, circular, cfg)
//
// All three check that the dot executable is reachable before any graph is
// built, and fail fast with a typed error ([UnavailableError], [RenderError],
// [WriteError]) on the first problem. Every call builds a fresh graph, so
// concurrent calls are safe.
//
// Graphviz must be installed separately (apt install graphviz, brew install
// graphviz). A custom install location can be given via [Config.GraphVizPath].
package render
