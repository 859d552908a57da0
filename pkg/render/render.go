package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Output formats understood by the entry points. Any other Graphviz -T value
// also works when requested through a file extension.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// SVG renders the dependency map as SVG markup.
func SVG(ctx context.Context, modules map[string][]string, circular [][]string, cfg Config) ([]byte, error) {
	return Render(ctx, modules, circular, FormatSVG, cfg)
}

// DOT renders the dependency map as canonical DOT text, as produced by
// Graphviz itself rather than this package's serializer.
func DOT(ctx context.Context, modules map[string][]string, circular [][]string, cfg Config) (string, error) {
	out, err := Render(ctx, modules, circular, FormatDOT, cfg)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// File renders the dependency map and writes the result to path, returning
// the absolute path. The output format comes from the path's extension,
// defaulting to PNG when there is none.
func File(ctx context.Context, modules map[string][]string, circular [][]string, path string, cfg Config) (string, error) {
	out, err := Render(ctx, modules, circular, FormatForPath(path), cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return abs, nil
}

// Render is the generic pipeline behind the three entry points: availability
// check, option assembly, graph construction, then one renderer invocation.
// The first failure aborts the call; no partial results are returned.
func Render(ctx context.Context, modules map[string][]string, circular [][]string, format string, cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	if err := checkRenderer(ctx, cfg); err != nil {
		return nil, err
	}

	opts := buildOptions(cfg)
	g := buildGraph(modules, circular, cfg, opts)
	cfg.logger().Debugf("Built graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	return invokeRenderer(ctx, g.DOT(), format, cfg)
}

// FormatForPath maps an output path to a Graphviz format via its extension.
func FormatForPath(path string) string {
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		return ext
	}
	return FormatPNG
}
