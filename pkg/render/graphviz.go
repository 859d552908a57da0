package render

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

// rendererBinary is the Graphviz executable driven by this package.
const rendererBinary = "dot"

// executable resolves the dot binary: a configured GraphVizPath names the
// directory holding the Graphviz binaries, otherwise $PATH decides.
func (c Config) executable() string {
	if c.GraphVizPath != "" {
		return filepath.Join(c.GraphVizPath, rendererBinary)
	}
	return rendererBinary
}

// checkRenderer runs a version query against the dot executable. It gates
// every render call and is never cached, since the environment can change
// between calls.
func checkRenderer(ctx context.Context, cfg Config) error {
	exe := cfg.executable()
	cmd := exec.CommandContext(ctx, exe, "-V")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &UnavailableError{Command: exe + " -V", Err: err}
	}
	// dot -V prints its version to stderr, e.g. "dot - graphviz version 9.0.0".
	cfg.logger().Debugf("Renderer available: %s", strings.TrimSpace(string(out)))
	return nil
}

// invokeRenderer pipes DOT text to the dot executable and returns the bytes
// it produces in the requested format. A nonzero exit surfaces as a
// RenderError carrying Graphviz's stderr; there are no retries.
func invokeRenderer(ctx context.Context, dot, format string, cfg Config) ([]byte, error) {
	exe := cfg.executable()
	cmd := exec.CommandContext(ctx, exe, "-T"+format)
	cmd.Stdin = strings.NewReader(dot)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cfg.logger().Debugf("Running %s -T%s (%d bytes of DOT)", exe, format, len(dot))
	if err := cmd.Run(); err != nil {
		return nil, &RenderError{Output: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}
