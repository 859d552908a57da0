package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lhaugan/modviz/pkg/cache"
	"github.com/lhaugan/modviz/pkg/depgraph"
	"github.com/lhaugan/modviz/pkg/render"
)

// artifactTTL bounds how long rendered artifacts stay in the cache.
const artifactTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string // output file path; extension selects the format
	configPath   string // TOML config file (default: .modviz.toml if present)
	rankdir      string // graph direction override
	layout       string // layout engine override
	graphvizPath string // directory containing the Graphviz binaries
	printDOT     bool   // print the DOT description to stdout instead of writing a file
	noCache      bool   // disable the artifact cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [deps.json]",
		Short: "Render a dependency scan with Graphviz",
		Long: `Render a dependency scan with Graphviz.

The input is a JSON file produced by a dependency scanner: a map from module
identifiers to the modules they depend on, plus any dependency cycles. Nodes
are colored by their category prefix (assets/, components/, hocs/, hooks/,
pages/, root/, utils/, init/); colors can be customized in the config file.

The output format follows the --output extension (graph.svg, graph.png, ...),
defaulting to <input>.svg. With --dot the textual graph description is printed
to stdout instead.

Rendered artifacts are cached locally for faster repeated runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (extension selects the format)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file (default: .modviz.toml if present)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "graph direction: LR (default), RL, TB, BT")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "Graphviz layout engine: dot (default), neato, fdp, ...")
	cmd.Flags().StringVar(&opts.graphvizPath, "graphviz-path", "", "directory containing the Graphviz binaries")
	cmd.Flags().BoolVar(&opts.printDOT, "dot", false, "print the DOT graph description to stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender loads the scan and configuration, then renders to stdout (--dot)
// or to the output file.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	deps, err := depgraph.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded scan: %d modules, %d cycles", len(deps.Modules), len(deps.Circular))

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.rankdir != "" {
		cfg.RankDir = opts.rankdir
	}
	if opts.layout != "" {
		cfg.Layout = opts.layout
	}
	if opts.graphvizPath != "" {
		cfg.GraphVizPath = opts.graphvizPath
	}
	cfg.Logger = logger

	if opts.printDOT {
		text, err := render.DOT(ctx, deps.Modules, deps.Circular, cfg)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + render.FormatSVG
	}

	store := newCache(opts.noCache)
	defer store.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", output))
	spinner.Start()

	abs, cached, err := renderToFile(ctx, deps, cfg, output, store)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if cached {
		printSuccess("Rendered %s (cached)", filepath.Base(abs))
	} else {
		printSuccess("Rendered %s", filepath.Base(abs))
	}
	printFile(abs)
	return nil
}

// renderToFile writes the rendered artifact to output, serving it from the
// cache when the same scan, configuration, and format were rendered before.
func renderToFile(ctx context.Context, deps depgraph.Result, cfg render.Config, output string, store cache.Cache) (string, bool, error) {
	// The logger carries no render semantics, keep it out of the key.
	keyCfg := cfg
	keyCfg.Logger = nil
	key := cache.Key("artifact", deps, keyCfg, render.FormatForPath(output))

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return "", false, err
		}
		abs, err := filepath.Abs(output)
		if err != nil {
			return "", false, err
		}
		return abs, true, nil
	}

	abs, err := render.File(ctx, deps.Modules, deps.Circular, output, cfg)
	if err != nil {
		return "", false, err
	}

	if data, err := os.ReadFile(abs); err == nil {
		_ = store.Set(ctx, key, data, artifactTTL)
	}
	return abs, false, nil
}
