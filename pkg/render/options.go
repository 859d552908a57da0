package render

// Options holds the three Graphviz attribute groups for one render call:
// graph-level, edge defaults, and node defaults.
type Options struct {
	Graph map[string]string
	Edge  map[string]string
	Node  map[string]string
}

// buildOptions derives the attribute groups from the configuration and then
// overlays the user's raw passthrough options, so user values win on
// conflict. The merge is shallow and no values are validated; invalid
// attributes are Graphviz's concern.
func buildOptions(cfg Config) Options {
	opts := Options{
		Graph: map[string]string{
			"overlap": "false",
			"pad":     "0.3",
			"rankdir": cfg.RankDir,
			"layout":  cfg.Layout,
			"bgcolor": cfg.BackgroundColor,
		},
		Edge: map[string]string{
			"color": cfg.EdgeColor,
		},
		Node: map[string]string{
			"fontname":  cfg.FontName,
			"fontsize":  cfg.FontSize,
			"color":     cfg.NodeColor,
			"shape":     cfg.NodeShape,
			"style":     cfg.NodeStyle,
			"height":    "0",
			"fontcolor": cfg.NodeColor,
		},
	}

	overlay(opts.Graph, cfg.GraphVizOptions.Graph)
	overlay(opts.Edge, cfg.GraphVizOptions.Edge)
	overlay(opts.Node, cfg.GraphVizOptions.Node)
	return opts
}

func overlay(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
