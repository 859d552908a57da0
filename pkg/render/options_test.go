package render

import "testing"

func TestBuildOptionsDefaults(t *testing.T) {
	opts := buildOptions(Config{}.withDefaults())

	graphWant := map[string]string{
		"overlap": "false",
		"pad":     "0.3",
		"rankdir": "LR",
		"layout":  "dot",
		"bgcolor": defaultBackgroundColor,
	}
	for k, want := range graphWant {
		if got := opts.Graph[k]; got != want {
			t.Errorf("Graph[%q] = %q, want %q", k, got, want)
		}
	}

	if got := opts.Edge["color"]; got != defaultEdgeColor {
		t.Errorf("Edge[color] = %q, want %q", got, defaultEdgeColor)
	}

	nodeWant := map[string]string{
		"fontname":  defaultFontName,
		"fontsize":  defaultFontSize,
		"color":     defaultNodeColor,
		"shape":     defaultNodeShape,
		"style":     defaultNodeStyle,
		"height":    "0",
		"fontcolor": defaultNodeColor,
	}
	for k, want := range nodeWant {
		if got := opts.Node[k]; got != want {
			t.Errorf("Node[%q] = %q, want %q", k, got, want)
		}
	}
}

func TestBuildOptionsFromConfig(t *testing.T) {
	cfg := Config{
		RankDir:         "TB",
		Layout:          "neato",
		BackgroundColor: "#000000",
		EdgeColor:       "#ff00ff",
		NodeColor:       "#00ffff",
	}.withDefaults()
	opts := buildOptions(cfg)

	if got := opts.Graph["rankdir"]; got != "TB" {
		t.Errorf("Graph[rankdir] = %q, want TB", got)
	}
	if got := opts.Graph["layout"]; got != "neato" {
		t.Errorf("Graph[layout] = %q, want neato", got)
	}
	if got := opts.Edge["color"]; got != "#ff00ff" {
		t.Errorf("Edge[color] = %q, want #ff00ff", got)
	}
	// Font color mirrors the node color.
	if got := opts.Node["fontcolor"]; got != "#00ffff" {
		t.Errorf("Node[fontcolor] = %q, want #00ffff", got)
	}
}

func TestBuildOptionsPassthrough(t *testing.T) {
	cfg := Config{
		GraphVizOptions: RawOptions{
			Graph: map[string]string{
				"ratio":   "0.7",     // not covered by defaults, kept as-is
				"bgcolor": "#222222", // collides with a default, user wins
			},
			Node: map[string]string{"fontsize": "20"},
			Edge: map[string]string{"penwidth": "2"},
		},
	}.withDefaults()
	opts := buildOptions(cfg)

	if got := opts.Graph["ratio"]; got != "0.7" {
		t.Errorf("Graph[ratio] = %q, want 0.7", got)
	}
	if got := opts.Graph["bgcolor"]; got != "#222222" {
		t.Errorf("Graph[bgcolor] = %q, want passthrough #222222", got)
	}
	if got := opts.Node["fontsize"]; got != "20" {
		t.Errorf("Node[fontsize] = %q, want 20", got)
	}
	if got := opts.Edge["penwidth"]; got != "2" {
		t.Errorf("Edge[penwidth] = %q, want 2", got)
	}
	// Untouched defaults survive the merge.
	if got := opts.Graph["overlap"]; got != "false" {
		t.Errorf("Graph[overlap] = %q, want false", got)
	}
}
