package render

import (
	"github.com/charmbracelet/log"
)

// =============================================================================
// Config - Render Configuration
// =============================================================================

// Config holds the user-controllable rendering options. The zero value is
// valid; unset fields fall back to the defaults below. Fields carry TOML tags
// so a config file can be decoded straight into this type.
type Config struct {
	// GraphVizPath is the directory containing the Graphviz binaries.
	// When empty the dot executable is resolved from $PATH.
	GraphVizPath string `toml:"graphviz_path"`

	// RankDir is the graph direction (LR, RL, TB, BT).
	RankDir string `toml:"rankdir"`

	// Layout selects the Graphviz layout engine (dot, neato, fdp, ...).
	Layout string `toml:"layout"`

	FontName        string `toml:"font_name"`
	FontSize        string `toml:"font_size"`
	BackgroundColor string `toml:"background_color"`
	NodeColor       string `toml:"node_color"`
	NodeShape       string `toml:"node_shape"`
	NodeStyle       string `toml:"node_style"`
	EdgeColor       string `toml:"edge_color"`

	// Colors assigns fill colors per module category. Categories without a
	// color fall through to the built-in defaults (see fillColor).
	Colors CategoryColors `toml:"colors"`

	// GraphVizOptions are raw attribute groups passed through to Graphviz
	// unchanged. They override the computed defaults on conflict.
	GraphVizOptions RawOptions `toml:"graphviz_options"`

	// Logger receives debug traces of the subprocess invocations.
	// Nil disables tracing.
	Logger *log.Logger `toml:"-"`
}

// CategoryColors holds one optional fill color per module category.
type CategoryColors struct {
	Assets     string `toml:"assets"`
	Components string `toml:"components"`
	Hocs       string `toml:"hocs"`
	Hooks      string `toml:"hooks"`
	Pages      string `toml:"pages"`
	Root       string `toml:"root"`
	Utils      string `toml:"utils"`
}

// RawOptions carries user-supplied Graphviz attributes per group.
type RawOptions struct {
	Graph map[string]string `toml:"graph"`
	Edge  map[string]string `toml:"edge"`
	Node  map[string]string `toml:"node"`
}

// Default values applied by withDefaults.
const (
	defaultRankDir         = "LR"
	defaultLayout          = "dot"
	defaultFontName        = "Arial"
	defaultFontSize        = "14"
	defaultBackgroundColor = "#111111"
	defaultNodeColor       = "#c6c5fe"
	defaultNodeShape       = "box"
	defaultNodeStyle       = "rounded"
	defaultEdgeColor       = "#757575"
)

// withDefaults returns a copy of c with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.RankDir == "" {
		c.RankDir = defaultRankDir
	}
	if c.Layout == "" {
		c.Layout = defaultLayout
	}
	if c.FontName == "" {
		c.FontName = defaultFontName
	}
	if c.FontSize == "" {
		c.FontSize = defaultFontSize
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = defaultBackgroundColor
	}
	if c.NodeColor == "" {
		c.NodeColor = defaultNodeColor
	}
	if c.NodeShape == "" {
		c.NodeShape = defaultNodeShape
	}
	if c.NodeStyle == "" {
		c.NodeStyle = defaultNodeStyle
	}
	if c.EdgeColor == "" {
		c.EdgeColor = defaultEdgeColor
	}
	return c
}

// logger returns the configured logger, or a discard-level default.
func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
