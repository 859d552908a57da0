package render

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// Graph Model
// =============================================================================

// Graph is the node/edge description built from one dependency map.
// It lives for a single render call and is never shared between calls.
type Graph struct {
	opts Options

	// nodes is the registry keyed by the raw module identifier. Node creation
	// consults it at every creation site, so one identifier can never produce
	// two node definitions.
	nodes map[string]*Node
	order []string
	edges []edge

	// cyclic is the flattened set of identifiers that participate in any
	// dependency cycle. Reserved for cyclic-edge highlighting; it does not
	// alter the emitted graph yet.
	cyclic map[string]struct{}
}

// Node is one module in the graph. The identifier keys the registry; the
// label is the trimmed form shown by the renderer.
type Node struct {
	ID        string
	Label     string
	FillColor string
	Style     string
}

type edge struct {
	from, to string
}

// buildGraph converts the dependency map into a deduplicated graph. Keys are
// visited in sorted order so the emitted DOT is deterministic regardless of
// map iteration order. An identifier that appears only as a dependency value
// still gets a node, just without outgoing edges.
func buildGraph(modules map[string][]string, circular [][]string, cfg Config, opts Options) *Graph {
	g := &Graph{
		opts:   opts,
		nodes:  make(map[string]*Node, len(modules)),
		cyclic: make(map[string]struct{}),
	}

	for _, cycle := range circular {
		for _, id := range cycle {
			g.cyclic[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(modules))
	for id := range modules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		g.ensureNode(id, cfg)
		for _, dep := range modules[id] {
			g.ensureNode(dep, cfg)
			g.edges = append(g.edges, edge{from: id, to: dep})
		}
	}
	return g
}

// ensureNode returns the node for id, creating it on first sight. New nodes
// get their trimmed label, category fill color, and the fixed filled,rounded
// style in one step since all three are cosmetic attributes.
func (g *Graph) ensureNode(id string, cfg Config) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{
		ID:        id,
		Label:     trimLabel(id),
		FillColor: fillColor(id, cfg.Colors),
		Style:     "filled,rounded",
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// Cyclic reports whether id participates in a dependency cycle.
func (g *Graph) Cyclic(id string) bool {
	_, ok := g.cyclic[id]
	return ok
}

// NodeCount returns the number of unique nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. Repeated entries in a dependency
// list each contribute an edge; edges are not deduplicated.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// =============================================================================
// DOT Emission
// =============================================================================

// DOT serializes the graph as Graphviz DOT text. Graph attributes are written
// one per line, node and edge defaults as bracketed blocks, then the node
// declarations in creation order and the edges in dependency-list order.
// Attribute maps are emitted with sorted keys for reproducible output.
func (g *Graph) DOT() string {
	var buf strings.Builder
	buf.WriteString("digraph G {\n")

	for _, k := range sortedKeys(g.opts.Graph) {
		fmt.Fprintf(&buf, "  %s=%q;\n", k, g.opts.Graph[k])
	}
	if len(g.opts.Node) > 0 {
		fmt.Fprintf(&buf, "  node [%s];\n", formatAttrs(g.opts.Node))
	}
	if len(g.opts.Edge) > 0 {
		fmt.Fprintf(&buf, "  edge [%s];\n", formatAttrs(g.opts.Edge))
	}
	buf.WriteString("\n")

	for _, id := range g.order {
		n := g.nodes[id]
		fmt.Fprintf(&buf, "  %q [fillcolor=%q, label=%q, style=%q];\n",
			n.ID, n.FillColor, n.Label, n.Style)
	}

	buf.WriteString("\n")
	for _, e := range g.edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func formatAttrs(attrs map[string]string) string {
	keys := sortedKeys(attrs)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
