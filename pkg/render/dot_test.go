package render

import (
	"strings"
	"testing"

	"github.com/goccy/go-graphviz"
)

func buildTestGraph(modules map[string][]string, circular [][]string, cfg Config) *Graph {
	cfg = cfg.withDefaults()
	return buildGraph(modules, circular, cfg, buildOptions(cfg))
}

func TestBuildGraph(t *testing.T) {
	tests := []struct {
		name      string
		modules   map[string][]string
		wantNodes int
		wantEdges int
	}{
		{
			name:      "Empty",
			modules:   map[string][]string{},
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name: "TwoNodesOneEdge",
			modules: map[string][]string{
				"pages/A":      {"components/B"},
				"components/B": {},
			},
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name: "KeyAlsoAppearsAsValue",
			modules: map[string][]string{
				"pages/A":      {"components/B", "utils/c"},
				"components/B": {"utils/c"},
				"utils/c":      {},
			},
			wantNodes: 3,
			wantEdges: 3,
		},
		{
			name: "ValueOnlyIdentifierGetsNode",
			modules: map[string][]string{
				"pages/A": {"components/Orphan"},
			},
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name: "RepeatedDependencyKeepsBothEdges",
			modules: map[string][]string{
				"pages/A": {"utils/x", "utils/x"},
			},
			wantNodes: 2,
			wantEdges: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildTestGraph(tt.modules, nil, Config{})
			if g.NodeCount() != tt.wantNodes {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), tt.wantNodes)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
		})
	}
}

func TestBuildGraphNodeAttributes(t *testing.T) {
	g := buildTestGraph(
		map[string][]string{"components/Button": {"init/setup"}},
		nil,
		Config{Colors: CategoryColors{Components: "#ff0000"}},
	)

	n := g.nodes["components/Button"]
	if n == nil {
		t.Fatal("missing node components/Button")
	}
	if n.Label != "Button" {
		t.Errorf("Label = %q, want Button", n.Label)
	}
	if n.FillColor != "#ff0000" {
		t.Errorf("FillColor = %q, want #ff0000", n.FillColor)
	}
	if n.Style != "filled,rounded" {
		t.Errorf("Style = %q, want filled,rounded", n.Style)
	}

	dep := g.nodes["init/setup"]
	if dep == nil {
		t.Fatal("missing node init/setup")
	}
	if dep.FillColor != initFillColor {
		t.Errorf("init FillColor = %q, want %q", dep.FillColor, initFillColor)
	}
}

func TestBuildGraphCyclicSet(t *testing.T) {
	g := buildTestGraph(
		map[string][]string{
			"utils/a": {"utils/b"},
			"utils/b": {"utils/a"},
			"pages/c": {"utils/a"},
		},
		[][]string{{"utils/a", "utils/b"}},
		Config{},
	)

	if !g.Cyclic("utils/a") || !g.Cyclic("utils/b") {
		t.Error("cycle members should be flagged cyclic")
	}
	if g.Cyclic("pages/c") {
		t.Error("pages/c is not in a cycle")
	}
}

func TestDOTOutput(t *testing.T) {
	g := buildTestGraph(
		map[string][]string{
			"pages/A":      {"components/B"},
			"components/B": {},
		},
		nil,
		Config{},
	)
	dot := g.DOT()

	for _, want := range []string{
		"digraph G {",
		`"pages/A" [fillcolor="#ffffff", label="A", style="filled,rounded"];`,
		`"components/B" [fillcolor="#ffffff", label="B", style="filled,rounded"];`,
		`"pages/A" -> "components/B";`,
		`rankdir="LR";`,
		`node [`,
		`edge [`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	// Exactly one definition per node.
	if n := strings.Count(dot, `"components/B" [`); n != 1 {
		t.Errorf("components/B defined %d times, want 1", n)
	}
}

func TestDOTDeterministic(t *testing.T) {
	modules := map[string][]string{
		"pages/A": {"components/B", "utils/c"},
		"hooks/d": {"utils/c"},
		"utils/c": {},
	}
	first := buildTestGraph(modules, nil, Config{}).DOT()
	for i := 0; i < 10; i++ {
		if got := buildTestGraph(modules, nil, Config{}).DOT(); got != first {
			t.Fatal("DOT output varies across builds of the same map")
		}
	}
}

func TestDOTParsesAsGraphviz(t *testing.T) {
	g := buildTestGraph(
		map[string][]string{
			"pages/Home":        {"components/Button", "hooks/useAuth"},
			"components/Button": {"assets/icon.svg"},
			"init/boot":         {"pages/Home"},
		},
		[][]string{{"pages/Home", "init/boot"}},
		Config{Colors: CategoryColors{Pages: "#ffd700"}},
	)

	parsed, err := graphviz.ParseBytes([]byte(g.DOT()))
	if err != nil {
		t.Fatalf("generated DOT does not parse: %v\n%s", err, g.DOT())
	}
	defer parsed.Close()
}
