package render

import "strings"

// Fill colors that are not configurable.
const (
	initFillColor    = "#FEC8D8" // init/ modules are always pink
	defaultFillColor = "#ffffff"
)

// categoryRule pairs a category prefix with the config field supplying its
// fill color. Rules are evaluated in order; the first prefix match with a
// configured color wins.
type categoryRule struct {
	prefix string
	color  func(CategoryColors) string
}

var categoryRules = []categoryRule{
	{"assets/", func(c CategoryColors) string { return c.Assets }},
	{"components/", func(c CategoryColors) string { return c.Components }},
	{"hocs/", func(c CategoryColors) string { return c.Hocs }},
	{"hooks/", func(c CategoryColors) string { return c.Hooks }},
	{"pages/", func(c CategoryColors) string { return c.Pages }},
	{"root/", func(c CategoryColors) string { return c.Root }},
	{"utils/", func(c CategoryColors) string { return c.Utils }},
}

// fillColor classifies a module identifier into its category fill color.
// Matching is case-sensitive and anchored to the start of the identifier.
// Identifiers under init/ always get the fixed pink; everything else without
// a configured category color falls through to white.
func fillColor(id string, colors CategoryColors) string {
	for _, rule := range categoryRules {
		if strings.HasPrefix(id, rule.prefix) {
			if c := rule.color(colors); c != "" {
				return c
			}
		}
	}
	if strings.HasPrefix(id, "init/") {
		return initFillColor
	}
	return defaultFillColor
}

// labelPrefixes are the category segments stripped from display labels.
var labelPrefixes = []string{
	"assets", "hocs", "pages", "root", "utils", "hooks", "components", "init",
}

// trimLabel strips one leading category segment from a module identifier.
// Identifiers without a recognized prefix are returned unchanged.
func trimLabel(id string) string {
	for _, p := range labelPrefixes {
		if rest, ok := strings.CutPrefix(id, p+"/"); ok {
			return rest
		}
	}
	return id
}
