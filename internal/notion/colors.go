package notion

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed colors/colors.yaml
var colorFiles embed.FS

// colorCatalog is the fixed bidirectional lookup between Notion named
// colors and the CSS values the editor uses. Foreground and background
// names are kept in separate tables because the reverse lookup must not
// resolve a highlight to a foreground name or vice versa.
type colorCatalog struct {
	Foreground map[string]string `yaml:"foreground"`
	Background map[string]string `yaml:"background"`

	cssToForeground map[string]string
	cssToBackground map[string]string
}

var catalog = func() *colorCatalog {
	c, err := loadColorCatalog()
	if err != nil {
		// The catalog is embedded; a failure here is a build defect.
		panic(fmt.Sprintf("notion: load color catalog: %v", err))
	}
	return c
}()

func loadColorCatalog() (*colorCatalog, error) {
	data, err := colorFiles.ReadFile("colors/colors.yaml")
	if err != nil {
		return nil, fmt.Errorf("read colors.yaml: %w", err)
	}

	var c colorCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal colors.yaml: %w", err)
	}

	c.cssToForeground = make(map[string]string, len(c.Foreground))
	for name, css := range c.Foreground {
		c.cssToForeground[strings.ToLower(css)] = name
	}
	c.cssToBackground = make(map[string]string, len(c.Background))
	for name, css := range c.Background {
		c.cssToBackground[strings.ToLower(css)] = name
	}
	return &c, nil
}

// cssForColor resolves a Notion color name (foreground or background)
// to its CSS value.
func cssForColor(name string) (string, bool) {
	if css, ok := catalog.Foreground[name]; ok {
		return css, true
	}
	css, ok := catalog.Background[name]
	return css, ok
}

// colorForCSS resolves a CSS value back to a foreground color name.
func colorForCSS(css string) (string, bool) {
	name, ok := catalog.cssToForeground[strings.ToLower(css)]
	return name, ok
}

// backgroundForCSS resolves a CSS value back to a "*_background" name.
func backgroundForCSS(css string) (string, bool) {
	name, ok := catalog.cssToBackground[strings.ToLower(css)]
	return name, ok
}

// isBackgroundColor reports whether a Notion color name is a highlight
// ("*_background") rather than a text color.
func isBackgroundColor(name string) bool {
	return strings.HasSuffix(name, "_background")
}
