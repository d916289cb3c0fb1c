package simplepdf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Layout configures page geometry, the column sizing heuristic and the table
// style. Widths and font sizes are in points.
type Layout struct {
	PageSize       string  `yaml:"page_size"`
	Orientation    string  `yaml:"orientation"` // "L" or "P"
	MarginLeft     float64 `yaml:"margin_left"`
	MarginRight    float64 `yaml:"margin_right"`
	MarginTop      float64 `yaml:"margin_top"`
	MarginBottom   float64 `yaml:"margin_bottom"`
	MinColumnWidth float64 `yaml:"min_column_width"`
	CharWidth      float64 `yaml:"char_width"` // width allotted per character of the longest cell
	FontFamily     string  `yaml:"font_family"`
	FontSize       float64 `yaml:"font_size"`
	LineHeight     float64 `yaml:"line_height"`
	CellPaddingX   float64 `yaml:"cell_padding_x"`
	CellPaddingY   float64 `yaml:"cell_padding_y"`
	HeaderFill     string  `yaml:"header_fill"`
	HeaderText     string  `yaml:"header_text"`
	BodyText       string  `yaml:"body_text"`
	GridColor      string  `yaml:"grid_color"`
	GridWidth      float64 `yaml:"grid_width"`
}

// DefaultLayout is a landscape A4 page with 20pt margins, a grey header
// row with whitesmoke bold text and a thin black grid.
func DefaultLayout() Layout {
	return Layout{
		PageSize:       "A4",
		Orientation:    "L",
		MarginLeft:     20,
		MarginRight:    20,
		MarginTop:      20,
		MarginBottom:   20,
		MinColumnWidth: 60,
		CharWidth:      6,
		FontFamily:     "Helvetica",
		FontSize:       10,
		LineHeight:     12,
		CellPaddingX:   6,
		CellPaddingY:   3,
		HeaderFill:     "#808080",
		HeaderText:     "#F5F5F5",
		BodyText:       "#000000",
		GridColor:      "#000000",
		GridWidth:      0.5,
	}
}

// NewLayoutFromYamlConfig parses a YAML layout. Fields left out keep their
// DefaultLayout values.
func NewLayoutFromYamlConfig(yamlConfig string) (Layout, error) {
	layout := DefaultLayout()
	if err := yaml.Unmarshal([]byte(yamlConfig), &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout config: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// NewLayoutFromYamlFile reads a YAML layout from path.
func NewLayoutFromYamlFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return NewLayoutFromYamlConfig(string(data))
}

// Validate checks the layout for values the renderer cannot work with.
func (l Layout) Validate() error {
	switch strings.ToUpper(l.Orientation) {
	case "L", "P":
	default:
		return fmt.Errorf("invalid orientation %q (must be L or P)", l.Orientation)
	}
	if l.FontSize <= 0 || l.LineHeight <= 0 {
		return fmt.Errorf("font_size and line_height must be positive")
	}
	if l.MinColumnWidth < 0 || l.CharWidth < 0 {
		return fmt.Errorf("min_column_width and char_width must not be negative")
	}
	for _, c := range []string{l.HeaderFill, l.HeaderText, l.BodyText, l.GridColor} {
		if _, err := parseHexColor(c); err != nil {
			return err
		}
	}
	return nil
}

type rgb struct{ r, g, b int }

func parseHexColor(s string) (rgb, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("invalid color %q", s)
	}
	return rgb{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}, nil
}
