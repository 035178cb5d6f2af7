package svg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gantt-planner/internal/model"
)

// Theme controls the colors and typography of rendered charts. It maps
// directly to a YAML file so a deployment can restyle its charts
// without rebuilding.
type Theme struct {
	Font   FontTheme  `yaml:"font"`
	Colors ColorTheme `yaml:"colors"`

	// HeaderHeight is the pixel height of the tick label strip above
	// the task rows.
	HeaderHeight int `yaml:"header_height"`
}

type FontTheme struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

type ColorTheme struct {
	Background string `yaml:"background"`
	GridLine   string `yaml:"grid_line"`
	HeaderText string `yaml:"header_text"`
	BarText    string `yaml:"bar_text"`
	Weekend    string `yaml:"weekend"`
	Vacation   string `yaml:"vacation"`

	// Status maps a task status to its bar fill. A task's own color
	// beats the status color.
	Status map[string]string `yaml:"status"`
}

// DefaultTheme returns the stock look: white canvas, grey grid, status
// colors in the Google palette.
func DefaultTheme() Theme {
	return Theme{
		Font: FontTheme{
			Family: "Arial, sans-serif",
			Size:   12,
		},
		Colors: ColorTheme{
			Background: "#ffffff",
			GridLine:   "#e0e0e0",
			HeaderText: "#333333",
			BarText:    "#ffffff",
			Weekend:    "#f5f5f5",
			Vacation:   "#fde8e8",
			Status: map[string]string{
				string(model.TaskStatusPlanned): "#90a4ae",
				string(model.TaskStatusActive):  "#4285f4",
				string(model.TaskStatusDone):    "#34a853",
				string(model.TaskStatusBlocked): "#ea4335",
			},
		},
		HeaderHeight: 40,
	}
}

// LoadTheme reads a YAML theme file. Fields the file leaves out keep
// their defaults, so a theme can override just one color.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("error reading theme file: %w", err)
	}

	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("error parsing theme file: %w", err)
	}

	return theme, nil
}

// barFill picks the fill color for one bar: the task's own color, then
// the status color, then the planned fallback.
func (t Theme) barFill(color string, status model.TaskStatus) string {
	if color != "" {
		return color
	}
	if fill, ok := t.Colors.Status[string(status)]; ok {
		return fill
	}
	return t.Colors.Status[string(model.TaskStatusPlanned)]
}
