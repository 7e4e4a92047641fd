package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/samcharles93/qoiinfo/pkg/qoi"
)

type Format string

const (
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// ParseFormat accepts the names used by the --format flag and config file.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "plain":
		return FormatText, nil
	case "pretty", "color", "colour":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, pretty or json)", s)
	}
}

// Summary is a decoded header ready for rendering.
type Summary struct {
	File            string `json:"file"`
	Width           uint32 `json:"width"`
	Height          uint32 `json:"height"`
	Pixels          uint64 `json:"pixels"`
	Channels        uint8  `json:"channels"`
	ChannelsLabel   string `json:"channels_label"`
	Colorspace      uint8  `json:"colorspace"`
	ColorspaceLabel string `json:"colorspace_label"`
}

func NewSummary(name string, h *qoi.Header) Summary {
	return Summary{
		File:            name,
		Width:           h.Width,
		Height:          h.Height,
		Pixels:          h.Pixels(),
		Channels:        uint8(h.Channels),
		ChannelsLabel:   h.Channels.String(),
		Colorspace:      uint8(h.Colorspace),
		ColorspaceLabel: h.Colorspace.String(),
	}
}

// Write renders s to w in the given format.
func Write(w io.Writer, format Format, s Summary) error {
	switch format {
	case FormatText:
		return Text(w, s)
	case FormatPretty:
		return Styled(w, s)
	case FormatJSON:
		return JSON(w, s, true)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func Text(w io.Writer, s Summary) error {
	_, err := io.WriteString(w, qoi.RenderReport(s.File, s.Width, s.Height, s.ChannelsLabel, s.ColorspaceLabel))
	return err
}

// Styled writes the same fields as Text with terminal styling. Colors are
// dropped when w is not a terminal.
func Styled(w io.Writer, s Summary) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7d56f4"))
	key := r.NewStyle().Foreground(lipgloss.Color("#888888")).Width(12)
	value := r.NewStyle().Foreground(lipgloss.Color("#28a745"))

	var b strings.Builder
	b.WriteString(title.Render("File "+s.File) + "\n")
	row := func(k, v string) {
		b.WriteString("  " + key.Render(k) + value.Render(v) + "\n")
	}
	row("Size", fmt.Sprintf("%dx%d", s.Width, s.Height))
	row("Pixels", fmt.Sprintf("%d", s.Pixels))
	row("Channels", fmt.Sprintf("%s (%d)", s.ChannelsLabel, s.Channels))
	row("Colorspace", fmt.Sprintf("%s (%d)", s.ColorspaceLabel, s.Colorspace))

	_, err := io.WriteString(w, b.String())
	return err
}

func JSON(w io.Writer, s Summary, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}
