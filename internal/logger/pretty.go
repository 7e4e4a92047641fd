package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type prettyStyles struct {
	time  lipgloss.Style
	attrs lipgloss.Style
	debug lipgloss.Style
	info  lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
}

func newPrettyStyles(w io.Writer) prettyStyles {
	r := lipgloss.NewRenderer(w)
	level := r.NewStyle().Bold(true).Width(5)
	return prettyStyles{
		time:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
		attrs: r.NewStyle().Foreground(lipgloss.Color("#00afaf")),
		debug: level.Foreground(lipgloss.Color("#888888")),
		info:  level.Foreground(lipgloss.Color("#5f87ff")),
		warn:  level.Foreground(lipgloss.Color("#d7af00")),
		err:   level.Foreground(lipgloss.Color("#ee4b2b")),
	}
}

func (s prettyStyles) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return s.err
	case l >= slog.LevelWarn:
		return s.warn
	case l >= slog.LevelInfo:
		return s.info
	default:
		return s.debug
	}
}

// PrettyHandler is a slog.Handler that writes one colored line per record:
//
//	[2006-01-02 15:04:05] INFO  message key=value key=value
type PrettyHandler struct {
	opts   slog.HandlerOptions
	w      io.Writer
	mu     *sync.Mutex
	styles prettyStyles
	group  string
	// pre holds attrs from WithAttrs, already qualified by the group that
	// was open when they were added.
	pre    []string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts:   *opts,
		w:      w,
		mu:     &sync.Mutex{},
		styles: newPrettyStyles(w),
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.styles.time.Render("[" + r.Time.Format(time.DateTime) + "]"))
	b.WriteByte(' ')
	b.WriteString(h.styles.level(r.Level).Render(r.Level.String()))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	parts := make([]string, 0, len(h.pre)+r.NumAttrs())
	parts = append(parts, h.pre...)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, a, h.group)
		return true
	})
	if len(parts) > 0 {
		b.WriteByte(' ')
		b.WriteString(h.styles.attrs.Render(strings.Join(parts, " ")))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.pre = append([]string{}, h.pre...)
	for _, a := range attrs {
		next.pre = appendAttr(next.pre, a, h.group)
	}
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		next.group = h.group + "." + name
	} else {
		next.group = name
	}
	return &next
}

func appendAttr(parts []string, attr slog.Attr, group string) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}

	switch attr.Value.Kind() {
	case slog.KindGroup:
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, a, key)
		}
		return parts
	case slog.KindString:
		return append(parts, key+"="+quoteIfNeeded(attr.Value.String()))
	case slog.KindTime:
		return append(parts, key+"="+attr.Value.Time().Format(time.RFC3339))
	default:
		return append(parts, key+"="+quoteIfNeeded(fmt.Sprint(attr.Value.Any())))
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
