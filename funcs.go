package main

import (
	"context"
	"net/url"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/aschmelyun/storyreel/internal/reel"
	"github.com/aschmelyun/storyreel/internal/timeline"
)

func frameCmd(tag timeline.Tag, fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{tag: tag}
	})
}

func playAudioCmd(ctx context.Context, player soundPlayer) tea.Cmd {
	return func() tea.Msg {
		if err := player.Play(ctx); err != nil {
			return audioFailedMsg{err: err}
		}
		return audioStartedMsg{}
	}
}

// blendRows returns n colours fading from the first to the second hex
// colour.
func blendRows(n int, from, to string) []lipgloss.Color {
	a, err := colorful.Hex(from)
	if err != nil {
		a = colorful.Color{}
	}
	b, err := colorful.Hex(to)
	if err != nil {
		b = colorful.Color{}
	}

	rows := make([]lipgloss.Color, n)
	for i := range rows {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		rows[i] = lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
	}
	return rows
}

type bodyLine struct {
	text  string
	style lipgloss.Style
}

// sceneLines lays out the caption of s near the bottom of a body that is
// height rows tall.
func sceneLines(s reel.Scene, width, height int) []bodyLine {
	lines := make([]bodyLine, height)
	for i := range lines {
		lines[i] = bodyLine{style: lipgloss.NewStyle()}
	}

	if s.Background.Kind == reel.ImageBackground {
		if host := imageHost(s.Background.URL); host != "" && height > 0 {
			lines[0] = bodyLine{text: "◐ " + host, style: CreditStyle}
		}
	}

	var caption []bodyLine
	if s.Kicker != "" {
		caption = append(caption, bodyLine{text: s.Kicker, style: KickerStyle}, bodyLine{style: lipgloss.NewStyle()})
	}
	for _, l := range wrap(s.Text, width-4) {
		caption = append(caption, bodyLine{text: l, style: HeadlineStyle})
	}

	start := height - len(caption) - 1
	if start < 1 {
		start = 1
	}
	for i, l := range caption {
		if start+i >= height {
			break
		}
		lines[start+i] = l
	}
	return lines
}

func renderBody(lines []bodyLine, width int, backdrop [2]string) string {
	colors := blendRows(len(lines), backdrop[0], backdrop[1])
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.style.
			Background(colors[i]).
			Width(width).
			Align(lipgloss.Center).
			Render(l.text)
	}
	return strings.Join(rows, "\n")
}

func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	var out []string
	for _, l := range strings.Split(wrapped, "\n") {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

func imageHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}

func styleOutput(statuses []string) string {
	var styledStatuses []string
	for i, status := range statuses {
		bullet := "├"
		if i == len(statuses)-1 {
			bullet = "└"
		}
		styledStatuses = append(styledStatuses, BulletStyle.Render(bullet)+TextStyle.Render(status))
	}
	return strings.Join(styledStatuses, "\n") + "\n"
}

func checkDependency(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
