package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/aschmelyun/storyreel/internal/audio"
	"github.com/aschmelyun/storyreel/internal/config"
	"github.com/aschmelyun/storyreel/internal/reel"
	"github.com/aschmelyun/storyreel/internal/timeline"
)

const VERSION = "1.0.0"

func newKeyMap() keyMap {
	return keyMap{
		Sound: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "tap for sound"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute/unmute"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "pause"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newModel(r *reel.Reel, driver *timeline.Driver, player soundPlayer, cfg *config.Config, log *logrus.Entry) model {
	ctx, cancel := context.WithCancel(context.Background())

	bar := progress.New(progress.WithSolidFill("#ffffff"), progress.WithoutPercentage())
	bar.Full = '━'
	bar.Empty = '━'
	bar.EmptyColor = "#444444"

	w, h := cfg.FitFrame(0, 0)

	// scene changes go to the log
	last := -1
	driver.Subscribe(func(s timeline.Snapshot) {
		i := r.ActiveIndex(s.Seconds())
		if i == last {
			return
		}
		last = i
		if i < 0 {
			log.WithField("elapsed", s.Seconds()).Info("Reel ended")
			return
		}
		log.WithFields(logrus.Fields{
			"scene":   r.Scenes[i].ID,
			"elapsed": s.Seconds(),
		}).Info("Scene started")
	})

	m := model{
		reel:         r,
		driver:       driver,
		player:       player,
		cfg:          cfg,
		log:          log,
		ctx:          ctx,
		cancel:       cancel,
		width:        w,
		height:       h,
		bar:          bar,
		help:         help.New(),
		keys:         newKeyMap(),
		soundEnabled: !cfg.Muted,
	}
	m.syncKeys()
	return m
}

func (m model) Init() tea.Cmd {
	tag, ok := m.driver.Start()
	if !ok {
		return nil
	}

	cmds := []tea.Cmd{frameCmd(tag, m.cfg.FPS)}
	if m.soundEnabled {
		cmds = append(cmds, playAudioCmd(m.ctx, m.player))
	}
	return tea.Batch(cmds...)
}

func (m *model) syncKeys() {
	ended := m.driver.State() == timeline.Ended
	m.keys.Sound.SetEnabled(!m.soundEnabled)
	m.keys.Mute.SetEnabled(!ended)
	m.keys.Pause.SetEnabled(!ended)
	m.keys.Replay.SetEnabled(ended)

	if m.driver.State() == timeline.Paused {
		m.keys.Pause.SetHelp("space", "resume")
	} else {
		m.keys.Pause.SetHelp("space", "pause")
	}
	if m.soundEnabled {
		m.keys.Mute.SetHelp("m", "mute")
	} else {
		m.keys.Mute.SetHelp("m", "unmute")
	}
}

func (m *model) setSound(on bool) tea.Cmd {
	m.soundEnabled = on
	if on {
		return playAudioCmd(m.ctx, m.player)
	}
	m.statuses = nil
	m.player.Stop()
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.driver.Stop()
			m.player.Stop()
			m.cancel()
			m.log.WithField("elapsed", m.driver.Seconds()).Info("Player closed")
			return m, tea.Quit

		case key.Matches(msg, m.keys.Sound):
			cmd = m.setSound(true)

		case key.Matches(msg, m.keys.Mute):
			cmd = m.setSound(!m.soundEnabled)

		case key.Matches(msg, m.keys.Pause):
			switch m.driver.State() {
			case timeline.Running:
				m.driver.Pause()
			case timeline.Paused:
				if tag, ok := m.driver.Start(); ok {
					cmd = frameCmd(tag, m.cfg.FPS)
				}
			}

		case key.Matches(msg, m.keys.Replay):
			m.setSound(false)
			m.statuses = nil
			tag := m.driver.Restart()
			m.log.Info("Replay")
			cmd = frameCmd(tag, m.cfg.FPS)
		}

	case frameMsg:
		if m.driver.Advance(msg.tag) {
			cmd = frameCmd(msg.tag, m.cfg.FPS)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = m.cfg.FitFrame(msg.Width, msg.Height)
		m.help.Width = msg.Width

	case audioStartedMsg:
		// muted again before the player came up
		if !m.soundEnabled {
			m.player.Stop()
			break
		}
		m.statuses = []string{"Sound on."}

	case audioFailedMsg:
		// no sound is the only visible effect
		m.log.WithError(msg.err).Debug("Audio playback failed")
	}

	m.syncKeys()
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return styleOutput(m.statuses)
	}

	inner := m.width - 2
	seconds := m.driver.Seconds()
	ended := m.driver.State() == timeline.Ended

	// progress bars, one per scene
	n := len(m.reel.Scenes)
	barWidth := max((inner-(n-1))/n, 1)
	m.bar.Width = barWidth
	bars := make([]string, n)
	for i, p := range m.reel.Progress(seconds) {
		bars[i] = m.bar.ViewAs(p / 100)
	}
	progressRow := lipgloss.NewStyle().Width(inner).Render(strings.Join(bars, " "))

	badgeRow := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(BadgeStyle.Render(m.reel.Badge(seconds)))

	bodyHeight := max(m.height-2-5, 3)
	var body string
	if s, ok := m.reel.Active(seconds); ok {
		backdrop := GradientBackdrop
		if s.Background.Kind == reel.ImageBackground {
			backdrop = ImageBackdrop
		}
		body = renderBody(sceneLines(s, inner, bodyHeight), inner, backdrop)
	} else {
		lines := make([]bodyLine, bodyHeight)
		for i := range lines {
			lines[i] = bodyLine{style: lipgloss.NewStyle()}
		}
		body = renderBody(lines, inner, GradientBackdrop)
	}

	soundRow := ""
	if !m.soundEnabled {
		soundRow = ControlStyle.Render("♪ Tap for sound")
	}
	soundRow = lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(soundRow)

	var control string
	switch {
	case ended:
		control = "↻ Replay"
	case m.soundEnabled:
		control = "Mute"
	default:
		control = "Unmute"
	}
	if m.driver.State() == timeline.Paused {
		control += " · Paused"
	}
	controlRow := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(ControlStyle.Render(control))

	ctaRow := ""
	if m.reel.CTA != "" {
		ctaRow = CTAStyle.Render(m.reel.CTA)
	}
	ctaRow = lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(ctaRow)

	phone := PhoneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		progressRow,
		badgeRow,
		body,
		soundRow,
		controlRow,
		ctaRow,
	))

	out := phone + "\n" + m.help.View(m.keys)
	if len(m.statuses) > 0 {
		out = styleOutput(m.statuses) + out
	}
	return out
}

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println(BulletStyle.Render("┌") + TitleStyle.Render("storyreel"))

	fs := flag.NewFlagSet("storyreel", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Usage: storyreel [options]"))
		fmt.Println(BulletStyle.Render("│"))
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Options:"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--reel") + DimTextStyle.Render("     YAML reel to play instead of the built-in one"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--audio") + DimTextStyle.Render("    background audio file or URL"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--sound") + DimTextStyle.Render("    start with sound enabled"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--fps") + DimTextStyle.Render("      frames per second (default 60)"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--width") + DimTextStyle.Render("    frame width in cells"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--height") + DimTextStyle.Render("   frame height in cells"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--log") + DimTextStyle.Render("      write JSON logs to a file"))
		fmt.Println(BulletStyle.Render("│"))
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Optional:"))

		status := "✔ installed"
		if !checkDependency("mpv") {
			status = "✗ missing, playing without sound"
		}
		fmt.Println(BulletStyle.Render("└────") + TextStyle.Render("mpv") + DimTextStyle.Render("       "+status))
	}

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}

	if cfg.Help {
		fs.Usage()
		return 0
	}

	if cfg.Version {
		fmt.Println(BulletStyle.Render("└") + TextStyle.Render(VERSION))
		return 0
	}

	r := reel.Default()
	if cfg.ReelPath != "" {
		r, err = reel.Load(cfg.ReelPath)
		if err != nil {
			fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render("Error: "+err.Error()))
			return 1
		}
	}

	logOut, err := cfg.LogOutput()
	if err != nil {
		fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}
	defer logOut.Close()

	log := config.InitLogger(logOut, cfg.LogPath != "")

	source := r.AudioURL
	if cfg.AudioURL != "" {
		source = cfg.AudioURL
	}
	player := audio.NewPlayer(source)
	if !player.Available() {
		log.Debug("mpv not found, sound disabled")
	}

	driver := timeline.New(r.Duration(), timeline.SystemClock)
	m := newModel(r, driver, player, cfg, log)

	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = cfg.FitFrame(tw, th)
	}

	log.WithFields(logrus.Fields{
		"scenes":   len(r.Scenes),
		"duration": r.TotalDuration,
		"fps":      cfg.FPS,
	}).Info("Playing reel")

	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	player.Stop()
	driver.Stop()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}

	if fm, ok := final.(model); ok {
		fmt.Print(BulletStyle.Render("└") + SuccessStyle.Render(fmt.Sprintf("Stopped at %s", r.Badge(fm.driver.Seconds()))) + "\n")
	}
	return 0
}
