package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/aschmelyun/storyreel/internal/config"
	"github.com/aschmelyun/storyreel/internal/reel"
	"github.com/aschmelyun/storyreel/internal/timeline"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type fakePlayer struct {
	err   error
	plays int
	stops int
}

func (p *fakePlayer) Play(context.Context) error {
	p.plays++
	return p.err
}

func (p *fakePlayer) Stop() { p.stops++ }

func newTestModel(t *testing.T) (model, *testClock, *fakePlayer) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := reel.Default()
	player := &fakePlayer{}
	cfg := &config.Config{FPS: 60, Muted: true}

	m := newModel(r, timeline.New(r.Duration(), clock), player, cfg, logrus.NewEntry(logger))
	if m.Init() == nil {
		t.Fatalf("Expected Init to schedule the first frame")
	}
	return m, clock, player
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Expected model, got %T", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAutoStart(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.driver.State() != timeline.Running {
		t.Errorf("Expected driver running after Init, got %s", m.driver.State())
	}
	if m.soundEnabled {
		t.Errorf("Expected sound off by default")
	}
}

func TestFramesDriveTheView(t *testing.T) {
	m, clock, _ := newTestModel(t)
	tag := m.driver.Tag()

	clock.now = clock.now.Add(9 * time.Second)
	m, cmd := update(t, m, frameMsg{tag: tag})
	if cmd == nil {
		t.Fatalf("Expected another frame to be scheduled")
	}

	view := m.View()
	if !strings.Contains(view, "SCENE 5 · CLIMAX") {
		t.Errorf("Expected scene 5 kicker in view:\n%s", view)
	}
	if !strings.Contains(view, "00:09 / 00:17") {
		t.Errorf("Expected badge 00:09 / 00:17 in view:\n%s", view)
	}
	if !strings.Contains(view, "Tap for sound") {
		t.Errorf("Expected tap for sound while muted")
	}
}

func TestEndedOffersReplay(t *testing.T) {
	m, clock, player := newTestModel(t)
	tag := m.driver.Tag()

	m, _ = update(t, m, runes("m"))
	if !m.soundEnabled {
		t.Fatalf("Expected sound on after m")
	}

	clock.now = clock.now.Add(18 * time.Second)
	m, cmd := update(t, m, frameMsg{tag: tag})
	if cmd != nil {
		t.Errorf("Expected no frame after the end")
	}
	if m.driver.State() != timeline.Ended {
		t.Fatalf("Expected ended, got %s", m.driver.State())
	}
	if i := m.reel.ActiveIndex(m.driver.Seconds()); i != -1 {
		t.Errorf("Expected no active scene, got %d", i)
	}
	if !strings.Contains(m.View(), "Replay") {
		t.Errorf("Expected Replay control once ended")
	}

	// mute is not available once ended
	m, _ = update(t, m, runes("m"))
	if !m.soundEnabled {
		t.Errorf("Expected m to be ignored once ended")
	}

	stops := player.stops
	m, cmd = update(t, m, runes("r"))
	if cmd == nil {
		t.Errorf("Expected replay to schedule a frame")
	}
	if m.driver.State() != timeline.Running || m.driver.Elapsed() != 0 {
		t.Errorf("Expected running at 0 after replay, got %s at %v", m.driver.State(), m.driver.Elapsed())
	}
	if m.soundEnabled {
		t.Errorf("Expected replay to turn sound off")
	}
	if player.stops != stops+1 {
		t.Errorf("Expected replay to stop the player")
	}
}

func TestReplayIgnoredWhilePlaying(t *testing.T) {
	m, clock, _ := newTestModel(t)
	tag := m.driver.Tag()

	clock.now = clock.now.Add(3 * time.Second)
	m, _ = update(t, m, frameMsg{tag: tag})

	m, _ = update(t, m, runes("r"))
	if m.driver.Elapsed() != 3*time.Second {
		t.Errorf("Expected r to be ignored while playing, elapsed %v", m.driver.Elapsed())
	}
}

func TestPauseResume(t *testing.T) {
	m, clock, _ := newTestModel(t)
	tag := m.driver.Tag()

	clock.now = clock.now.Add(4 * time.Second)
	m, _ = update(t, m, frameMsg{tag: tag})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.driver.State() != timeline.Paused {
		t.Fatalf("Expected paused, got %s", m.driver.State())
	}

	clock.now = clock.now.Add(5 * time.Second)
	m, cmd := update(t, m, frameMsg{tag: tag})
	if cmd != nil {
		t.Errorf("Expected stale frame to be dropped")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatalf("Expected resume to schedule a frame")
	}

	m, _ = update(t, m, frameMsg{tag: m.driver.Tag()})
	if m.driver.Elapsed() != 4*time.Second {
		t.Errorf("Expected resume from 4s, got %v", m.driver.Elapsed())
	}
}

func TestSoundToggle(t *testing.T) {
	m, _, player := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.soundEnabled {
		t.Fatalf("Expected enter to enable sound")
	}
	if cmd == nil {
		t.Fatalf("Expected a command to start audio")
	}
	if _, ok := cmd().(audioStartedMsg); !ok {
		t.Errorf("Expected audioStartedMsg")
	}
	if player.plays != 1 {
		t.Errorf("Expected one play, got %d", player.plays)
	}
	if strings.Contains(m.View(), "Tap for sound") {
		t.Errorf("Expected tap for sound hidden while sound is on")
	}

	m, _ = update(t, m, runes("m"))
	if m.soundEnabled {
		t.Errorf("Expected m to mute")
	}
	if player.stops != 1 {
		t.Errorf("Expected mute to stop the player, got %d stops", player.stops)
	}
}

func TestAudioFailureIsSwallowed(t *testing.T) {
	m, clock, player := newTestModel(t)
	player.err = errors.New("mpv: not found")
	tag := m.driver.Tag()

	m, cmd := update(t, m, runes("m"))
	msg := cmd()
	if _, ok := msg.(audioFailedMsg); !ok {
		t.Fatalf("Expected audioFailedMsg, got %T", msg)
	}

	m, cmd = update(t, m, msg)
	if cmd != nil {
		t.Errorf("Expected no command for an audio failure")
	}
	if len(m.statuses) != 0 {
		t.Errorf("Expected no visible status, got %v", m.statuses)
	}

	clock.now = clock.now.Add(2 * time.Second)
	m, _ = update(t, m, frameMsg{tag: tag})
	if m.driver.Elapsed() != 2*time.Second {
		t.Errorf("Expected timeline unaffected, got %v", m.driver.Elapsed())
	}
}

func TestQuitTearsDown(t *testing.T) {
	m, clock, player := newTestModel(t)
	tag := m.driver.Tag()

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("Expected quit command")
	}
	if !m.quitting {
		t.Errorf("Expected quitting")
	}
	if player.stops != 1 {
		t.Errorf("Expected player stopped on quit")
	}
	if m.ctx.Err() == nil {
		t.Errorf("Expected context cancelled on quit")
	}

	clock.now = clock.now.Add(time.Second)
	if _, cmd := update(t, m, frameMsg{tag: tag}); cmd != nil {
		t.Errorf("Expected frames after quit to be dropped")
	}
}

func TestBlendRows(t *testing.T) {
	rows := blendRows(5, GradientBackdrop[0], GradientBackdrop[1])
	if len(rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(rows))
	}
	if rows[0] == rows[4] {
		t.Errorf("Expected the blend to change from top to bottom, got %s", rows[0])
	}
	for i, c := range rows {
		if !strings.HasPrefix(string(c), "#") || len(c) != 7 {
			t.Errorf("Row %d: expected a hex colour, got %q", i, c)
		}
	}
}

func TestImageHost(t *testing.T) {
	if got := imageHost("https://images.unsplash.com/photo-1?q=80"); got != "images.unsplash.com" {
		t.Errorf("Unexpected host %q", got)
	}
	if got := imageHost(""); got != "" {
		t.Errorf("Expected empty host, got %q", got)
	}
}

func TestMuteBeforePlayerStarts(t *testing.T) {
	m, _, player := newTestModel(t)

	m, play := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if play == nil {
		t.Fatalf("Expected a command to start audio")
	}

	m, _ = update(t, m, runes("m"))
	if m.soundEnabled {
		t.Fatalf("Expected m to mute")
	}
	stops := player.stops

	// the play command only runs now, after the mute
	m, _ = update(t, m, play())
	if player.stops != stops+1 {
		t.Errorf("Expected the late player to be stopped, got %d stops", player.stops-stops)
	}
	if m.soundEnabled {
		t.Errorf("Expected sound to stay off")
	}
	if len(m.statuses) != 0 {
		t.Errorf("Expected no status for a muted player, got %v", m.statuses)
	}
}

func TestStatusLineStaysSingle(t *testing.T) {
	m, _, _ := newTestModel(t)
	baseline := strings.Count(m.View(), "\n")

	for i := 0; i < 6; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, runes("m"))
		if cmd != nil {
			m, _ = update(t, m, cmd())
		}
		if len(m.statuses) > 1 {
			t.Fatalf("Toggle %d: expected at most one status, got %v", i+1, m.statuses)
		}
	}

	// six toggles end muted
	if len(m.statuses) != 0 {
		t.Errorf("Expected status cleared while muted, got %v", m.statuses)
	}
	if lines := strings.Count(m.View(), "\n"); lines != baseline {
		t.Errorf("Expected view to keep %d lines, got %d", baseline, lines)
	}
}

func TestTapForSoundAfterEnd(t *testing.T) {
	m, clock, player := newTestModel(t)
	tag := m.driver.Tag()

	clock.now = clock.now.Add(17 * time.Second)
	m, _ = update(t, m, frameMsg{tag: tag})
	if m.driver.State() != timeline.Ended {
		t.Fatalf("Expected ended, got %s", m.driver.State())
	}
	if !strings.Contains(m.View(), "Tap for sound") {
		t.Fatalf("Expected tap for sound once ended with sound off")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.soundEnabled {
		t.Fatalf("Expected enter to enable sound after the end")
	}
	if cmd == nil {
		t.Fatalf("Expected a command to start audio")
	}
	cmd()
	if player.plays != 1 {
		t.Errorf("Expected one play, got %d", player.plays)
	}
	if strings.Contains(m.View(), "Tap for sound") {
		t.Errorf("Expected tap for sound hidden once sound is on")
	}
}
