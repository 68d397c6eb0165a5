package main

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/sirupsen/logrus"

	"github.com/aschmelyun/storyreel/internal/config"
	"github.com/aschmelyun/storyreel/internal/reel"
	"github.com/aschmelyun/storyreel/internal/timeline"
)

type frameMsg struct {
	tag timeline.Tag
}

type audioStartedMsg struct{}

type audioFailedMsg struct {
	err error
}

type soundPlayer interface {
	Play(ctx context.Context) error
	Stop()
}

type keyMap struct {
	Sound  key.Binding
	Mute   key.Binding
	Pause  key.Binding
	Replay key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sound, k.Mute, k.Pause, k.Replay, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type model struct {
	reel   *reel.Reel
	driver *timeline.Driver
	player soundPlayer
	cfg    *config.Config
	log    *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
	bar    progress.Model
	help   help.Model
	keys   keyMap

	soundEnabled bool
	statuses     []string
	quitting     bool
}
