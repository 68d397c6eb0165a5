package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

var ErrNoSource = errors.New("no audio source configured")

// Player loops a single audio source through mpv. Playback is best
// effort: callers are expected to log and drop any error from Play.
type Player struct {
	source string
	binary string
	volume int

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

func NewPlayer(source string) *Player {
	return &Player{source: source, binary: "mpv", volume: 70}
}

// Available reports whether the player binary can be found on PATH.
func (p *Player) Available() bool {
	_, err := exec.LookPath(p.binary)
	return err == nil
}

func (p *Player) args() []string {
	return []string{
		"--no-video",
		"--no-terminal",
		"--loop-file=inf",
		fmt.Sprintf("--volume=%d", p.volume),
		p.source,
	}
}

// Play starts looping playback if it is not already running.
func (p *Player) Play(ctx context.Context) error {
	if p.source == "" {
		return ErrNoSource
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, p.binary, p.args()...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.binary, err)
	}

	done := make(chan struct{})
	p.cmd = cmd
	p.done = done

	go func() {
		cmd.Wait()
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
			p.done = nil
		}
		p.mu.Unlock()
		close(done)
	}()

	return nil
}

// Playing reports whether the player process is alive.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

// Stop kills the player process and waits for it to exit.
func (p *Player) Stop() {
	p.mu.Lock()
	cmd, done := p.cmd, p.done
	p.cmd = nil
	p.done = nil
	p.mu.Unlock()

	if cmd == nil {
		return
	}
	if cmd.Process != nil {
		cmd.Process.Kill()
	}
	<-done
}
