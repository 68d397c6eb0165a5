package timeline

import "time"

// State is the playback state of a Driver.
type State int

const (
	Idle State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Tag identifies one scheduling generation. A frame scheduled under an
// older tag is discarded by Advance.
type Tag int

// Clock is the wall-clock source used to derive elapsed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now, which carries a monotonic reading.
var SystemClock Clock = systemClock{}

// Snapshot is what observers receive each time elapsed is published.
type Snapshot struct {
	Elapsed time.Duration
	State   State
}

// Seconds returns the snapshot's elapsed time in seconds.
func (s Snapshot) Seconds() float64 { return s.Elapsed.Seconds() }

// Driver advances an elapsed-time value over wall-clock time, capped at
// a total duration. It is not safe for concurrent use; all calls are
// expected to come from one event loop.
type Driver struct {
	total   time.Duration
	clock   Clock
	ref     time.Time
	elapsed time.Duration
	state   State
	tag     Tag

	nextObserver int
	observers    map[int]func(Snapshot)
}

// New returns an Idle driver. A non-positive total is treated as zero,
// which makes the first Advance end playback.
func New(total time.Duration, clock Clock) *Driver {
	if total < 0 {
		total = 0
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Driver{
		total:     total,
		clock:     clock,
		observers: make(map[int]func(Snapshot)),
	}
}

func (d *Driver) Total() time.Duration   { return d.total }
func (d *Driver) Elapsed() time.Duration { return d.elapsed }
func (d *Driver) Seconds() float64       { return d.elapsed.Seconds() }
func (d *Driver) State() State           { return d.state }
func (d *Driver) Tag() Tag               { return d.tag }

// Start resumes playback from the current elapsed value. It returns the
// tag the next frame must carry and whether a frame needs scheduling.
func (d *Driver) Start() (Tag, bool) {
	switch d.state {
	case Idle, Paused:
	default:
		return d.tag, false
	}
	d.ref = d.clock.Now().Add(-d.elapsed)
	d.state = Running
	d.tag++
	return d.tag, true
}

// Pause freezes elapsed at its last published value.
func (d *Driver) Pause() {
	if d.state != Running {
		return
	}
	d.state = Paused
	d.tag++
}

// Restart rewinds to zero and runs, whatever the current state.
func (d *Driver) Restart() Tag {
	d.elapsed = 0
	d.ref = d.clock.Now()
	d.state = Running
	d.tag++
	d.publish()
	return d.tag
}

// Stop invalidates any scheduled frame and drops all observers. It is
// called when the owner goes away.
func (d *Driver) Stop() {
	if d.state == Running {
		d.state = Paused
	}
	d.tag++
	clear(d.observers)
}

// Advance is the per-frame step. It reports whether another frame
// should be scheduled under the same tag.
func (d *Driver) Advance(tag Tag) bool {
	if tag != d.tag || d.state != Running {
		return false
	}

	elapsed := d.clock.Now().Sub(d.ref).Truncate(time.Millisecond)
	if elapsed > d.total {
		elapsed = d.total
	}
	// a clock stepping backwards must not rewind playback
	if elapsed < d.elapsed {
		elapsed = d.elapsed
	}
	d.elapsed = elapsed

	more := d.elapsed < d.total
	if !more {
		d.state = Ended
	}
	d.publish()
	return more
}

// Subscribe registers fn to receive every published snapshot. The
// returned function removes it again.
func (d *Driver) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := d.nextObserver
	d.nextObserver++
	d.observers[id] = fn
	return func() { delete(d.observers, id) }
}

func (d *Driver) publish() {
	snap := Snapshot{Elapsed: d.elapsed, State: d.state}
	for _, fn := range d.observers {
		fn(snap)
	}
}
