// Package progress implements the single-producer/single-consumer event
// channel meta-solvers emit to (spec 4.I): every STARTING is followed by
// exactly one terminal event per engine, in the temporal order the
// meta-solver transitions through its engines. If no consumer is
// attached, events are silently dropped -- Send never blocks the search.
package progress

import "time"

// Phase is one state in an engine's IDLE -> STARTING -> RUNNING ->
// {COMPLETED, FAILED, TIMEOUT} state machine (spec 4.G).
type Phase int

const (
	Idle Phase = iota
	Starting
	Running
	Completed
	Failed
	TimedOut
)

// String renders the Phase's name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Starting:
		return "STARTING"
	case Running:
		return "RUNNING"
	case Completed:
		return "COMPLETED"
	case Failed:
		return "FAILED"
	case TimedOut:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Event is one state-machine transition reported by a meta-solver.
type Event struct {
	Engine       string
	Phase        Phase
	ElapsedMs    int64
	SequenceIdx  int
	TotalEngines int
}

// Sender is the producer side of the progress channel: a thin wrapper
// around a buffered chan Event whose Send never blocks. This mirrors the
// bfs package's "hook or no-op" discipline (bfs.DefaultOptions's
// OnEnqueue/OnVisit default to no-ops), generalized from a callback to a
// channel send that is a no-op when nothing is listening.
type Sender struct {
	ch chan Event
}

// NewSender allocates a Sender with the given channel buffer size. A
// size of 0 is legal: sends still never block, they are just dropped
// more eagerly since an unbuffered channel has no reader ready.
func NewSender(buffer int) *Sender {
	return &Sender{ch: make(chan Event, buffer)}
}

// Events exposes the receive-only side for a consumer to range over.
func (s *Sender) Events() <-chan Event {
	if s == nil {
		return nil
	}

	return s.ch
}

// Send enqueues evt if there is buffer space or a ready receiver;
// otherwise it drops the event. A nil Sender is a valid no-op producer,
// so callers that did not request progress reporting can pass nil
// throughout without a branch at every call site.
func (s *Sender) Send(evt Event) {
	if s == nil {
		return
	}
	select {
	case s.ch <- evt:
	default:
	}
}

// Close closes the underlying channel. Callers must stop calling Send
// after Close; it exists so a meta-solver can signal "no more events"
// to a consumer ranging over Events().
func (s *Sender) Close() {
	if s == nil {
		return
	}
	close(s.ch)
}

// Since is a small helper for computing ElapsedMs from a start time,
// used by every meta-solver emitting events.
func Since(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
