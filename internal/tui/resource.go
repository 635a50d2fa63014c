package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/mockapi"
)

// ResourceMsg carries one fetch outcome back to the panel that issued it.
type ResourceMsg struct {
	Owner   int
	Seq     int
	Key     string
	Payload any
	Err     error
	At      time.Time
}

func (m ResourceMsg) owner() int { return m.Owner }

// ownedMsg is implemented by async messages addressed to one mounted panel.
type ownedMsg interface {
	owner() int
}

// resource tracks one panel's fetch of a keyed mock resource. Each fetch
// bumps seq; only the latest seq for the live owner is applied.
type resource[T any] struct {
	owner   int
	key     string
	fetcher Fetcher
	seq     int
	ctx     context.Context
	cancel  context.CancelFunc
	result  mockapi.AsyncResult[T]
}

func newResource[T any](owner int, key string, fetcher Fetcher) *resource[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &resource[T]{
		owner:   owner,
		key:     key,
		fetcher: fetcher,
		ctx:     ctx,
		cancel:  cancel,
		result:  mockapi.Pending[T](),
	}
}

// fetch moves to Pending and returns the command running the fetch.
// Earlier in-flight fetches are not cancelled; their results are ignored.
func (r *resource[T]) fetch() tea.Cmd {
	r.seq++
	r.result = mockapi.Pending[T]()

	ctx, owner, seq, key, fetcher := r.ctx, r.owner, r.seq, r.key, r.fetcher
	return func() tea.Msg {
		payload, err := fetcher.Fetch(ctx, key)
		return ResourceMsg{Owner: owner, Seq: seq, Key: key, Payload: payload, Err: err, At: time.Now()}
	}
}

// apply folds msg into the result. It reports whether msg belonged to this
// resource and was current.
func (r *resource[T]) apply(msg ResourceMsg) bool {
	if msg.Owner != r.owner || msg.Key != r.key {
		return false
	}
	if msg.Seq != r.seq {
		log.Printf("tui: dropping superseded %s result (seq %d, latest %d)", msg.Key, msg.Seq, r.seq)
		return false
	}
	if r.ctx.Err() != nil {
		return false
	}
	if msg.Err != nil {
		var zero T
		r.result = mockapi.Resolve(zero, msg.Err, msg.At)
		return true
	}
	v, err := mockapi.Decode[T](msg.Payload)
	r.result = mockapi.Resolve(v, err, msg.At)
	return true
}

func (r *resource[T]) close() {
	r.cancel()
}
