package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// Banner lifetimes.
const (
	SuccessStatusTTL = 2 * time.Second
	ErrorStatusTTL   = 3 * time.Second
)

// StatusNotifier holds the current status banner. Success and error banners
// hide themselves after their TTL; publishing a new status cancels the
// pending dismissal of the previous one. Pending banners stay until
// replaced.
type StatusNotifier struct {
	mu         sync.Mutex
	current    models.Status
	generation uint64
	timer      *time.Timer
	successTTL time.Duration
	errorTTL   time.Duration
	subs       []chan models.Status
}

func NewStatusNotifier(successTTL, errorTTL time.Duration) *StatusNotifier {
	return &StatusNotifier{
		current:    models.HiddenStatus(),
		successTTL: successTTL,
		errorTTL:   errorTTL,
	}
}

func (n *StatusNotifier) Pending(msg string) {
	n.Publish(models.Status{Visible: true, Kind: models.StatusPending, Message: msg})
}

func (n *StatusNotifier) Success(msg string) {
	n.Publish(models.Status{Visible: true, Kind: models.StatusSuccess, Message: msg})
}

func (n *StatusNotifier) Error(failure models.FailureKind, msg string) {
	n.Publish(models.Status{Visible: true, Kind: models.StatusError, Failure: failure, Message: msg})
}

// Publish replaces the current status.
func (n *StatusNotifier) Publish(s models.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = s
	n.broadcast(s)

	if !s.Visible {
		return
	}

	var ttl time.Duration
	switch s.Kind {
	case models.StatusSuccess:
		ttl = n.successTTL
	case models.StatusError:
		ttl = n.errorTTL
	default:
		return
	}

	gen := n.generation
	n.timer = time.AfterFunc(ttl, func() { n.dismiss(gen) })
}

// Current returns the visible banner, or the hidden status.
func (n *StatusNotifier) Current() models.Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Subscribe returns a channel receiving every status change. Slow readers
// only see the latest one.
func (n *StatusNotifier) Subscribe() <-chan models.Status {
	ch := make(chan models.Status, 1)

	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()

	return ch
}

func (n *StatusNotifier) dismiss(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// a newer status owns the banner
	if gen != n.generation {
		return
	}
	n.generation++
	n.timer = nil
	n.current = models.HiddenStatus()
	n.broadcast(n.current)
}

func (n *StatusNotifier) broadcast(s models.Status) {
	for _, ch := range n.subs {
		select {
		case ch <- s:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
