package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoPrompt = errors.New("no interactive prompt is running")

// sender is the part of *tea.Program the approver needs.
type sender interface {
	Send(msg tea.Msg)
}

// approvalRequestMsg asks the user to confirm a wallet signature. The
// answer is written to reply exactly once.
type approvalRequestMsg struct {
	action string
	reply  chan<- bool
}

// Approver shows wallet signature requests in the running TUI. It is
// created before the program so the wallet signer can hold it from startup.
type Approver struct {
	mu      sync.Mutex
	program sender
}

func NewApprover() *Approver {
	return &Approver{}
}

// Approve blocks until the user answers the prompt or ctx is done.
func (a *Approver) Approve(ctx context.Context, action string) (bool, error) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()

	if p == nil {
		return false, errNoPrompt
	}

	reply := make(chan bool, 1)
	p.Send(approvalRequestMsg{action: action, reply: reply})

	select {
	case approved := <-reply:
		return approved, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (a *Approver) attach(p sender) {
	a.mu.Lock()
	a.program = p
	a.mu.Unlock()
}

func (a *Approver) detach() {
	a.attach(nil)
}
