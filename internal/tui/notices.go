package tui

import "sync"

// noticeLevel classifies a user-facing message.
type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

// notice is one user-facing message from the session store's side channel.
type notice struct {
	level noticeLevel
	text  string
}

// noticeBuffer collects session notifications so commands can hand them to
// the UI once the operation finishes. It implements session.Notifier.
type noticeBuffer struct {
	mu      sync.Mutex
	pending []notice
}

func (b *noticeBuffer) Success(msg string) { b.add(notice{level: noticeSuccess, text: msg}) }
func (b *noticeBuffer) Error(msg string)   { b.add(notice{level: noticeError, text: msg}) }
func (b *noticeBuffer) Info(msg string)    { b.add(notice{level: noticeInfo, text: msg}) }

func (b *noticeBuffer) add(n notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, n)
}

// drain returns and clears the collected notices.
func (b *noticeBuffer) drain() []notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := b.pending
	b.pending = nil
	return drained
}
