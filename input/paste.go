package input

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// RequestID identifies one paste request.
type RequestID uint64

// ReadFunc reads the clipboard. It may block; it runs off the frame.
type ReadFunc func() (string, error)

type pasteResult struct {
	text string
	done bool
}

// PasteQueue decouples asynchronous clipboard reads from the frame: Submit
// starts a read and Poll collects its result on a later frame.
type PasteQueue struct {
	read ReadFunc

	mu      sync.Mutex
	next    RequestID
	results map[RequestID]*pasteResult
}

func NewPasteQueue(read ReadFunc) *PasteQueue {
	return &PasteQueue{read: read, results: make(map[RequestID]*pasteResult)}
}

// Submit starts a clipboard read and returns its id.
func (q *PasteQueue) Submit() RequestID {
	q.mu.Lock()
	q.next++
	id := q.next
	q.results[id] = &pasteResult{}
	q.mu.Unlock()

	go func() {
		text, err := "", error(nil)
		if q.read != nil {
			text, err = q.read()
		}
		if err != nil {
			log.Warn().Err(err).Uint64("request", uint64(id)).Msg("clipboard read failed")
			text = ""
		}
		q.mu.Lock()
		if r, ok := q.results[id]; ok {
			r.text = text
			r.done = true
		}
		q.mu.Unlock()
	}()
	return id
}

// Poll returns the result of id once the read has finished. A finished
// request is forgotten; failed reads yield "".
func (q *PasteQueue) Poll(id RequestID) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	r, ok := q.results[id]
	if !ok || !r.done {
		return "", false
	}
	delete(q.results, id)
	return r.text, true
}

// Cancel forgets id; a late result is dropped.
func (q *PasteQueue) Cancel(id RequestID) {
	q.mu.Lock()
	delete(q.results, id)
	q.mu.Unlock()
}

// Pending returns the number of requests not yet collected.
func (q *PasteQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.results)
}
