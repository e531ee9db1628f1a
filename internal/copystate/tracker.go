package copystate

import (
	"sync"
	"time"

	"github.com/clipdeck/clipdeck/internal/clipboard"

	"go.uber.org/zap"
)

// DefaultExpiry is how long an item stays marked as copied.
const DefaultExpiry = 3 * time.Second

// TextLookup resolves an item id to its current text. It reports false
// when the id is unknown.
type TextLookup func(id string) (string, bool)

// Tracker owns the transient "recently copied" markers. Marks are never
// persisted; each carries a timer that clears it after the expiry window.
// Repeated copies of the same id restart the window instead of stacking.
type Tracker struct {
	mu      sync.Mutex
	entries map[string]*entry
	seq     uint64

	expiry    time.Duration
	clipboard clipboard.Clipboard
	lookup    TextLookup
	logger    *zap.Logger
}

// Each entry keeps the sequence number of the timer that owns it, so an
// expiry firing after a reset cannot clear the newer mark.
type entry struct {
	timer *time.Timer
	seq   uint64
}

// TrackerConfig holds configuration for Tracker initialization
type TrackerConfig struct {
	Expiry    time.Duration
	Clipboard clipboard.Clipboard
	Lookup    TextLookup
	Logger    *zap.Logger
}

// NewTracker creates a new Tracker instance
func NewTracker(config TrackerConfig) *Tracker {
	expiry := config.Expiry
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		entries:   make(map[string]*entry),
		expiry:    expiry,
		clipboard: config.Clipboard,
		lookup:    config.Lookup,
		logger:    logger,
	}
}

// MarkCopied places the item's text on the system clipboard and marks the
// id as copied for the expiry window. A pending timer for the same id is
// cancelled first. The clipboard write error, if any, is returned, but the
// mark is recorded regardless: the copied indicator is a UI affordance,
// not tied to clipboard success.
func (t *Tracker) MarkCopied(id string) error {
	var clipErr error
	if t.clipboard != nil && t.lookup != nil {
		if text, ok := t.lookup(id); ok {
			clipErr = t.clipboard.WriteText(text)
			if clipErr != nil {
				t.logger.Warn("Clipboard write failed", zap.String("id", id), zap.Error(clipErr))
			}
		} else {
			t.logger.Debug("No text for copied id", zap.String("id", id))
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[id]; ok {
		e.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.entries[id] = &entry{
		seq: seq,
		timer: time.AfterFunc(t.expiry, func() {
			t.expire(id, seq)
		}),
	}

	return clipErr
}

// expire clears the mark when its timer fires. The sequence check makes
// this a no-op if the mark was reset or evicted in the meantime.
func (t *Tracker) expire(id string, seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[id]; ok && e.seq == seq {
		delete(t.entries, id)
		t.logger.Debug("Copied mark expired", zap.String("id", id))
	}
}

// IsCopied reports whether the id is currently marked as copied.
func (t *Tracker) IsCopied(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.entries[id]
	return ok
}

// Evict cancels any pending timer for the id and clears its mark. The
// store calls this on deletion so no transient state references a
// non-existent item. Unknown ids are a no-op.
func (t *Tracker) Evict(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[id]; ok {
		e.timer.Stop()
		delete(t.entries, id)
		t.logger.Debug("Copied mark evicted", zap.String("id", id))
	}
}
