package store

import (
	"fmt"
	"strings"

	"github.com/clipdeck/clipdeck/internal/types"
	"github.com/clipdeck/clipdeck/pkg/utils"

	"go.uber.org/zap"
)

// SnapshotKey is the fixed storage key the store persists under.
const SnapshotKey = "clip-items"

// generateID is a variable so tests can substitute deterministic ids.
var generateID = utils.NewItemID

// Backend is the key-value persistence collaborator. Get reports absence
// via its second return value rather than an error.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// CopyEvictor is notified when an item is deleted so transient copy state
// never outlives the item it refers to.
type CopyEvictor interface {
	Evict(id string)
}

// Store owns the authoritative ordered collection of clip items. All
// mutations keep ids pairwise distinct and write a full snapshot through
// the backend. Invalid input makes an operation a no-op; only backend
// write failures surface as errors, and those never roll back the
// in-memory mutation.
type Store struct {
	items   []types.ClipItem
	backend Backend
	evictor CopyEvictor
	logger  *zap.Logger
	key     string
}

// Config holds configuration for Store initialization
type Config struct {
	Backend Backend
	Evictor CopyEvictor
	Logger  *zap.Logger
	Key     string
}

// New creates an empty Store. Call Load to populate it from the backend.
func New(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	key := config.Key
	if key == "" {
		key = SnapshotKey
	}
	return &Store{
		backend: config.Backend,
		evictor: config.Evictor,
		logger:  logger,
		key:     key,
	}
}

// Load replaces the collection wholesale from the persisted snapshot. An
// absent snapshot leaves the collection empty. A snapshot that fails to
// parse or fails schema validation also leaves the collection empty: a
// corrupted persisted state must never prevent startup.
func (s *Store) Load() error {
	blob, found, err := s.backend.Get(s.key)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !found {
		s.items = nil
		return nil
	}

	items, err := types.DecodeItems(blob)
	if err != nil {
		s.logger.Warn("Discarding malformed snapshot", zap.Error(err))
		s.items = nil
		return nil
	}
	if !types.ValidateItems(items) {
		s.logger.Warn("Discarding snapshot with invalid ids", zap.Int("count", len(items)))
		s.items = nil
		return nil
	}

	s.items = items
	s.logger.Debug("Snapshot loaded", zap.Int("count", len(items)))
	return nil
}

// Items returns a copy of the collection in display order.
func (s *Store) Items() []types.ClipItem {
	out := make([]types.ClipItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items in the collection.
func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the item with the given id, if present.
func (s *Store) Get(id string) (types.ClipItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return types.ClipItem{}, false
}

// Create inserts a new item at the front of the collection and persists.
// Text with its trailing whitespace trimmed must be non-empty, else the
// call is a no-op and returns a nil item.
func (s *Store) Create(text string) (*types.ClipItem, error) {
	text = trimText(text)
	if text == "" {
		return nil, nil
	}

	item := types.ClipItem{ID: s.freshID(), Text: text}
	s.items = append([]types.ClipItem{item}, s.items...)

	s.logger.Debug("Item created", zap.String("id", item.ID))
	return &item, s.Persist()
}

// Update replaces the text of an existing item in place, preserving its id
// and position, and persists. Unknown ids and empty trimmed text are no-ops.
func (s *Store) Update(id, text string) error {
	text = trimText(text)
	if text == "" {
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Text = text
			s.logger.Debug("Item updated", zap.String("id", id))
			return s.Persist()
		}
	}
	return nil
}

// Delete removes the item with the given id if present, evicts its copy
// state, and persists. Unknown ids are a no-op.
func (s *Store) Delete(id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.evictor != nil {
				s.evictor.Evict(id)
			}
			s.logger.Debug("Item deleted", zap.String("id", id))
			return s.Persist()
		}
	}
	return nil
}

// Reorder moves the item at from to the position identified by to and
// persists. Both indices are validated against the pre-removal sequence;
// the item is removed at from and reinserted so it ends up at index to,
// which makes Reorder(to, from) its exact inverse. Out-of-range indices
// are a no-op.
func (s *Store) Reorder(from, to int) error {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil
	}
	if from == to {
		return nil
	}

	item := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	s.items = append(s.items[:to], append([]types.ClipItem{item}, s.items[to:]...)...)

	s.logger.Debug("Item reordered",
		zap.String("id", item.ID),
		zap.Int("from", from),
		zap.Int("to", to))
	return s.Persist()
}

// Persist serializes the full ordered collection and writes it wholesale
// under the store's key. A write failure is returned to the caller; the
// in-memory collection stays as it is.
func (s *Store) Persist() error {
	blob, err := types.EncodeItems(s.Items())
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.backend.Set(s.key, blob); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// freshID generates an id guaranteed unique against all current ids.
func (s *Store) freshID() string {
	for {
		id := generateID()
		if _, exists := s.Get(id); !exists {
			return id
		}
	}
}

func trimText(text string) string {
	return strings.TrimRight(text, " \t\r\n")
}
