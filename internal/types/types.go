package types

import "encoding/json"

// ClipItem represents a single stored text snippet. The ID is assigned at
// creation and never changes; Text is the snippet content with trailing
// whitespace already trimmed.
type ClipItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Equal compares two ClipItems for equality.
func (c1 *ClipItem) Equal(c2 *ClipItem) bool {
	if c1 == nil || c2 == nil {
		return c1 == c2
	}
	return c1.ID == c2.ID && c1.Text == c2.Text
}

// EncodeItems serializes an ordered sequence of items into the snapshot
// blob written to the persistence backend. The order of the encoded array
// is the authoritative display order.
func EncodeItems(items []ClipItem) (string, error) {
	encoded, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DecodeItems parses a snapshot blob back into an ordered sequence of
// items. A record missing its text field decodes with an empty string.
// Malformed input returns an error; callers are expected to degrade to an
// empty collection rather than propagate it.
func DecodeItems(blob string) ([]ClipItem, error) {
	var items []ClipItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ValidateItems reports whether a decoded sequence satisfies the store's
// schema: every id non-empty and pairwise distinct.
func ValidateItems(items []ClipItem) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return false
		}
		if _, dup := seen[item.ID]; dup {
			return false
		}
		seen[item.ID] = struct{}{}
	}
	return true
}
