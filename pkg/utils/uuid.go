package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NewItemID generates an identifier for a clip item: a millisecond
// timestamp component followed by a random component, so ids created
// within the same tick still differ.
func NewItemID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("item-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x-%x", time.Now().UnixMilli(), buf)
}
