package utils

import "github.com/google/uuid"

// NewItemID generates a unique ID for a bill item. Item IDs key the split
// assignments, so they must stay unique within a bill.
func NewItemID() string {
	return uuid.NewString()
}
