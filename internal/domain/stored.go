package domain

import "time"

// StoredRecord is an item record as persisted by an item store.
// Category and ItemID form the key.
type StoredRecord struct {
	Category    string    `json:"category"`
	ItemID      string    `json:"item_id"`
	Filename    string    `json:"filename"`
	Data        Record    `json:"data"`
	ContentHash string    `json:"content_hash"`
	UpdatedAt   time.Time `json:"updated_at"`
}
