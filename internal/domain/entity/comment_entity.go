package entity

import "time"

// Comment is a remark left on a cafe page. Comments are never edited or
// deleted individually; they go away with their cafe.
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	OwnerID   int64     `json:"owner_id"`
	CafeID    int64     `json:"cafe_id"`
	CreatedAt time.Time `json:"created_at"`
}
