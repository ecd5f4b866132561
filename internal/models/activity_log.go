package models

import "time"

// ActivityLog records auth events (register, login). Informational only;
// nothing in the request path depends on it.
type ActivityLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
