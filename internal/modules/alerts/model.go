// README: User alert aggregate and status values.
package alerts

import (
	"time"

	"khusela/internal/types"
)

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

func ValidStatus(s Status) bool {
	return s == StatusUnread || s == StatusRead
}

type Alert struct {
	ID        types.ID  `json:"id"`
	UserID    types.ID  `json:"userId"`
	Title     string    `json:"title"`
	Type      string    `json:"type,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
