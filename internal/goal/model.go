package goal

import "time"

type Goal struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGoal carries the text of a goal about to be added.
type CreateGoal struct {
	Text string `json:"text"`
}
