package domain

import "time"

// Payment is one processed charge from the payment provider. Records are
// append-only: created exactly once per successful charge, never updated.
type Payment struct {
	ID         int64   `json:"id"`
	Reference  string  `json:"reference"`
	Status     string  `json:"status"`
	Amount     int64   `json:"amount"`
	Email      string  `json:"email"`
	FullName   *string `json:"full_name"`
	PaidAt     string  `json:"paid_at"`
	ChatID     *string `json:"chat_id"`
	InviteLink *string `json:"invite_link"`

	CreatedAt time.Time `json:"-"`
}
