package refresh

import (
	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

type RefreshRequest struct {
	Id        uuid.UUID `json:"id"`
	Trigger   string    `json:"trigger"`
	State     State     `json:"state"`
	Message   string    `json:"message"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type RefreshResponseDTO struct {
	Id      uuid.UUID `json:"id"`
	Trigger string    `json:"trigger"`
	State   State     `json:"state"`
	Message string    `json:"message"`
}
