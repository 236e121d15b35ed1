package request

import "encoding/json"

type CreateTripRequest struct {
	UserEmail     string          `json:"user_email" validate:"required,email"`
	Destination   string          `json:"destination" validate:"required"`
	Days          int             `json:"days" validate:"required,gt=0"`
	Budget        string          `json:"budget" validate:"required"`
	Travellers    string          `json:"travellers" validate:"required"`
	UserSelection json.RawMessage `json:"user_selection"`
}
