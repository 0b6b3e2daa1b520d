package contact

import "strings"

// Contact is a validated submission persisted by the store.
type Contact struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`
	Mobile    string `json:"mobile" db:"mobile"`
	Location  string `json:"location" db:"location"`
}

// Input carries the raw submission fields as received from the form or the JSON API.
type Input struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required"`
	LastName  string `json:"last_name" form:"last_name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required"`
	Mobile    string `json:"mobile" form:"mobile" validate:"required"`
	Location  string `json:"location" form:"location" validate:"required"`
}

// Normalize returns a copy of the input with surrounding whitespace removed
// from every field. Fields are cloned because fiber's parsed form values alias
// the request buffer, which is reused after the handler returns.
func (in Input) Normalize() Input {
	return Input{
		FirstName: normalize(in.FirstName),
		LastName:  normalize(in.LastName),
		Email:     normalize(in.Email),
		Mobile:    normalize(in.Mobile),
		Location:  normalize(in.Location),
	}
}

func normalize(s string) string {
	return strings.Clone(strings.TrimSpace(s))
}
