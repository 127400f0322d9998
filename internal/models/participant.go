package models

// Participant is a person splitting the bill. Names are display-only
// and need not be unique; identity is the id.
type Participant struct {
	Entity

	// Name is the display name, normalized (trimmed, title-cased).
	Name string `json:"name"`
}

// NewParticipant builds a Participant with a normalized name.
func NewParticipant(id, name string) *Participant {
	return &Participant{Entity: NewEntity(id), Name: NormalizeName(name)}
}
