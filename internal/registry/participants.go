package registry

import (
	"github.com/google/uuid"

	"github.com/andhikaps/patungan/internal/models"
)

// ParticipantRegistry is the set of people involved in a split, in
// insertion order. Names may repeat; ids never do.
type ParticipantRegistry struct {
	order []*models.Participant
	index map[string]*models.Participant
	newID IDSource
}

// NewParticipantRegistry builds an empty registry. A nil id source
// defaults to UUIDs.
func NewParticipantRegistry(newID IDSource) *ParticipantRegistry {
	if newID == nil {
		newID = uuid.NewString
	}
	return &ParticipantRegistry{
		index: make(map[string]*models.Participant),
		newID: newID,
	}
}

// Add creates a participant with a fresh id and normalized name.
func (r *ParticipantRegistry) Add(name string) *models.Participant {
	p := models.NewParticipant(r.newID(), name)
	r.order = append(r.order, p)
	r.index[p.ID] = p
	return p
}

// Remove deletes the participant with the given id. The caller is
// responsible for cascading into the assignment ledger (the session
// workspace does both in one step). Returns false if the id is unknown.
func (r *ParticipantRegistry) Remove(id string) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	delete(r.index, id)
	for i, p := range r.order {
		if p.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the participant with the given id.
func (r *ParticipantRegistry) Get(id string) (*models.Participant, bool) {
	p, ok := r.index[id]
	return p, ok
}

// All returns participants in insertion order.
func (r *ParticipantRegistry) All() []*models.Participant {
	return r.order
}

// Len reports the number of participants.
func (r *ParticipantRegistry) Len() int {
	return len(r.order)
}
