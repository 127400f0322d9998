// Package ledger maps participants to the items they claim. It is the
// only writer of assignment records and is rebuilt from scratch
// whenever the active receipt is replaced, so no record can outlive
// the item it references.
package ledger

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/registry"
)

// Ledger holds the full set of assignment records for one receipt.
// Not safe for concurrent use; each session owns exactly one.
type Ledger struct {
	items  *registry.ItemRegistry
	people *registry.ParticipantRegistry

	// byParticipant preserves insertion order per participant.
	byParticipant map[string][]*models.Assignment
}

// New builds an empty ledger over the given registries.
func New(items *registry.ItemRegistry, people *registry.ParticipantRegistry) *Ledger {
	return &Ledger{
		items:         items,
		people:        people,
		byParticipant: make(map[string][]*models.Assignment),
	}
}

// Assign resolves itemKey (id, exact name, or fragment) and records a
// claim of count units for the participant. A resolver miss drops the
// request silently and returns false: interactive flows treat typos as
// no-ops, and callers that need strictness check the return value.
// Counts below 1 are treated as 1.
func (l *Ledger) Assign(participantID, itemKey string, count int) bool {
	if count < 1 {
		count = 1
	}
	item, ok := l.items.Resolve(itemKey)
	if !ok {
		slog.Debug("assignment dropped, item not resolved", "key", itemKey, "participant_id", participantID)
		return false
	}
	l.byParticipant[participantID] = append(l.byParticipant[participantID], &models.Assignment{
		ParticipantID: participantID,
		Item:          item,
		Count:         count,
	})
	return true
}

// Unassign removes every record for the exact (participant, item) pair.
// No-op if none exist; calling it twice is a no-op both times.
func (l *Ledger) Unassign(participantID, itemID string) {
	records := l.byParticipant[participantID]
	if len(records) == 0 {
		return
	}
	kept := records[:0]
	for _, a := range records {
		if a.Item.ID != itemID {
			kept = append(kept, a)
		}
	}
	l.byParticipant[participantID] = kept
}

// RemoveParticipant cascade-deletes all of a participant's records.
func (l *Ledger) RemoveParticipant(participantID string) {
	delete(l.byParticipant, participantID)
}

// AssignmentsFor returns the participant's records in insertion order.
func (l *Ledger) AssignmentsFor(participantID string) []*models.Assignment {
	records := l.byParticipant[participantID]
	out := make([]*models.Assignment, len(records))
	copy(out, records)
	return out
}

// TotalAssignedCount sums claimed units across all participants for
// one item. Callers compare it against the units they consider
// available (typically 1 per listed row) to detect over- or
// under-assignment; the ledger itself never enforces a cap.
func (l *Ledger) TotalAssignedCount(itemID string) int {
	total := 0
	for _, records := range l.byParticipant {
		for _, a := range records {
			if a.Item.ID == itemID {
				total += a.Count
			}
		}
	}
	return total
}

// ParticipantSubtotal is the 2-decimal sum of the participant's claims.
func (l *Ledger) ParticipantSubtotal(participantID string) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range l.byParticipant[participantID] {
		sum = sum.Add(a.TotalPrice())
	}
	return sum.Round(2)
}

// Summary maps participant display names to their subtotals, covering
// every registered participant (zero for those with no claims).
func (l *Ledger) Summary() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, l.people.Len())
	for _, p := range l.people.All() {
		out[p.Name] = l.ParticipantSubtotal(p.ID)
	}
	return out
}

// Participants exposes the participant registry the ledger reads from.
func (l *Ledger) Participants() *registry.ParticipantRegistry {
	return l.people
}

// Items exposes the item registry the ledger resolves against.
func (l *Ledger) Items() *registry.ItemRegistry {
	return l.items
}
