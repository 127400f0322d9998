package ledger

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/registry"
)

func seq(prefix string) registry.IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func newTestLedger() (*registry.ItemRegistry, *registry.ParticipantRegistry, *Ledger) {
	receipt := models.NewReceipt("r-1", decimal.Zero)
	items := registry.NewItemRegistry(receipt, seq("item"), nil)
	people := registry.NewParticipantRegistry(seq("p"))
	return items, people, New(items, people)
}

func TestAssign(t *testing.T) {
	items, people, led := newTestLedger()
	items.AddItem("Latte", d(25000), "Beverage")
	alice := people.Add("Alice")

	if !led.Assign(alice.ID, "latte", 1) {
		t.Fatal("assign by name fragment failed")
	}
	if got := led.AssignmentsFor(alice.ID); len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	if !led.ParticipantSubtotal(alice.ID).Equal(d(25000)) {
		t.Errorf("subtotal = %v, want 25000", led.ParticipantSubtotal(alice.ID))
	}
}

func TestAssignUnresolvedKeyIsSilentNoOp(t *testing.T) {
	items, people, led := newTestLedger()
	items.AddItem("Latte", d(25000), "Beverage")
	alice := people.Add("Alice")

	if led.Assign(alice.ID, "sushi", 1) {
		t.Fatal("assign of unknown key reported success")
	}
	if got := led.AssignmentsFor(alice.ID); len(got) != 0 {
		t.Errorf("records = %d, want none", len(got))
	}
}

func TestAssignClampsCountToOne(t *testing.T) {
	items, people, led := newTestLedger()
	it := items.AddItem("Tea", d(8000), "Beverage")
	alice := people.Add("Alice")

	led.Assign(alice.ID, it.ID, 0)
	if got := led.AssignmentsFor(alice.ID)[0].Count; got != 1 {
		t.Errorf("count = %d, want clamped to 1", got)
	}
}

func TestUnassignIsIdempotent(t *testing.T) {
	items, people, led := newTestLedger()
	it := items.AddItem("Tea", d(8000), "Beverage")
	alice := people.Add("Alice")
	led.Assign(alice.ID, it.ID, 1)

	led.Unassign(alice.ID, it.ID)
	if got := led.AssignmentsFor(alice.ID); len(got) != 0 {
		t.Fatalf("records = %d after unassign, want 0", len(got))
	}

	// Second call must be a no-op, not an error.
	led.Unassign(alice.ID, it.ID)
	if got := led.AssignmentsFor(alice.ID); len(got) != 0 {
		t.Errorf("records = %d after repeat unassign, want 0", len(got))
	}
}

func TestRemoveParticipantCascades(t *testing.T) {
	items, people, led := newTestLedger()
	it := items.AddItem("Tea", d(8000), "Beverage")
	alice := people.Add("Alice")
	led.Assign(alice.ID, it.ID, 2)

	led.RemoveParticipant(alice.ID)
	if got := led.AssignmentsFor(alice.ID); len(got) != 0 {
		t.Errorf("records = %d after removal, want 0", len(got))
	}
	if got := led.TotalAssignedCount(it.ID); got != 0 {
		t.Errorf("assigned count = %d after removal, want 0", got)
	}
}

func TestTotalAssignedCountAcrossParticipants(t *testing.T) {
	items, people, led := newTestLedger()
	it := items.AddItem("Pizza", d(60000), "Food")
	alice := people.Add("Alice")
	bob := people.Add("Bob")
	led.Assign(alice.ID, it.ID, 1)
	led.Assign(bob.ID, it.ID, 2)

	if got := led.TotalAssignedCount(it.ID); got != 3 {
		t.Errorf("assigned count = %d, want 3", got)
	}
}

func TestSummaryCoversEveryParticipant(t *testing.T) {
	items, people, led := newTestLedger()
	it := items.AddItem("Pizza", d(60000), "Food")
	alice := people.Add("Alice")
	people.Add("Bob")
	led.Assign(alice.ID, it.ID, 1)

	summary := led.Summary()
	if len(summary) != 2 {
		t.Fatalf("summary entries = %d, want 2", len(summary))
	}
	if !summary["Alice"].Equal(d(60000)) {
		t.Errorf("Alice = %v, want 60000", summary["Alice"])
	}
	if !summary["Bob"].IsZero() {
		t.Errorf("Bob = %v, want 0", summary["Bob"])
	}
}
