package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/extract"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	tokens := NewTokenManager("test-secret-key-32-bytes-long!!!", time.Hour)
	return NewManager(tokens, "IDR")
}

func TestManagerCreateAndGet(t *testing.T) {
	m := newTestManager(t)

	ws, token, err := m.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ws.Currency != "IDR" {
		t.Errorf("currency = %q, want IDR", ws.Currency)
	}

	got, err := m.Get(token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != ws {
		t.Error("token resolved to a different workspace")
	}
}

func TestManagerRejectsBadToken(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Get("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestManagerDroppedSessionNotFound(t *testing.T) {
	m := newTestManager(t)
	ws, token, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	m.Drop(ws.ID)
	if _, err := m.Get(token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestTokenManagerRejectsForeignSignature(t *testing.T) {
	mint := NewTokenManager("secret-a", time.Hour)
	verify := NewTokenManager("secret-b", time.Hour)

	token, err := mint.Generate("session-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verify.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestReplaceReceiptKeepsParticipantsDropsAssignments(t *testing.T) {
	m := newTestManager(t)
	ws, _, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	ws.Items.AddItem("Latte", decimal.NewFromInt(25000), "")
	alice := ws.People.Add("Alice")
	if !ws.Ledger.Assign(alice.ID, "Latte", 1) {
		t.Fatal("setup assign failed")
	}

	ws.ReplaceReceipt(&extract.Result{
		Items: []extract.LineItem{{Name: "Cake", Price: decimal.NewFromInt(20000)}},
		Total: decimal.NewFromInt(22000),
	})

	if ws.People.Len() != 1 {
		t.Errorf("participants = %d, want 1 surviving replacement", ws.People.Len())
	}
	if got := ws.Ledger.AssignmentsFor(alice.ID); len(got) != 0 {
		t.Errorf("records = %d after replacement, want 0", len(got))
	}
	if ws.Items.Len() != 1 {
		t.Fatalf("items = %d, want 1", ws.Items.Len())
	}
	if got := ws.Items.Items()[0].Category; got == "" {
		t.Error("extracted item not auto-tagged")
	}
	if !ws.Receipt.Total.Equal(decimal.NewFromInt(22000)) {
		t.Errorf("total = %v, want 22000", ws.Receipt.Total)
	}
}

func TestRemoveParticipantCascades(t *testing.T) {
	m := newTestManager(t)
	ws, _, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	it := ws.Items.AddItem("Tea", decimal.NewFromInt(8000), "Beverage")
	alice := ws.People.Add("Alice")
	ws.Ledger.Assign(alice.ID, it.ID, 1)

	if !ws.RemoveParticipant(alice.ID) {
		t.Fatal("remove reported unknown id")
	}
	if got := ws.Ledger.TotalAssignedCount(it.ID); got != 0 {
		t.Errorf("assigned count = %d after removal, want 0", got)
	}
	if ws.RemoveParticipant(alice.ID) {
		t.Error("second removal reported success")
	}
}
