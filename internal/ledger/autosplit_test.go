package ledger

import "testing"

func TestAutoSplitEqual(t *testing.T) {
	items, people, led := newTestLedger()
	items.AddItem("Soup", d(12000), "Food")
	items.AddItem("Rice", d(8000), "Food")
	items.AddItem("Tea", d(10000), "Beverage")
	alice := people.Add("Alice")
	bob := people.Add("Bob")

	if got := led.AutoSplit(SplitEqual); got != 3 {
		t.Fatalf("records created = %d, want 3", got)
	}

	// Round-robin in item order: Alice gets items 1 and 3, Bob item 2.
	if got := len(led.AssignmentsFor(alice.ID)); got != 2 {
		t.Errorf("Alice records = %d, want 2", got)
	}
	if got := len(led.AssignmentsFor(bob.ID)); got != 1 {
		t.Errorf("Bob records = %d, want 1", got)
	}
	for _, it := range items.Items() {
		if got := led.TotalAssignedCount(it.ID); got != 1 {
			t.Errorf("item %q assigned %d times, want exactly 1", it.Name, got)
		}
	}
}

func TestAutoSplitByCategory(t *testing.T) {
	items, people, led := newTestLedger()
	items.AddItem("Soup", d(12000), "Food")
	items.AddItem("Tea", d(10000), "Beverage")
	items.AddItem("Rice", d(8000), "Food")
	alice := people.Add("Alice")
	bob := people.Add("Bob")

	if got := led.AutoSplit(SplitByCategory); got != 3 {
		t.Fatalf("records created = %d, want 3", got)
	}

	// Category blocks in first-seen order: Food to Alice, Beverage to Bob.
	for _, a := range led.AssignmentsFor(alice.ID) {
		if a.Item.Category != "Food" {
			t.Errorf("Alice got %q (%s), want only Food", a.Item.Name, a.Item.Category)
		}
	}
	for _, a := range led.AssignmentsFor(bob.ID) {
		if a.Item.Category != "Beverage" {
			t.Errorf("Bob got %q (%s), want only Beverage", a.Item.Name, a.Item.Category)
		}
	}
}

func TestAutoSplitNoParticipants(t *testing.T) {
	items, _, led := newTestLedger()
	items.AddItem("Soup", d(12000), "Food")

	if got := led.AutoSplit(SplitEqual); got != 0 {
		t.Errorf("records created = %d, want 0 with no participants", got)
	}
}
