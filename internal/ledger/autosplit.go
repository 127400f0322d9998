package ledger

import "log/slog"

// AutoSplitMode selects the heuristic used by AutoSplit.
type AutoSplitMode string

const (
	// SplitEqual deals items out one by one across participants.
	SplitEqual AutoSplitMode = "equal"
	// SplitByCategory assigns whole category blocks, one block per
	// participant in rotation, so one person picks up all the
	// beverages, the next all the food, and so on.
	SplitByCategory AutoSplitMode = "category"
)

// AutoSplit assigns every item to exactly one participant using the
// chosen heuristic. Distribution is round-robin in registry order, so
// the same inputs always produce the same assignments. Returns the
// number of records created; zero when there are no participants.
func (l *Ledger) AutoSplit(mode AutoSplitMode) int {
	people := l.people.All()
	if len(people) == 0 {
		slog.Debug("auto split skipped, no participants")
		return 0
	}

	assigned := 0
	switch mode {
	case SplitByCategory:
		// Group items into category blocks, preserving first-seen
		// category order.
		var categories []string
		blocks := make(map[string][]string)
		for _, it := range l.items.Items() {
			if _, seen := blocks[it.Category]; !seen {
				categories = append(categories, it.Category)
			}
			blocks[it.Category] = append(blocks[it.Category], it.ID)
		}
		for i, cat := range categories {
			p := people[i%len(people)]
			for _, itemID := range blocks[cat] {
				if l.Assign(p.ID, itemID, 1) {
					assigned++
				}
			}
		}
	default:
		for i, it := range l.items.Items() {
			p := people[i%len(people)]
			if l.Assign(p.ID, it.ID, 1) {
				assigned++
			}
		}
	}
	return assigned
}
