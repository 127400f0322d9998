// Package session gives each caller an exclusively-owned workspace:
// the active receipt, its registries, and the assignment ledger. The
// core assumes no storage backend beyond this; entities serialize to
// JSON when a snapshot needs to leave the session.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/extract"
	"github.com/andhikaps/patungan/internal/ledger"
	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/registry"
)

// ErrSessionNotFound is returned when a token references a session
// that no longer exists (expired or evicted).
var ErrSessionNotFound = errors.New("session not found")

// Workspace is one session's mutable state. All operations on a
// workspace execute synchronously within one logical user action;
// there is no cross-session sharing, so no locking beyond the
// manager's map guard.
type Workspace struct {
	ID        string
	CreatedAt time.Time
	Currency  string

	Receipt *models.Receipt
	Items   *registry.ItemRegistry
	People  *registry.ParticipantRegistry
	Ledger  *ledger.Ledger
}

func newWorkspace(id, currency string) *Workspace {
	w := &Workspace{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Currency:  currency,
		People:    registry.NewParticipantRegistry(nil),
	}
	w.install(models.NewReceipt(uuid.NewString(), decimal.Zero))
	return w
}

// install wires a receipt into fresh item registry and ledger.
func (w *Workspace) install(receipt *models.Receipt) {
	w.Receipt = receipt
	w.Items = registry.NewItemRegistry(receipt, nil, nil)
	w.Ledger = ledger.New(w.Items, w.People)
}

// ReplaceReceipt swaps in a newly extracted receipt. The item registry
// and the ledger are rebuilt from scratch, since assignment records
// against the previous receipt's items must not carry over. The
// participant list survives the re-upload.
func (w *Workspace) ReplaceReceipt(res *extract.Result) *models.Receipt {
	receipt := models.NewReceipt(uuid.NewString(), res.Total)
	w.install(receipt)
	for _, line := range res.Items {
		w.Items.AddItem(line.Name, line.Price, "")
	}
	return receipt
}

// RestoreReceipt swaps in a previously saved receipt snapshot,
// rebuilding registry and ledger around its existing items and ids.
func (w *Workspace) RestoreReceipt(receipt *models.Receipt) {
	w.install(receipt)
}

// RemoveParticipant deletes a participant and cascades into the
// ledger in the same step, so no assignment record can dangle.
// Returns false for an unknown id.
func (w *Workspace) RemoveParticipant(id string) bool {
	if !w.People.Remove(id) {
		return false
	}
	w.Ledger.RemoveParticipant(id)
	return true
}

// Manager owns all live workspaces and the token scheme binding
// callers to them.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Workspace
	tokens   *TokenManager
	currency string
}

// NewManager builds a session manager. currency is the default display
// currency stamped onto new workspaces.
func NewManager(tokens *TokenManager, currency string) *Manager {
	return &Manager{
		sessions: make(map[string]*Workspace),
		tokens:   tokens,
		currency: currency,
	}
}

// Create opens a fresh workspace and returns it with its access token.
func (m *Manager) Create() (*Workspace, string, error) {
	id := uuid.NewString()
	token, err := m.tokens.Generate(id)
	if err != nil {
		return nil, "", err
	}

	w := newWorkspace(id, m.currency)
	m.mu.Lock()
	m.sessions[id] = w
	m.mu.Unlock()
	return w, token, nil
}

// Get resolves a bearer token to its workspace.
func (m *Manager) Get(token string) (*Workspace, error) {
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	w, ok := m.sessions[claims.SessionID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// Drop discards a workspace.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}
