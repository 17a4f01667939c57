package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/example/atelier/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.CommissionGateway = (*mockCommissionGateway)(nil)
	_ secondary.CatalogGateway    = (*mockCatalogGateway)(nil)
	_ secondary.ArtistGateway     = (*mockArtistGateway)(nil)
	_ secondary.AuthGateway       = (*mockAuthGateway)(nil)
	_ secondary.SessionStore      = (*mockSessionStore)(nil)
	_ secondary.ActivityLog       = (*mockActivityLog)(nil)
	_ secondary.Notifier          = (*mockNotifier)(nil)
)

// mockCommissionGateway implements secondary.CommissionGateway for testing.
// It behaves like the server: created commissions copy their type's title and price.
type mockCommissionGateway struct {
	mu          sync.Mutex
	commissions []*secondary.CommissionRecord
	types       map[int]*secondary.CommissionTypeRecord
	nextID      int

	createErr error
	listErr   error
	updateErr error
	rateErr   error

	createCalls int
	listCalls   int
	updateCalls int
	rateCalls   int
	lastToken   string
	lastRole    string
	lastFrom    string
	lastTo      string

	// updateFn runs inside UpdateStage before the stage changes.
	updateFn func()

	// createEcho, when set, is returned by CreateCommission without being
	// stored, as if the list had not caught up with the create yet.
	createEcho *secondary.CommissionRecord
}

func newMockCommissionGateway() *mockCommissionGateway {
	return &mockCommissionGateway{
		types:  make(map[int]*secondary.CommissionTypeRecord),
		nextID: 100,
	}
}

func (m *mockCommissionGateway) addType(id int, title, price string) {
	m.types[id] = &secondary.CommissionTypeRecord{ID: id, Title: title, Price: decimal.RequireFromString(price), SellerID: 2}
}

func (m *mockCommissionGateway) add(id int, stage string, rating *int) {
	m.commissions = append(m.commissions, &secondary.CommissionRecord{
		ID:       id,
		BuyerID:  1,
		SellerID: 2,
		Title:    "Portrait",
		Price:    decimal.NewFromInt(1500),
		Stage:    stage,
		Rating:   rating,
	})
}

func (m *mockCommissionGateway) find(id int) *secondary.CommissionRecord {
	for _, c := range m.commissions {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *mockCommissionGateway) CreateCommission(ctx context.Context, token string, req secondary.CreateCommissionRecord) (*secondary.CommissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	m.lastToken = token
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.createEcho != nil {
		cp := *m.createEcho
		return &cp, nil
	}
	ct, ok := m.types[req.CommissionTypeID]
	if !ok {
		return nil, &secondary.APIError{StatusCode: http.StatusNotFound, Message: "Commission type not found"}
	}
	rec := &secondary.CommissionRecord{
		ID:          m.nextID,
		BuyerID:     1,
		SellerID:    ct.SellerID,
		Title:       ct.Title,
		Price:       ct.Price,
		Description: req.Description,
		Stage:       "Pending",
	}
	m.nextID++
	m.commissions = append(m.commissions, rec)
	cp := *rec
	return &cp, nil
}

func (m *mockCommissionGateway) ListCommissions(ctx context.Context, token, role string) ([]*secondary.CommissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	m.lastToken = token
	m.lastRole = role
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*secondary.CommissionRecord, len(m.commissions))
	for i, c := range m.commissions {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (m *mockCommissionGateway) UpdateStage(ctx context.Context, token string, commissionID int, from, to string) (*secondary.CommissionRecord, error) {
	m.mu.Lock()
	m.updateCalls++
	m.lastFrom, m.lastTo = from, to
	fn := m.updateFn
	m.mu.Unlock()

	if fn != nil {
		fn()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	c := m.find(commissionID)
	if c == nil {
		return nil, &secondary.APIError{StatusCode: http.StatusNotFound, Message: "Commission not found"}
	}
	c.Stage = to
	cp := *c
	return &cp, nil
}

func (m *mockCommissionGateway) RateCommission(ctx context.Context, token string, commissionID, rating int) (*secondary.CommissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateCalls++
	if m.rateErr != nil {
		return nil, m.rateErr
	}
	c := m.find(commissionID)
	if c == nil {
		return nil, &secondary.APIError{StatusCode: http.StatusNotFound, Message: "Commission not found"}
	}
	if c.Rating != nil {
		return nil, &secondary.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Commission already rated"}
	}
	r := rating
	c.Rating = &r
	cp := *c
	return &cp, nil
}

// mockCatalogGateway implements secondary.CatalogGateway for testing.
type mockCatalogGateway struct {
	catalogs  map[string][]*secondary.CommissionTypeRecord
	own       []*secondary.CommissionTypeRecord
	listErr   error
	updateErr error
	deleteErr error

	listCalls int
	updated   *secondary.CommissionTypeRecord
	deleted   []int
}

func newMockCatalogGateway() *mockCatalogGateway {
	return &mockCatalogGateway{catalogs: make(map[string][]*secondary.CommissionTypeRecord)}
}

func (m *mockCatalogGateway) ListCommissionTypes(ctx context.Context, username string) ([]*secondary.CommissionTypeRecord, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	types, ok := m.catalogs[username]
	if !ok {
		return nil, &secondary.APIError{StatusCode: http.StatusNotFound, Message: "Artist not found"}
	}
	return types, nil
}

func (m *mockCatalogGateway) ListOwnCommissionTypes(ctx context.Context, token string) ([]*secondary.CommissionTypeRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.own, nil
}

func (m *mockCatalogGateway) UpdateCommissionType(ctx context.Context, token string, rec *secondary.CommissionTypeRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = rec
	return nil
}

func (m *mockCatalogGateway) DeleteCommissionType(ctx context.Context, token string, commissionTypeID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, commissionTypeID)
	return nil
}

// mockArtistGateway implements secondary.ArtistGateway for testing.
type mockArtistGateway struct {
	artists []*secondary.ArtistRecord
	listErr error
}

func (m *mockArtistGateway) ListArtists(ctx context.Context) ([]*secondary.ArtistRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.artists, nil
}

func (m *mockArtistGateway) GetArtist(ctx context.Context, username string) (*secondary.ArtistRecord, error) {
	for _, a := range m.artists {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, &secondary.APIError{StatusCode: http.StatusNotFound, Message: "Artist not found"}
}

// mockAuthGateway implements secondary.AuthGateway for testing.
type mockAuthGateway struct {
	result   *secondary.LoginRecord
	loginErr error
}

func (m *mockAuthGateway) Login(ctx context.Context, email, password string) (*secondary.LoginRecord, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.result, nil
}

// mockSessionStore implements secondary.SessionStore for testing.
type mockSessionStore struct {
	session    *secondary.SessionRecord
	currentErr error
	saveErr    error
	clearErr   error
}

func (m *mockSessionStore) Current(ctx context.Context) (*secondary.SessionRecord, error) {
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	if m.session == nil {
		return nil, secondary.ErrNoSession
	}
	cp := *m.session
	return &cp, nil
}

func (m *mockSessionStore) Save(ctx context.Context, session *secondary.SessionRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *session
	m.session = &cp
	return nil
}

func (m *mockSessionStore) Clear(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.session = nil
	return nil
}

// mockActivityLog implements secondary.ActivityLog for testing.
type mockActivityLog struct {
	mu        sync.Mutex
	entries   []*secondary.ActivityRecord
	recordErr error
}

func (m *mockActivityLog) Record(ctx context.Context, entry *secondary.ActivityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityLog) ListRecent(ctx context.Context, limit int) ([]*secondary.ActivityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*secondary.ActivityRecord
	for i := len(m.entries) - 1; i >= 0; i-- {
		out = append(out, m.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type notice struct {
	level   string
	message string
}

// mockNotifier implements secondary.Notifier for testing.
type mockNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (m *mockNotifier) Notify(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, notice{level: level, message: message})
}

func (m *mockNotifier) messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.notices))
	for i, n := range m.notices {
		out[i] = n.message
	}
	return out
}

func buyerSession() *mockSessionStore {
	return &mockSessionStore{session: &secondary.SessionRecord{Token: "buyer-token", Role: "Buyer", UserID: 1, Email: "ben@example.com"}}
}

func sellerSession() *mockSessionStore {
	return &mockSessionStore{session: &secondary.SessionRecord{Token: "seller-token", Role: "Seller", UserID: 2, Email: "mara@example.com"}}
}

func intPtr(v int) *int { return &v }
