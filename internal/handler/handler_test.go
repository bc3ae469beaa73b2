package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/economy"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/marriage"
)

// MockBackend mocks the store backend ping
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type connector bool

func (c connector) Connected() bool { return bool(c) }

// The read handlers only touch one method of each service; the embedded
// interfaces leave the rest unimplemented.
type stubEggs struct {
	egg.Service
	views map[string]egg.StatusView
}

func (s stubEggs) Status(_ context.Context, callerID string) egg.StatusView {
	return s.views[callerID]
}

type stubLedger struct {
	economy.Service
	balances map[string]int
}

func (s stubLedger) Balance(userID string) int { return s.balances[userID] }

type stubInventory struct {
	inventory.Service
	listing inventory.Listing
}

func (s stubInventory) List(string) inventory.Listing { return s.listing }

type stubMarriages struct {
	marriage.Service
	pairs []marriage.Pair
}

func (s stubMarriages) Pairs() []marriage.Pair { return s.pairs }

func serve(pattern string, h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get(pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandleHealthz(t *testing.T) {
	w := serve("/healthz", HandleHealthz(), "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
	assert.Equal(t, contentTypeJSON, w.Header().Get(headerContentType))
}

func TestHandleReadyz(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		backend := &MockBackend{}
		backend.On("Ping", mock.Anything).Return(nil)

		w := serve("/readyz", HandleReadyz(backend, connector(true)), "/readyz")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		backend.AssertExpectations(t)
	})

	t.Run("storage down", func(t *testing.T) {
		backend := &MockBackend{}
		backend.On("Ping", mock.Anything).Return(assert.AnError)

		w := serve("/readyz", HandleReadyz(backend, nil), "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgStorageUnavailable)
	})

	t.Run("gateway not connected", func(t *testing.T) {
		backend := &MockBackend{}
		backend.On("Ping", mock.Anything).Return(nil)

		w := serve("/readyz", HandleReadyz(backend, connector(false)), "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgDiscordNotReady)
	})
}

func TestHandleGetEgg(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	eggs := stubEggs{views: map[string]egg.StatusView{
		"1": {Own: &egg.View{OwnerID: "1", Egg: domain.NewEgg("Pip", domain.GenderFemale, created)}},
	}}

	w := serve("/eggs/{userID}", HandleGetEgg(eggs), "/eggs/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"eggName":"Pip"`)
	assert.Contains(t, w.Body.String(), `"owner_id":"1"`)

	w = serve("/eggs/{userID}", HandleGetEgg(eggs), "/eggs/2")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"user has no egg"}`, w.Body.String())
}

func TestHandleGetBalance(t *testing.T) {
	ledger := stubLedger{balances: map[string]int{"1": 120}}

	w := serve("/balances/{userID}", HandleGetBalance(ledger), "/balances/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"user_id":"1","balance":120}}`, w.Body.String())

	w = serve("/balances/{userID}", HandleGetBalance(ledger), "/balances/2")
	assert.JSONEq(t, `{"data":{"user_id":"2","balance":0}}`, w.Body.String())
}

func TestHandleGetInventory(t *testing.T) {
	inv := stubInventory{listing: inventory.Listing{Pets: []inventory.Item{{ID: "dog", Label: "Dog"}}}}

	w := serve("/inventory/{userID}", HandleGetInventory(inv), "/inventory/1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"user_id":"1","items":{"pets":[{"id":"dog","label":"Dog"}],"apparel":null}}}`, w.Body.String())
}

func TestHandleListMarriages(t *testing.T) {
	w := serve("/marriages", HandleListMarriages(stubMarriages{}), "/marriages")
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())

	w = serve("/marriages", HandleListMarriages(stubMarriages{pairs: []marriage.Pair{{A: "1", B: "2"}}}), "/marriages")
	assert.JSONEq(t, `{"data":[{"a":"1","b":"2"}]}`, w.Body.String())
}

func TestPutBuffer_DropsOversizedBuffers(t *testing.T) {
	buf := getBuffer()
	buf.Grow(maxPooledBufferSize * 2)
	buf.WriteString("payload")
	putBuffer(buf)
	assert.Equal(t, "payload", buf.String(), "oversized buffers are not reset for reuse")

	small := getBuffer()
	small.WriteString("payload")
	putBuffer(small)
	assert.Zero(t, small.Len())
}
