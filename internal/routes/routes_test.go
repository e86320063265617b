package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/moving-backoffice/internal/audit"
	"github.com/BruksfildServices01/moving-backoffice/internal/config"
	infraRepo "github.com/BruksfildServices01/moving-backoffice/internal/infra/repository"
	ucOverview "github.com/BruksfildServices01/moving-backoffice/internal/usecase/overview"
)

// ======================================================
// FAKE BACKEND
// ======================================================

type backendCall struct {
	Method string
	Path   string
	Body   map[string]any
}

type fakeBackend struct {
	mu    sync.Mutex
	calls []backendCall
	fail  map[string]bool
}

func (b *fakeBackend) writes() []backendCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []backendCall
	for _, c := range b.calls {
		if c.Method != http.MethodGet {
			out = append(out, c)
		}
	}
	return out
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := backendCall{Method: r.Method, Path: r.URL.Path}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}

	b.mu.Lock()
	b.calls = append(b.calls, call)
	fail := b.fail[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if fail {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/orders":
		io.WriteString(w, `[{"orderId":1,"customerId":1,"consultantId":1,"note":""}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/customers":
		io.WriteString(w, `[{"customerId":1,"customerName":"Ola Nordmann","customerEmail":"ola@example.no","customerPhone":4791234567}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/salesconsultants":
		io.WriteString(w, `[{"consultantId":1,"consultantName":"Per","consultantPhone":4790000000,"consultantEmail":"per@example.no"}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/orderservicetypes":
		io.WriteString(w, `[{"orderServiceTypeId":1,"orderId":1,"serviceId":1,"fromAddress":"A","toAddress":"B","scheduleDate":"2024-05-01","price":1000}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/servicetypes":
		io.WriteString(w, `[{"serviceId":1,"serviceName":"Moving"}]`)
	case r.Method == http.MethodPost && r.URL.Path == "/orders":
		io.WriteString(w, `{"orderId":2,"customerId":1,"consultantId":1,"note":""}`)
	case r.Method == http.MethodPost && r.URL.Path == "/orderservicetypes":
		io.WriteString(w, `{"orderServiceTypeId":2,"orderId":2,"serviceId":1}`)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// ======================================================
// HELPERS
// ======================================================

func newServer(t *testing.T, backend *fakeBackend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		Timezone:       "Europe/Oslo",
		CurrencySuffix: "NOK",
		ViewTTL:        time.Hour,
	}

	dispatcher := audit.NewDispatcher(audit.Discard{})
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	RegisterRoutes(
		r,
		nil,
		cfg,
		infraRepo.NewCollectionsHTTPRepository(srv.URL, srv.Client(), time.Second),
		ucOverview.NewRegistry(cfg.ViewTTL),
		dispatcher,
	)
	return r
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w.Code, out
}

func mount(t *testing.T, r http.Handler) (string, string) {
	t.Helper()
	code, body := do(t, r, http.MethodPost, "/api/views", "", nil)
	if code != http.StatusCreated {
		t.Fatalf("mount: expected 201, got %d (%v)", code, body)
	}
	return body["view_id"].(string), body["token"].(string)
}

// ======================================================
// TESTS
// ======================================================

func TestEditAndSaveRow(t *testing.T) {
	backend := &fakeBackend{}
	r := newServer(t, backend)
	viewID, token := mount(t, r)
	base := "/api/views/" + viewID

	code, _ := do(t, r, http.MethodPatch, base+"/rows/1", "", map[string]any{"field": "note", "value": "fragile"})
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}

	code, table := do(t, r, http.MethodPatch, base+"/rows/1", token, map[string]any{"field": "note", "value": "fragile"})
	if code != http.StatusOK {
		t.Fatalf("edit note: expected 200, got %d (%v)", code, table)
	}
	row := table["rows"].([]any)[0].(map[string]any)
	if row["note"] != "fragile" || row["phase"] != "editing" || row["customerName"] != "Ola Nordmann" {
		t.Fatalf("unexpected row %v", row)
	}

	code, _ = do(t, r, http.MethodPatch, base+"/rows/1", token, map[string]any{"field": "price", "value": 1200})
	if code != http.StatusOK {
		t.Fatalf("edit price: expected 200, got %d", code)
	}

	if got := backend.writes(); len(got) != 0 {
		t.Fatalf("edits must not reach the backend, got %v", got)
	}

	code, prompt := do(t, r, http.MethodPost, base+"/rows/1/save", token, nil)
	if code != http.StatusAccepted {
		t.Fatalf("request save: expected 202, got %d (%v)", code, prompt)
	}
	confirmationID := prompt["confirmationId"].(string)

	code, body := do(t, r, http.MethodPost, base+"/confirmations/"+confirmationID, token, map[string]any{"confirm": true})
	if code != http.StatusOK {
		t.Fatalf("resolve: expected 200, got %d (%v)", code, body)
	}
	if body["resolution"].(map[string]any)["outcome"] != "saved" {
		t.Fatalf("unexpected resolution %v", body["resolution"])
	}

	writes := backend.writes()
	if len(writes) != 2 {
		t.Fatalf("expected 2 writes, got %v", writes)
	}
	if writes[0].Method != http.MethodPut || writes[0].Path != "/orders/1" || writes[0].Body["note"] != "fragile" {
		t.Fatalf("unexpected order write %+v", writes[0])
	}
	if writes[1].Method != http.MethodPut || writes[1].Path != "/orderservicetypes/1" || writes[1].Body["price"] != float64(1200) {
		t.Fatalf("unexpected detail write %+v", writes[1])
	}
}

func TestTokenIsBoundToItsView(t *testing.T) {
	r := newServer(t, &fakeBackend{})
	_, tokenA := mount(t, r)
	viewB, _ := mount(t, r)

	code, _ := do(t, r, http.MethodGet, "/api/views/"+viewB, tokenA, nil)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestMountFailure(t *testing.T) {
	r := newServer(t, &fakeBackend{fail: map[string]bool{"GET /servicetypes": true}})

	code, body := do(t, r, http.MethodPost, "/api/views", "", nil)
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if body["error_code"] != "load_failed" || body["message"] != "Failed to load data" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCreateDraft(t *testing.T) {
	backend := &fakeBackend{}
	r := newServer(t, backend)
	viewID, token := mount(t, r)
	base := "/api/views/" + viewID

	code, body := do(t, r, http.MethodPost, base+"/draft/save", token, nil)
	if code != http.StatusBadRequest || body["message"] != "Please fill in all required fields!" {
		t.Fatalf("expected validation error, got %d (%v)", code, body)
	}
	if len(backend.writes()) != 0 {
		t.Fatalf("validation must not write")
	}

	for field, value := range map[string]any{
		"fromAddress":  "Storgata 1",
		"toAddress":    "Kirkeveien 2",
		"scheduleDate": "2024-07-01",
		"price":        "2500",
	} {
		code, body := do(t, r, http.MethodPatch, base+"/draft", token, map[string]any{"field": field, "value": value})
		if code != http.StatusOK {
			t.Fatalf("set %s: expected 200, got %d (%v)", field, code, body)
		}
	}

	code, body = do(t, r, http.MethodPost, base+"/draft/save", token, nil)
	if code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", code, body)
	}

	writes := backend.writes()
	if len(writes) != 2 || writes[0].Path != "/orders" || writes[1].Path != "/orderservicetypes" {
		t.Fatalf("unexpected writes %+v", writes)
	}
	if writes[1].Body["orderId"] != float64(2) {
		t.Fatalf("detail must use the new order id, got %v", writes[1].Body["orderId"])
	}
}

func TestPartiallyCreated(t *testing.T) {
	backend := &fakeBackend{fail: map[string]bool{"POST /orderservicetypes": true}}
	r := newServer(t, backend)
	viewID, token := mount(t, r)
	base := "/api/views/" + viewID

	for field, value := range map[string]any{
		"fromAddress":  "A",
		"toAddress":    "B",
		"scheduleDate": "2024-07-01",
		"price":        100,
	} {
		do(t, r, http.MethodPatch, base+"/draft", token, map[string]any{"field": field, "value": value})
	}

	code, body := do(t, r, http.MethodPost, base+"/draft/save", token, nil)
	if code != http.StatusBadGateway || body["error_code"] != "partially_created" {
		t.Fatalf("expected partially_created, got %d (%v)", code, body)
	}
	if !strings.Contains(body["message"].(string), "Order 2") {
		t.Fatalf("message must name the orphan order: %v", body["message"])
	}
}

func TestReferenceLists(t *testing.T) {
	r := newServer(t, &fakeBackend{})

	code, body := do(t, r, http.MethodGet, "/api/customers?query=nordmann", "", nil)
	if code != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("unexpected customers %d %v", code, body)
	}

	code, body = do(t, r, http.MethodGet, "/api/customers?query=nobody", "", nil)
	if code != http.StatusOK || body["total"] != float64(0) {
		t.Fatalf("unexpected customers %d %v", code, body)
	}

	code, body = do(t, r, http.MethodGet, "/api/service-types", "", nil)
	if code != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("unexpected service types %d %v", code, body)
	}
}

func TestCloseView(t *testing.T) {
	r := newServer(t, &fakeBackend{})
	viewID, token := mount(t, r)

	code, _ := do(t, r, http.MethodDelete, "/api/views/"+viewID, token, nil)
	if code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", code)
	}

	code, body := do(t, r, http.MethodGet, "/api/views/"+viewID, token, nil)
	if code != http.StatusNotFound || body["error_code"] != "view_not_found" {
		t.Fatalf("expected view_not_found, got %d (%v)", code, body)
	}
}
