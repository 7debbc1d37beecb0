package inventory

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), newTestService(nil)).MountRoutes(r)
	return r
}

func TestHandlerListAppliesQueryFilters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/inventory?status=RESERVED", nil)
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var items []Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Equal(t, []string{"inv2"}, ids(items))
}

func TestHandlerGetMissingItem(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/inventory/nope", nil)
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestHandlerCreateValidationProblem(t *testing.T) {
	body := `{"productId":"prod1","warehouseId":"wh1","quantity":-5,"location":"A1","status":"AVAILABLE"}`
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	var problem struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	require.Equal(t, "Quantity must be positive", problem.Errors["quantity"])
}

func TestHandlerUpdate(t *testing.T) {
	body := `{"productId":"prod1","warehouseId":"wh2","quantity":140,"location":"Aisle 9","status":"RESERVED"}`
	req := httptest.NewRequest(http.MethodPut, "/inventory/inv1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var item Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	require.Equal(t, 140, item.Quantity)
	require.Equal(t, "West Coast Hub", item.Warehouse.Name)
}
