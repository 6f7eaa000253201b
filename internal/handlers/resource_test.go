package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jerdirlson/api-task/internal/cachestore"
	"github.com/Jerdirlson/api-task/internal/models"
	"github.com/gin-gonic/gin"
)

// =============================================================================
// Fake Repository
// =============================================================================

type fakeFactionRepo struct {
	records map[int64]models.Faction
	nextID  int64
	failAll error
}

func newFakeFactionRepo() *fakeFactionRepo {
	return &fakeFactionRepo{records: make(map[int64]models.Faction), nextID: 1}
}

func (f *fakeFactionRepo) GetAll(ctx context.Context) ([]models.Faction, error) {
	if f.failAll != nil {
		return nil, fmt.Errorf("%w: %v", cachestore.ErrBackingStore, f.failAll)
	}
	out := make([]models.Faction, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeFactionRepo) GetByID(ctx context.Context, id int64) (*models.Faction, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, cachestore.ErrNotFound
	}
	return &r, nil
}

func (f *fakeFactionRepo) Create(ctx context.Context, rec *models.Faction) error {
	rec.ID = f.nextID
	f.nextID++
	f.records[rec.ID] = *rec
	return nil
}

func (f *fakeFactionRepo) Update(ctx context.Context, id int64, rec *models.Faction) error {
	if _, ok := f.records[id]; !ok {
		return cachestore.ErrNotFound
	}
	rec.ID = id
	f.records[id] = *rec
	return nil
}

func (f *fakeFactionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return cachestore.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupResourceRouter(repo *fakeFactionRepo) *gin.Engine {
	handler := NewResourceHandler[models.Faction]("faction", "Faction", repo, nil)
	router := gin.New()
	router.GET("/factions", handler.Index)
	router.POST("/factions", handler.Store)
	router.GET("/factions/:id", handler.Show)
	router.PUT("/factions/:id", handler.Update)
	router.DELETE("/factions/:id", handler.Destroy)
	return router
}

func doJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Tests
// =============================================================================

func TestResourceIndex(t *testing.T) {
	repo := newFakeFactionRepo()
	repo.records[1] = models.Faction{ID: 1, FactionName: "Iron Pact"}
	router := setupResourceRouter(repo)

	w := doJSON(router, http.MethodGet, "/factions", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	e := decodeEnvelope(t, w.Body.Bytes())
	var factions []models.Faction
	if err := json.Unmarshal(e.Data, &factions); err != nil {
		t.Fatalf("Failed to decode factions: %v", err)
	}
	if len(factions) != 1 || factions[0].FactionName != "Iron Pact" {
		t.Errorf("factions = %v, want one Iron Pact", factions)
	}
}

func TestResourceIndex_BackingFailureDegradesToEmpty(t *testing.T) {
	repo := newFakeFactionRepo()
	repo.records[1] = models.Faction{ID: 1, FactionName: "Iron Pact"}
	repo.failAll = errors.New("connection refused")
	router := setupResourceRouter(repo)

	w := doJSON(router, http.MethodGet, "/factions", nil)

	// Reads degrade to an empty result with a logged error, not a 5xx.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	e := decodeEnvelope(t, w.Body.Bytes())
	var factions []models.Faction
	if err := json.Unmarshal(e.Data, &factions); err != nil {
		t.Fatalf("Failed to decode factions: %v", err)
	}
	if len(factions) != 0 {
		t.Errorf("factions = %v, want empty", factions)
	}
}

func TestResourceShow(t *testing.T) {
	repo := newFakeFactionRepo()
	repo.records[7] = models.Faction{ID: 7, FactionName: "Iron Pact", Description: "northern holds"}
	router := setupResourceRouter(repo)

	w := doJSON(router, http.MethodGet, "/factions/7", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	e := decodeEnvelope(t, w.Body.Bytes())
	var faction models.Faction
	if err := json.Unmarshal(e.Data, &faction); err != nil {
		t.Fatalf("Failed to decode faction: %v", err)
	}
	if faction.ID != 7 || faction.Description != "northern holds" {
		t.Errorf("faction = %+v, want id 7", faction)
	}
}

func TestResourceShow_NotFound(t *testing.T) {
	router := setupResourceRouter(newFakeFactionRepo())

	w := doJSON(router, http.MethodGet, "/factions/42", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	e := decodeEnvelope(t, w.Body.Bytes())
	if e.Error == nil || e.Error.Message != "Faction not found" {
		t.Errorf("error = %+v, want message %q", e.Error, "Faction not found")
	}
}

func TestResourceShow_InvalidID(t *testing.T) {
	router := setupResourceRouter(newFakeFactionRepo())

	w := doJSON(router, http.MethodGet, "/factions/abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestResourceStore(t *testing.T) {
	repo := newFakeFactionRepo()
	router := setupResourceRouter(repo)

	w := doJSON(router, http.MethodPost, "/factions", gin.H{
		"faction_name": "Iron Pact",
		"description":  "northern holds",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if len(repo.records) != 1 {
		t.Fatalf("repo holds %d records, want 1", len(repo.records))
	}
	if got := repo.records[1]; got.FactionName != "Iron Pact" || got.Description != "northern holds" {
		t.Errorf("stored record = %+v", got)
	}
}

func TestResourceUpdate(t *testing.T) {
	repo := newFakeFactionRepo()
	repo.records[3] = models.Faction{ID: 3, FactionName: "Iron Pact"}
	router := setupResourceRouter(repo)

	w := doJSON(router, http.MethodPut, "/factions/3", gin.H{"faction_name": "Ember Court"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := repo.records[3]; got.FactionName != "Ember Court" {
		t.Errorf("stored record = %+v, want Ember Court", got)
	}
}

func TestResourceUpdate_NotFound(t *testing.T) {
	router := setupResourceRouter(newFakeFactionRepo())

	w := doJSON(router, http.MethodPut, "/factions/42", gin.H{"faction_name": "Ember Court"})

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestResourceDestroy(t *testing.T) {
	repo := newFakeFactionRepo()
	repo.records[3] = models.Faction{ID: 3, FactionName: "Iron Pact"}
	router := setupResourceRouter(repo)

	w := doJSON(router, http.MethodDelete, "/factions/3", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if len(repo.records) != 0 {
		t.Errorf("repo still holds %d records", len(repo.records))
	}
}

func TestResourceDestroy_NotFound(t *testing.T) {
	router := setupResourceRouter(newFakeFactionRepo())

	w := doJSON(router, http.MethodDelete, "/factions/42", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
