package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/chatcont39-glitch/educheck/internal/handlers"
	"github.com/chatcont39-glitch/educheck/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	engine := gin.New()
	h := handlers.NewReceiptHandler(store)
	engine.POST("/api/save-pdf", h.SavePDF)
	engine.GET("/api/history", h.History)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestPersistRoundTrip(t *testing.T) {
	srv, store := newTestServer(t)
	c := New(srv.URL)

	payload := []byte("%PDF-1.4 remote document")
	path, err := c.Persist(context.Background(), "checklist_ana_1700000000000.pdf", payload)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if filepath.Dir(path) != store.Dir() {
		t.Errorf("unexpected stored path: %s", path)
	}
	stored, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stored, payload) {
		t.Error("stored bytes differ from payload")
	}

	history, err := c.ListHistory(context.Background())
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(history) != 1 || history[0].Name != "checklist_ana_1700000000000.pdf" {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestPersistMissingArgumentsMapTo400(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	if _, err := c.Persist(context.Background(), "", []byte("data")); !errors.Is(err, storage.ErrMissingArgument) {
		t.Errorf("expected storage.ErrMissingArgument, got %v", err)
	}
	if _, err := c.Persist(context.Background(), "doc.pdf", nil); !errors.Is(err, storage.ErrMissingArgument) {
		t.Errorf("expected storage.ErrMissingArgument for empty payload, got %v", err)
	}
}

func TestPersistRejectedPayloadIsWriteFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/save-pdf", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 payload"})
	})
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.Persist(context.Background(), "doc.pdf", []byte("data"))
	if !errors.Is(err, storage.ErrWriteFailure) {
		t.Errorf("expected storage.ErrWriteFailure, got %v", err)
	}
	if errors.Is(err, storage.ErrMissingArgument) {
		t.Error("a rejected payload must not read as a missing field")
	}
}

func TestListHistoryEmpty(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	history, err := c.ListHistory(context.Background())
	if err != nil {
		t.Fatalf("empty history must not fail: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Errorf("expected empty slice, got %+v", history)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv, _ := newTestServer(t)
	url := srv.URL
	srv.Close()

	c := New(url)
	if _, err := c.Persist(context.Background(), "doc.pdf", []byte("data")); !errors.Is(err, ErrNetworkFailure) {
		t.Errorf("expected ErrNetworkFailure, got %v", err)
	}
	if _, err := c.ListHistory(context.Background()); !errors.Is(err, ErrNetworkFailure) {
		t.Errorf("expected ErrNetworkFailure, got %v", err)
	}
}
