package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brsv-srg/qodefly-dashboard/models"
)

func TestWriteJSON_ErrorPayload(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.ErrorPayload{Detail: "Unauthorized", Redirect: "/app/login"}, http.StatusUnauthorized)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if want := `{"detail":"Unauthorized","redirect":"/app/login"}`; w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteRawJSON(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteRawJSON(w, []byte(`{"position":42}`), http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if w.Body.String() != `{"position":42}` {
		t.Errorf("body was re-encoded: %s", w.Body.String())
	}
}

func TestWriteRawJSON_EmptyBody(t *testing.T) {
	w := httptest.NewRecorder()

	_, _ = WriteRawJSON(w, nil, http.StatusOK)

	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}
