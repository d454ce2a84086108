package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/pagination"
	"github.com/oumar782/Jessback/pkg/types"
)

func TestWriteSuccessReturnsBarePayload(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]string{"hello": "world"})

	if got := w.Code; got != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", got)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Fatalf("unexpected payload %v", body)
	}
	if _, wrapped := body["data"]; wrapped {
		t.Fatal("single resources must not be wrapped in an envelope")
	}
}

func TestWriteListWrapsDataAndPagination(t *testing.T) {
	w := httptest.NewRecorder()
	meta := pagination.Meta{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true}
	WriteList(w, []int{1, 2, 3}, meta)

	var body struct {
		Data       []int           `json:"data"`
		Pagination pagination.Meta `json:"pagination"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Data) != 3 || body.Pagination.TotalPages != 3 || !body.Pagination.HasPrev {
		t.Fatalf("unexpected payload %+v", body)
	}
}

func TestWriteCount(t *testing.T) {
	w := httptest.NewRecorder()
	WriteCount(w, 12)

	var body types.CountEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Total != 12 {
		t.Fatalf("unexpected total %d", body.Total)
	}
}

func TestWriteErrorMapsTypedError(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeConflict, "slot has 2 package(s) assigned and cannot be deleted")
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusConflict {
		t.Fatalf("expected status 409 but got %d", got)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error != "slot has 2 package(s) assigned and cannot be deleted" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}

func TestWriteErrorSuppressesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, errors.New("pq: connection refused on 10.0.0.3"))

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
}
