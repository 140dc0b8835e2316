package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/interpreter/usecase"
	"schedule-interpreter/internal/middleware"
	"schedule-interpreter/pkg/datemath"
	"schedule-interpreter/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dm, err := datemath.NewParser("Europe/Zagreb")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := usecase.New(log.NewNop(), grammar.New(), dm, nil, usecase.Config{
		Clock: func() time.Time { return time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC) },
	})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), nil))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
	}
	return w.Code, env
}

var schedule = map[string]any{
	"items": []map[string]any{
		{"id": "a", "label": "Iskop", "start": "2025-10-10", "end": "2025-10-15"},
		{"id": "b", "label": "PZ02 Temelji", "start": "2025-10-16", "end": "2025-10-20"},
	},
}

func TestLoadAndGetDocument(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/sessions/s1/document", schedule)
	if code != http.StatusOK {
		t.Fatalf("load: %d %s", code, env.Message)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/sessions/s1/document", nil)
	if code != http.StatusOK {
		t.Fatalf("get: %d %s", code, env.Message)
	}
	var got sessionDocumentResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Document.Items) != 2 || got.Document.Version != 1 {
		t.Fatalf("unexpected document %+v", got.Document)
	}
	first := got.Document.Items[0]
	if first.Alias != "PR1" || first.DurationDays != 6 {
		t.Errorf("first item = %+v", first)
	}
	if time.Time(first.Start).Format(datemath.ISOLayout) != "2025-10-10" {
		t.Errorf("start = %v", time.Time(first.Start))
	}
	if got.CanUndo || got.CanRedo {
		t.Error("fresh document should have no history")
	}
}

func TestLoadDocument_Invalid(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name string
		body any
	}{
		{"end before start", map[string]any{"items": []map[string]any{{"id": "a", "start": "2025-10-10", "end": "2025-10-01"}}}},
		{"missing dates", map[string]any{"items": []map[string]any{{"id": "a"}}}},
		{"bad date format", map[string]any{"items": []map[string]any{{"id": "a", "start": "10.10.2025", "end": "2025-10-11"}}}},
		{"missing id", map[string]any{"items": []map[string]any{{"start": "2025-10-10", "end": "2025-10-11"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := do(t, r, http.MethodPost, "/api/v1/sessions/s1/document", tt.body)
			if code != http.StatusBadRequest {
				t.Errorf("got %d, want 400", code)
			}
		})
	}
}

func TestUnknownSession(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/api/v1/sessions/nope/document", "/api/v1/sessions/nope/pending"} {
		code, _ := do(t, r, http.MethodGet, path, nil)
		if code != http.StatusNotFound {
			t.Errorf("GET %s: got %d, want 404", path, code)
		}
	}
}

func TestInterpretConfirmUndoRedo(t *testing.T) {
	r := newRouter(t)
	do(t, r, http.MethodPost, "/api/v1/sessions/s1/document", schedule)

	code, env := do(t, r, http.MethodPost, "/api/v1/sessions/s1/utterances", map[string]any{"text": "pomakni PR1 za tri dana"})
	if code != http.StatusOK {
		t.Fatalf("interpret: %d %s", code, env.Message)
	}
	var proposed interpretResp
	if err := json.Unmarshal(env.Data, &proposed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if proposed.Status != "proposed" || proposed.Action == nil || !proposed.Preview {
		t.Fatalf("unexpected interpret response %+v", proposed)
	}
	if proposed.Command == nil || proposed.Command.Kind != "shift" {
		t.Errorf("command = %+v", proposed.Command)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/sessions/s1/pending", nil)
	var list pendingResp
	json.Unmarshal(env.Data, &list)
	if code != http.StatusOK || len(list.Actions) != 1 || list.Actions[0].ID != proposed.Action.ID {
		t.Fatalf("pending = %d %+v", code, list)
	}

	code, env = do(t, r, http.MethodPost, "/api/v1/sessions/s1/pending/"+proposed.Action.ID+"/confirm", nil)
	if code != http.StatusOK {
		t.Fatalf("confirm: %d %s", code, env.Message)
	}
	var applied applyResp
	json.Unmarshal(env.Data, &applied)
	if len(applied.Changed) != 1 || applied.Changed[0] != "a" || applied.Failure != "" {
		t.Errorf("apply = %+v", applied)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/sessions/s1/pending/"+proposed.Action.ID+"/confirm", nil)
	if code != http.StatusNotFound {
		t.Errorf("second confirm: got %d, want 404", code)
	}

	code, env = do(t, r, http.MethodPost, "/api/v1/sessions/s1/undo", nil)
	var undone sessionDocumentResp
	json.Unmarshal(env.Data, &undone)
	if code != http.StatusOK || time.Time(undone.Document.Items[0].Start).Day() != 10 || !undone.CanRedo {
		t.Errorf("undo: %d %+v", code, undone)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/sessions/s1/undo", nil)
	if code != http.StatusConflict {
		t.Errorf("undo past start: got %d, want 409", code)
	}

	code, env = do(t, r, http.MethodPost, "/api/v1/sessions/s1/redo", nil)
	var redone sessionDocumentResp
	json.Unmarshal(env.Data, &redone)
	if code != http.StatusOK || time.Time(redone.Document.Items[0].Start).Day() != 13 {
		t.Errorf("redo: %d %+v", code, redone)
	}
}

func TestInterpret_CancelAndFallback(t *testing.T) {
	r := newRouter(t)
	do(t, r, http.MethodPost, "/api/v1/sessions/s1/document", schedule)

	_, env := do(t, r, http.MethodPost, "/api/v1/sessions/s1/utterances", map[string]any{"text": "odgodi PZ02 za 1 dan"})
	var proposed interpretResp
	json.Unmarshal(env.Data, &proposed)
	if proposed.Action == nil {
		t.Fatalf("expected a proposal for the embedded code, got %+v", proposed)
	}

	code, env := do(t, r, http.MethodPost, "/api/v1/sessions/s1/pending/"+proposed.Action.ID+"/cancel", nil)
	var list pendingResp
	json.Unmarshal(env.Data, &list)
	if code != http.StatusOK || len(list.Actions) != 0 {
		t.Errorf("cancel: %d %+v", code, list)
	}

	_, env = do(t, r, http.MethodPost, "/api/v1/sessions/s1/utterances", map[string]any{"text": "kakvo je vrijeme sutra"})
	var miss interpretResp
	json.Unmarshal(env.Data, &miss)
	if miss.Status != "no_match" || !miss.Fallback {
		t.Errorf("fallback = %+v", miss)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/sessions/s1/utterances", map[string]any{"text": "   "})
	if code != http.StatusBadRequest {
		t.Errorf("blank text: got %d, want 400", code)
	}
}
