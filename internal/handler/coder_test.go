package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"huffman_coding_go/internal/handler"
	"huffman_coding_go/internal/model"
	"huffman_coding_go/internal/repo"
	"huffman_coding_go/internal/router"
	"huffman_coding_go/internal/service"
	"huffman_coding_go/pkg/logger"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCoderService(repo.NewRunRepoInMemory(), logger.New())
	r := gin.New()
	router.Register(r, router.Dependencies{
		CoderHandler: handler.NewCoderHandler(svc),
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRun(t *testing.T) {
	r := newRouter()
	w := do(t, r, http.MethodPost, "/api/v1/runs", `{"text":"BANANA BANDANA"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var run model.Run
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatal(err)
	}
	if run.Stats.EncodedBits != 28 || !run.Verified {
		t.Errorf("run = %+v, want 28 encoded bits and verified", run)
	}

	w = do(t, r, http.MethodGet, "/api/v1/runs/"+run.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("get run status = %d", w.Code)
	}
}

func TestCreateRunEmptyText(t *testing.T) {
	w := do(t, newRouter(), http.MethodPost, "/api/v1/runs", `{"text":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetRunNotFound(t *testing.T) {
	w := do(t, newRouter(), http.MethodGet, "/api/v1/runs/deadbeef", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListRuns(t *testing.T) {
	r := newRouter()
	do(t, r, http.MethodPost, "/api/v1/runs", `{"text":"banana"}`)
	do(t, r, http.MethodPost, "/api/v1/runs", `{"text":"bandana"}`)

	w := do(t, r, http.MethodGet, "/api/v1/runs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var runs []model.Run
	if err := json.Unmarshal(w.Body.Bytes(), &runs); err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestCreateBatch(t *testing.T) {
	w := do(t, newRouter(), http.MethodPost, "/api/v1/runs/batch", `{"texts":["banana","aaaa"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var runs []model.Run
	if err := json.Unmarshal(w.Body.Bytes(), &runs); err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	r := newRouter()
	w := do(t, r, http.MethodPost, "/api/v1/runs", `{"text":"mississippi"}`)
	var run model.Run
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatal(err)
	}

	w = do(t, r, http.MethodPost, "/api/v1/runs/"+run.ID+"/decode", `{"encoded":"`+run.Encoded+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Decoded string `json:"decoded"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Decoded != "mississippi" {
		t.Errorf("decoded = %q", resp.Decoded)
	}

	truncated := run.Encoded[:len(run.Encoded)-1]
	w = do(t, r, http.MethodPost, "/api/v1/runs/"+run.ID+"/decode", `{"encoded":"`+truncated+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("truncated decode status = %d, want 400", w.Code)
	}
}

func TestTreeDOTEndpoint(t *testing.T) {
	r := newRouter()
	w := do(t, r, http.MethodPost, "/api/v1/runs", `{"text":"banana"}`)
	var run model.Run
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatal(err)
	}

	w = do(t, r, http.MethodGet, "/api/v1/runs/"+run.ID+"/tree.dot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "digraph huffman {") {
		t.Errorf("body does not look like DOT:\n%s", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	w := do(t, newRouter(), http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
