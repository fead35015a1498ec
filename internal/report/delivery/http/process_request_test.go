package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"analytics-srv/internal/middleware"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/log"
)

type fakeUseCase struct {
	generate func(ctx context.Context, input report.GenerateInput) (report.GenerateOutput, error)
}

func (f *fakeUseCase) Generate(ctx context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
	return f.generate(ctx, input)
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNoop(), uc, nil)
	h.RegisterRoutes(r.Group(""), middleware.New(log.NewNoop()))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateRequiresSource(t *testing.T) {
	r := newTestRouter(&fakeUseCase{
		generate: func(_ context.Context, _ report.GenerateInput) (report.GenerateOutput, error) {
			t.Fatal("usecase should not be called")
			return report.GenerateOutput{}, nil
		},
	})

	w := postJSON(t, r, "/api/v1/report", map[string]any{"keywords": "climate"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateAcceptsCommaSeparatedKeywords(t *testing.T) {
	var got report.GenerateInput
	r := newTestRouter(&fakeUseCase{
		generate: func(_ context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
			got = input
			return report.GenerateOutput{Report: map[string]*report.KeywordReport{}}, nil
		},
	})

	w := postJSON(t, r, "/api/v1/report", map[string]any{
		"source":   "tweets",
		"keywords": "climate, #cop28",
		"operator": "OR",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !reflect.DeepEqual([]string(got.Keywords), []string{"climate", "#cop28"}) {
		t.Errorf("keywords = %v", got.Keywords)
	}
	if got.Core != "tweets" || got.Operator != "OR" {
		t.Errorf("input = %+v", got)
	}
}

func TestGenerateAcceptsKeywordArray(t *testing.T) {
	var got report.GenerateInput
	r := newTestRouter(&fakeUseCase{
		generate: func(_ context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
			got = input
			return report.GenerateOutput{Report: map[string]*report.KeywordReport{}}, nil
		},
	})

	w := postJSON(t, r, "/api/v1/report", map[string]any{
		"source":   "tweets",
		"keywords": []string{"climate", "@shell"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !reflect.DeepEqual([]string(got.Keywords), []string{"climate", "@shell"}) {
		t.Errorf("keywords = %v", got.Keywords)
	}
}

func TestGenerateMapsDomainErrors(t *testing.T) {
	r := newTestRouter(&fakeUseCase{
		generate: func(_ context.Context, _ report.GenerateInput) (report.GenerateOutput, error) {
			return report.GenerateOutput{}, report.ErrCoreNotAvailable
		},
	})

	w := postJSON(t, r, "/api/v1/report", map[string]any{"source": "missing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
