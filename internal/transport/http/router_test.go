package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports/mocks"
	rest "github.com/Gunvolt24/streets_etl/internal/transport/http"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*mocks.MockStreetReadService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStreetReadService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "")
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetStreet_Found(t *testing.T) {
	svc, r := newRouter(t)

	want := &domain.Street{CityCode: 5000, StreetCode: 100, StreetName: "Ha-Carmel", StreetNameNormalized: "ha-carmel"}
	svc.EXPECT().GetStreet(gomock.Any(), domain.StreetKey{CityCode: 5000, StreetCode: 100}).Return(want, nil)

	w := serve(r, http.MethodGet, "/streets/5000/100")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Street
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.StreetNameNormalized != "ha-carmel" {
		t.Fatalf("unexpected street: %+v", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID must be set")
	}
}

func TestGetStreet_NotFound(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().GetStreet(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := serve(r, http.MethodGet, "/streets/1/2")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetStreet_BadCodes(t *testing.T) {
	_, r := newRouter(t)
	// сервис не должен вызываться

	for _, path := range []string{"/streets/abc/1", "/streets/1/-5", "/streets/0/1"} {
		if w := serve(r, http.MethodGet, path); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", path, w.Code)
		}
	}
}

func TestGetStreet_InternalError(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().GetStreet(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	if w := serve(r, http.MethodGet, "/streets/1/2"); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestGetStreet_TimeoutPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStreetReadService(ctrl)
	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 10*time.Millisecond), "")

	svc.EXPECT().GetStreet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.StreetKey) (*domain.Street, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	if w := serve(r, http.MethodGet, "/streets/1/2"); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500 on timeout, got %d", w.Code)
	}
}

func TestListStreetsByCity_Defaults(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().StreetsByCity(gomock.Any(), int64(5000), "", 20, 0).Return(nil, nil)

	w := serve(r, http.MethodGet, "/cities/5000/streets")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != "[]" {
		t.Fatalf("empty result must be [], got %s", w.Body.String())
	}
}

func TestListStreetsByCity_WithParams(t *testing.T) {
	svc, r := newRouter(t)

	ret := []*domain.Street{{CityCode: 5000, StreetCode: 1}, {CityCode: 5000, StreetCode: 2}}
	svc.EXPECT().StreetsByCity(gomock.Any(), int64(5000), "Ha", 3, 7).Return(ret, nil)

	w := serve(r, http.MethodGet, "/cities/5000/streets?q=Ha&limit=3&offset=7")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var got []domain.Street
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[1].StreetCode != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListStreetsByCity_ServiceError(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().StreetsByCity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service error"))

	if w := serve(r, http.MethodGet, "/cities/5000/streets"); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/no-such-route")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodPost, "/streets/1/2")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_And_Metrics(t *testing.T) {
	_, r := newRouter(t)

	if w := serve(r, http.MethodGet, "/ping"); w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("ping: code=%d body=%q", w.Code, w.Body.String())
	}
	w := serve(r, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("metrics: code=%d len=%d", w.Code, w.Body.Len())
	}
}
