package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marblecraft/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logging.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestID)) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid request id, got %q", id)
		}
		if w.Body.String() != id {
			t.Fatalf("context id %q differs from header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "req-123" {
			t.Fatalf("expected req-123, got %q", got)
		}
	})
}

func TestLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, logs := newObservedLogger()

	r := gin.New()
	r.Use(RequestID(), Logging(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok?q=1", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
	want := []struct {
		msg   string
		level zapcore.Level
	}{
		{"HTTP_REQUEST_INFO", zapcore.InfoLevel},
		{"HTTP_REQUEST_WARNING", zapcore.WarnLevel},
		{"HTTP_REQUEST_ERROR", zapcore.ErrorLevel},
	}
	for i, w := range want {
		if entries[i].Message != w.msg || entries[i].Level != w.level {
			t.Fatalf("entry %d: expected %s/%s, got %s/%s", i, w.msg, w.level, entries[i].Message, entries[i].Level)
		}
	}

	ctx := entries[0].ContextMap()
	if ctx["path"] != "/ok" || ctx["query"] != "q=1" || ctx["method"] != http.MethodGet {
		t.Fatalf("unexpected fields: %v", ctx)
	}
	if id, _ := ctx["request_id"].(string); id == "" {
		t.Fatalf("expected request_id field")
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, logs := newObservedLogger()

	r := gin.New()
	r.Use(Recovery(log))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if logs.FilterMessage("[http][recovery] panic recovered").Len() != 1 {
		t.Fatalf("expected recovery log entry")
	}
}
