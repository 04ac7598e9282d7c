package response

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResponder_SendJson(t *testing.T) {
	rr := &Responder{Logger: quiet()}
	w := httptest.NewRecorder()

	rr.SendJson(w, context.Background(), map[string]int{"total": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total":2}`, w.Body.String())
}

func TestResponder_SendJson_Unmarshallable(t *testing.T) {
	rr := &Responder{Logger: quiet()}
	w := httptest.NewRecorder()

	rr.SendJson(w, context.Background(), map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResponder_RespondAndLogError(t *testing.T) {
	t.Run("hides message", func(t *testing.T) {
		rr := &Responder{Logger: quiet()}
		w := httptest.NewRecorder()

		rr.RespondAndLogError(w, context.Background(), errors.New("secret failure"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.NotContains(t, w.Body.String(), "secret failure")
		assert.Contains(t, w.Body.String(), "Error ID: ")
	})

	t.Run("debug mode shows message", func(t *testing.T) {
		rr := &Responder{DebugMode: true, Logger: quiet()}
		w := httptest.NewRecorder()

		rr.RespondAndLogError(w, context.Background(), errors.New("secret failure"))

		assert.JSONEq(t, `{"error":"Secret failure"}`, w.Body.String())
	})
}

func TestResponder_LogsToInjectedOrDefaultLogger(t *testing.T) {
	t.Run("injected", func(t *testing.T) {
		var buf bytes.Buffer
		rr := &Responder{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

		rr.RespondAndLogError(httptest.NewRecorder(), context.Background(), errors.New("disk gone"))

		assert.Contains(t, buf.String(), "disk gone")
		assert.Contains(t, buf.String(), "err_id=")
	})

	t.Run("nil falls back to default", func(t *testing.T) {
		var buf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(prev) })

		rr := &Responder{}
		rr.RespondAndLogError(httptest.NewRecorder(), context.Background(), errors.New("disk gone"))

		assert.Contains(t, buf.String(), "disk gone")
	})
}

func TestResponder_RespondAndLogCustom(t *testing.T) {
	rr := &Responder{DebugMode: true, Logger: quiet()}
	w := httptest.NewRecorder()

	rr.RespondAndLogCustom(w, context.Background(), errors.New("bad input"), slog.LevelWarn, http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Bad input"}`, w.Body.String())
}

func TestResponder_RespondAndLogCustom_NotFound(t *testing.T) {
	t.Run("hides message", func(t *testing.T) {
		rr := &Responder{Logger: quiet()}
		w := httptest.NewRecorder()

		rr.RespondAndLogCustom(w, context.Background(), fmt.Errorf("book 42: %w", ErrNotFound), slog.LevelWarn, http.StatusNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Error ID: ")
	})

	t.Run("debug mode shows message", func(t *testing.T) {
		rr := &Responder{DebugMode: true, Logger: quiet()}
		w := httptest.NewRecorder()

		rr.RespondAndLogCustom(w, context.Background(), fmt.Errorf("book 42: %w", ErrNotFound), slog.LevelWarn, http.StatusNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Book 42: not found"}`, w.Body.String())
	})
}

func TestResponder_SendXml(t *testing.T) {
	rr := &Responder{Logger: quiet()}
	w := httptest.NewRecorder()

	type item struct {
		Title string `xml:"title"`
	}

	rr.SendXml(w, context.Background(), "application/xml", xml.Name{Space: "urn:test", Local: "item"}, item{Title: "Dune"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), xml.Header))
	assert.Contains(t, w.Body.String(), `<item xmlns="urn:test">`)
	assert.Contains(t, w.Body.String(), "<title>Dune</title>")
}
