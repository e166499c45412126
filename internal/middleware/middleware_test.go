package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RequestID(), RequestLogger(), Recovery(), ErrorHandler())
	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)
	router.GET("/test", handler)
	return router
}

func perform(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerMapsKinds(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "not found",
			err:            models.NewNotFoundError("Restaurant not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Restaurant not found"}`,
		},
		{
			name:           "validation",
			err:            models.NewValidationError("pizza_id is required", "price is required"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["pizza_id is required","price is required"]}`,
		},
		{
			name:           "reference",
			err:            models.NewReferenceError("pizza_id 9 does not exist"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["pizza_id 9 does not exist"]}`,
		},
		{
			name:           "malformed",
			err:            models.NewMalformedError("Invalid request body", errors.New("unexpected EOF")),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["Invalid request body"]}`,
		},
		{
			name:           "internal",
			err:            models.NewInternalError(errors.New("database is locked")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database is locked"}`,
		},
		{
			name:           "unclassified error",
			err:            errors.New("no such table: pizzas"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"no such table: pizzas"}`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(func(c *gin.Context) {
				c.Error(tt.err)
			})

			w := perform(router, http.MethodGet, "/test")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := setupRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		c.Error(errors.New("logged only"))
	})

	w := perform(router, http.MethodGet, "/test")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRecoveryReturnsJSON(t *testing.T) {
	router := setupRouter(func(c *gin.Context) {
		panic("boom")
	})

	w := perform(router, http.MethodGet, "/test")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", decode(t, w)["error"])
}

func TestUnknownRouteAndMethod(t *testing.T) {
	router := setupRouter(func(c *gin.Context) {})

	w := perform(router, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Resource not found", decode(t, w)["error"])

	w = perform(router, http.MethodPost, "/test")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method not allowed", decode(t, w)["error"])
}

func TestRequestID(t *testing.T) {
	var seen string
	router := setupRouter(func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := perform(router, http.MethodGet, "/test")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
