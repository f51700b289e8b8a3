package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/dto"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
	mcore "github.com/Akilan7123/DreamPixel/mocks/port/core"
	musecase "github.com/Akilan7123/DreamPixel/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		setup      func(uc *musecase.MockUserUseCase)
		wantStatus int
		wantReason string
	}{
		{
			name:       "token header",
			headers:    map[string]string{"token": "good"},
			setup:      func(uc *musecase.MockUserUseCase) { uc.EXPECT().CurrentUser(mock.Anything, "good").Return(userID, nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer header",
			headers:    map[string]string{"Authorization": "Bearer good"},
			setup:      func(uc *musecase.MockUserUseCase) { uc.EXPECT().CurrentUser(mock.Anything, "good").Return(userID, nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			headers:    map[string]string{"Authorization": "Basic abc"},
			setup:      func(uc *musecase.MockUserUseCase) {},
			wantStatus: http.StatusUnauthorized,
			wantReason: "MISSING_TOKEN",
		},
		{
			name:    "invalid token",
			headers: map[string]string{"token": "forged"},
			setup: func(uc *musecase.MockUserUseCase) {
				uc.EXPECT().CurrentUser(mock.Anything, "forged").
					Return(uuid.Nil, &domainerr.AuthError{Operation: "parse token", Err: domainerr.ErrInvalidToken})
			},
			wantStatus: http.StatusUnauthorized,
			wantReason: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := musecase.NewMockUserUseCase(t)
			tt.setup(uc)

			router := gin.New()
			router.GET("/me", Auth(uc, logger.NewNoopLogger()), func(c *gin.Context) {
				id, ok := UserID(c)
				assert.True(t, ok)
				c.String(http.StatusOK, id.String())
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
				return
			}
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantReason, body.Reason)
		})
	}
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(f map[string]any) bool {
		return f["error"] == "boom" && f["path"] == "/panic"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "INTERNAL", body.Reason)
	assert.False(t, body.Retryable)
}

func TestLogger_AssignsRequestID(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusOK && f["request_id"] != ""
	})).Twice()

	router := gin.New()
	router.Use(Logger(mockLogger))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestLogger_ClientErrorsAreWarnings(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn("Request processed", mock.Anything).Once()

	router := gin.New()
	router.Use(Logger(mockLogger))
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS("https://dreampixel.example"))
	router.POST("/api/user/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/user/login", nil)
		req.Header.Set("Origin", "https://dreampixel.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://dreampixel.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "token")
	})

	t.Run("other origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		open := gin.New()
		open.Use(CORS())
		open.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://anything.example")
		w := httptest.NewRecorder()
		open.ServeHTTP(w, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
