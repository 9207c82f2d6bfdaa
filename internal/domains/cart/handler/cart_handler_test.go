package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"foodgram-backend/internal/domains/cart"
	recipemodel "foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/shared/middleware"
)

type stubCartService struct {
	doc string
}

func (s *stubCartService) Add(_ context.Context, _, _ uuid.UUID) (*recipemodel.RecipeMinified, error) {
	return &recipemodel.RecipeMinified{}, nil
}

func (s *stubCartService) Remove(_ context.Context, _, _ uuid.UUID) error { return nil }

func (s *stubCartService) ShoppingList(_ context.Context, _ uuid.UUID) (string, error) {
	return s.doc, nil
}

func newTestRouter(svc cart.Service, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UserIDKey, uuid.New())
		})
	}
	h := NewCartHandler(svc)
	r.GET("/recipes/download_shopping_cart", h.DownloadShoppingList)
	return r
}

func TestDownloadShoppingListAttachment(t *testing.T) {
	router := newTestRouter(&stubCartService{doc: "flour (g) - 500\n"}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/download_shopping_cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="foodgram_shopping_cart.txt"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "flour (g) - 500\n", w.Body.String())
}

func TestDownloadShoppingListEmptyCart(t *testing.T) {
	router := newTestRouter(&stubCartService{doc: ""}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/download_shopping_cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDownloadShoppingListRequiresAuth(t *testing.T) {
	router := newTestRouter(&stubCartService{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/download_shopping_cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
