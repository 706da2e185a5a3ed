package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_List_TrimsCategory(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)
	products.On("List", ctx, "Electronics").Return([]model.Product{
		{ID: 1, Name: "Wireless Headphones"},
		{ID: 2, Name: "Smart Watch"},
	}, nil)

	items, err := usecase.NewProductUsecase(products).List(ctx, "  Electronics  ")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestProductUsecase_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)
	products.On("FindByID", ctx, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := usecase.NewProductUsecase(products).Get(ctx, 999)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "product not found", he.Message)
}

func TestProductUsecase_Get_InvalidID(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)

	_, err := usecase.NewProductUsecase(products).Get(ctx, 0)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProductUsecase_Categories_PrependsAll(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)
	products.On("ListCategories", ctx).Return([]string{"Accessories", "Electronics"}, nil)

	categories, err := usecase.NewProductUsecase(products).Categories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"All", "Accessories", "Electronics"}, categories)
}

func TestProductUsecase_Categories_EmptyCatalogStillHasAll(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)
	products.On("ListCategories", ctx).Return([]string{}, nil)

	categories, err := usecase.NewProductUsecase(products).Categories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"All"}, categories)
}

func TestProductUsecase_Search_BlankQuery(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)

	_, err := usecase.NewProductUsecase(products).Search(ctx, "   ")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	products.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestProductUsecase_Search_TooLongQuery(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)

	_, err := usecase.NewProductUsecase(products).Search(ctx, strings.Repeat("a", 101))

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestProductUsecase_Search_Matches(t *testing.T) {
	ctx := context.Background()

	products := new(MockProductRepository)
	products.On("Search", ctx, "watch").Return([]model.Product{
		{ID: 2, Name: "Smart Watch"},
	}, nil)

	items, err := usecase.NewProductUsecase(products).Search(ctx, " watch ")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Smart Watch", items[0].Name)
}
