package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/storefront/internal/errs"
	"github.com/deppfellow/storefront/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const productID = "3f0c1e8a-9a57-4c1b-8f0e-2b1d6c9e4a10"

func newProductService(t *testing.T) (*ProductService, *mockProductRepo, *mockCache) {
	t.Helper()
	logger := zerolog.Nop()
	repo, cache := &mockProductRepo{}, &mockCache{}
	t.Cleanup(func() {
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
	return NewProductService(repo, cache, &logger), repo, cache
}

func TestProductService_GetCacheHitSkipsRepository(t *testing.T) {
	svc, repo, cache := newProductService(t)
	cached := &model.Product{ID: productID, Name: "Lamp"}
	cache.On("Get", mock.Anything, productID).Return(cached, true, nil)

	product, err := svc.Get(context.Background(), productID)
	require.NoError(t, err)
	assert.Same(t, cached, product)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestProductService_GetCacheMissFillsCache(t *testing.T) {
	svc, repo, cache := newProductService(t)
	stored := &model.Product{ID: productID, Name: "Lamp"}
	cache.On("Get", mock.Anything, productID).Return(nil, false, nil)
	repo.On("Get", mock.Anything, productID).Return(stored, nil)
	cache.On("Fill", mock.Anything, stored).Return(nil)

	product, err := svc.Get(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, stored, product)
}

func TestProductService_GetCacheFailureFallsBack(t *testing.T) {
	svc, repo, cache := newProductService(t)
	stored := &model.Product{ID: productID}
	cache.On("Get", mock.Anything, productID).Return(nil, false, errors.New("connection refused"))
	repo.On("Get", mock.Anything, productID).Return(stored, nil)
	cache.On("Fill", mock.Anything, stored).Return(errors.New("connection refused"))

	product, err := svc.Get(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, stored, product)
}

func TestProductService_GetAbsent(t *testing.T) {
	svc, repo, cache := newProductService(t)
	cache.On("Get", mock.Anything, "missing").Return(nil, false, nil)
	repo.On("Get", mock.Anything, "missing").Return(nil, nil)

	product, err := svc.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductService_GetDeletedHitSkipsRepository(t *testing.T) {
	svc, repo, cache := newProductService(t)
	cache.On("Get", mock.Anything, productID).Return(nil, true, nil)

	product, err := svc.Get(context.Background(), productID)
	require.NoError(t, err)
	assert.Nil(t, product)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestProductService_EditRefreshesCache(t *testing.T) {
	svc, repo, cache := newProductService(t)
	name := "Desk lamp"
	req := &model.EditProductRequest{Name: &name}
	edited := &model.Product{ID: productID, Name: name}
	repo.On("Edit", mock.Anything, productID, req).Return(edited, nil)
	cache.On("Set", mock.Anything, edited).Return(nil)

	product, err := svc.Edit(context.Background(), productID, req)
	require.NoError(t, err)
	assert.Equal(t, name, product.Name)
}

func TestProductService_EditMissingIsNotFound(t *testing.T) {
	svc, repo, _ := newProductService(t)
	req := &model.EditProductRequest{}
	repo.On("Edit", mock.Anything, "missing", req).Return(nil, nil)

	_, err := svc.Edit(context.Background(), "missing", req)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found", httpErr.Message)
}

func TestProductService_Destroy(t *testing.T) {
	svc, repo, cache := newProductService(t)
	repo.On("Destroy", mock.Anything, productID).Return(true, nil)
	cache.On("Forget", mock.Anything, productID).Return(errors.New("timeout"))

	result, err := svc.Destroy(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, &model.DeleteResult{ID: productID, Deleted: true}, result)
}

func TestProductService_DestroyAbsent(t *testing.T) {
	svc, repo, _ := newProductService(t)
	repo.On("Destroy", mock.Anything, "missing").Return(false, nil)

	result, err := svc.Destroy(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, &model.DeleteResult{ID: "missing", Deleted: false}, result)
}

func TestProductService_ListPassesFilterThrough(t *testing.T) {
	svc, repo, _ := newProductService(t)
	filter := model.ProductFilter{Page: model.Page{Offset: 5, Limit: 10}, Tag: "garden"}
	repo.On("List", mock.Anything, filter).Return([]model.Product{{ID: productID}}, nil)

	products, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

// newCachedProductService wires a real RedisProductCache over fakeRedis.
func newCachedProductService(t *testing.T) (*ProductService, *mockProductRepo, *RedisProductCache) {
	t.Helper()
	logger := zerolog.Nop()
	repo := &mockProductRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })
	cache := NewRedisProductCache(newFakeRedis(), time.Minute)
	return NewProductService(repo, cache, &logger), repo, cache
}

func TestProductService_GetRacingEditKeepsEditedRow(t *testing.T) {
	svc, repo, cache := newCachedProductService(t)
	ctx := context.Background()
	oldName, newName := "Lamp", "Desk lamp"
	req := &model.EditProductRequest{Name: &newName}

	repo.On("Edit", mock.Anything, productID, req).Return(&model.Product{ID: productID, Name: newName}, nil)
	// the edit commits while Get is still holding the row it read
	repo.On("Get", mock.Anything, productID).
		Run(func(mock.Arguments) {
			_, err := svc.Edit(ctx, productID, req)
			require.NoError(t, err)
		}).
		Return(&model.Product{ID: productID, Name: oldName}, nil).Once()

	product, err := svc.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, oldName, product.Name)

	cached, hit, err := cache.Get(ctx, productID)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, newName, cached.Name)

	product, err = svc.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, newName, product.Name)
}

func TestProductService_GetRacingDestroyStaysDeleted(t *testing.T) {
	svc, repo, _ := newCachedProductService(t)
	ctx := context.Background()

	repo.On("Destroy", mock.Anything, productID).Return(true, nil)
	repo.On("Get", mock.Anything, productID).
		Run(func(mock.Arguments) {
			_, err := svc.Destroy(ctx, productID)
			require.NoError(t, err)
		}).
		Return(&model.Product{ID: productID, Name: "Lamp"}, nil).Once()

	_, err := svc.Get(ctx, productID)
	require.NoError(t, err)

	product, err := svc.Get(ctx, productID)
	require.NoError(t, err)
	assert.Nil(t, product)
}
