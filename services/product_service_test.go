package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fnProductRepo is a configurable product repository mock.
type fnProductRepo struct {
	mockProductRepo

	createFn    func(ctx context.Context, p *models.Product) error
	findByIDFn  func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	updateFn    func(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	deleteFn    func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	byCatFn     func(ctx context.Context, category string) ([]models.Product, error)
	incrementFn func(ctx context.Context, id primitive.ObjectID, quantity int) (*models.Product, error)
}

func (m *fnProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}
func (m *fnProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *fnProductRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, updates)
	}
	return nil, repository.ErrNotFound
}
func (m *fnProductRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *fnProductRepo) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if m.byCatFn != nil {
		return m.byCatFn(ctx, category)
	}
	return nil, nil
}
func (m *fnProductRepo) IncrementInventory(ctx context.Context, id primitive.ObjectID, quantity int) (*models.Product, error) {
	if m.incrementFn != nil {
		return m.incrementFn(ctx, id, quantity)
	}
	return nil, repository.ErrNotFound
}

// mockSkinTypeRepo provides the skin type lookups the product service uses
// for population.
type mockSkinTypeRepo struct {
	byID    map[primitive.ObjectID]*models.SkinType
	byScore func(score int) (*models.SkinType, error)
}

func (m *mockSkinTypeRepo) Create(_ context.Context, _ *models.SkinType) error { return nil }
func (m *mockSkinTypeRepo) FindAll(_ context.Context) ([]models.SkinType, error) {
	return nil, nil
}
func (m *mockSkinTypeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.SkinType, error) {
	if st, ok := m.byID[id]; ok {
		return st, nil
	}
	return nil, repository.ErrNotFound
}
func (m *mockSkinTypeRepo) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (*models.SkinType, error) {
	return nil, repository.ErrNotFound
}
func (m *mockSkinTypeRepo) Delete(_ context.Context, _ primitive.ObjectID) (*models.SkinType, error) {
	return nil, repository.ErrNotFound
}
func (m *mockSkinTypeRepo) AddRoutine(_ context.Context, _, _ primitive.ObjectID) (*models.SkinType, error) {
	return nil, repository.ErrNotFound
}
func (m *mockSkinTypeRepo) RemoveRoutine(_ context.Context, _, _ primitive.ObjectID) (*models.SkinType, error) {
	return nil, repository.ErrNotFound
}
func (m *mockSkinTypeRepo) FindByScore(_ context.Context, score int) (*models.SkinType, error) {
	if m.byScore != nil {
		return m.byScore(score)
	}
	return nil, repository.ErrNotFound
}

// memoryCache is an in-process CatalogCache for tests.
type memoryCache struct {
	lists       map[string][]models.Product
	details     map[string]*models.Product
	invalidated []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		lists:   make(map[string][]models.Product),
		details: make(map[string]*models.Product),
	}
}

func (c *memoryCache) GetList(_ context.Context, key string) ([]models.Product, bool) {
	products, ok := c.lists[key]
	return products, ok
}
func (c *memoryCache) SetList(_ context.Context, key string, products []models.Product) {
	c.lists[key] = products
}
func (c *memoryCache) GetProduct(_ context.Context, id string) (*models.Product, bool) {
	p, ok := c.details[id]
	return p, ok
}
func (c *memoryCache) SetProduct(_ context.Context, product *models.Product) {
	c.details[product.ID.Hex()] = product
}
func (c *memoryCache) Invalidate(_ context.Context, id string) {
	c.lists = make(map[string][]models.Product)
	delete(c.details, id)
	c.invalidated = append(c.invalidated, id)
}

func newProductService(repo *fnProductRepo, skinTypes *mockSkinTypeRepo, cache *memoryCache) services.ProductService {
	if repo == nil {
		repo = &fnProductRepo{}
	}
	if skinTypes == nil {
		skinTypes = &mockSkinTypeRepo{}
	}
	if cache == nil {
		cache = newMemoryCache()
	}
	logger, _ := zap.NewDevelopment()
	return services.NewProductService(repo, skinTypes, cache, logger)
}

func TestProductGetByID_InvalidID(t *testing.T) {
	svc := newProductService(nil, nil, nil)

	product, se := svc.GetByID(context.Background(), "not-an-object-id")

	assert.Nil(t, product)
	require.NotNil(t, se)
	assert.Equal(t, 400, se.StatusCode)
}

func TestProductGetByID_NotFound(t *testing.T) {
	svc := newProductService(nil, nil, nil)

	_, se := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())

	require.NotNil(t, se)
	assert.Equal(t, 404, se.StatusCode)
}

func TestProductGetByID_PopulatesSkinType(t *testing.T) {
	skinTypeID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	repo := &fnProductRepo{
		findByIDFn: func(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
			return &models.Product{ID: id, Name: "Toner", SkinTypeID: &skinTypeID}, nil
		},
	}
	skinTypes := &mockSkinTypeRepo{byID: map[primitive.ObjectID]*models.SkinType{
		skinTypeID: {ID: skinTypeID, Name: "Oily"},
	}}
	svc := newProductService(repo, skinTypes, nil)

	product, se := svc.GetByID(context.Background(), productID.Hex())

	require.Nil(t, se)
	require.NotNil(t, product.SkinType)
	assert.Equal(t, "Oily", product.SkinType.Name)
}

func TestProductGetByID_CacheHitSkipsRepo(t *testing.T) {
	productID := primitive.NewObjectID()
	cached := &models.Product{ID: productID, Name: "Cached Cleanser"}
	cache := newMemoryCache()
	cache.SetProduct(context.Background(), cached)

	repoCalled := false
	repo := &fnProductRepo{
		findByIDFn: func(_ context.Context, _ primitive.ObjectID) (*models.Product, error) {
			repoCalled = true
			return nil, repository.ErrNotFound
		},
	}
	svc := newProductService(repo, nil, cache)

	product, se := svc.GetByID(context.Background(), productID.Hex())

	require.Nil(t, se)
	assert.Equal(t, "Cached Cleanser", product.Name)
	assert.False(t, repoCalled)
}

func TestProductCreate_InvalidatesCache(t *testing.T) {
	cache := newMemoryCache()
	cache.SetList(context.Background(), "all", []models.Product{{Name: "stale"}})
	svc := newProductService(nil, nil, cache)

	_, se := svc.Create(context.Background(), &models.CreateProductRequest{
		Name: "Sunscreen", Category: "suncare", Price: 19.9,
	})

	require.Nil(t, se)
	assert.Empty(t, cache.lists)
	assert.Len(t, cache.invalidated, 1)
}

func TestProductCreate_InvalidSkinTypeID(t *testing.T) {
	svc := newProductService(nil, nil, nil)

	_, se := svc.Create(context.Background(), &models.CreateProductRequest{
		Name: "Sunscreen", Category: "suncare", Price: 19.9, SkinTypeID: "bogus",
	})

	require.NotNil(t, se)
	assert.Equal(t, 400, se.StatusCode)
}

func TestProductGetByCategory_CachesResult(t *testing.T) {
	calls := 0
	repo := &fnProductRepo{
		byCatFn: func(_ context.Context, _ string) ([]models.Product, error) {
			calls++
			return []models.Product{{Name: "Cleanser", Category: "cleanser"}}, nil
		},
	}
	cache := newMemoryCache()
	svc := newProductService(repo, nil, cache)

	_, se := svc.GetByCategory(context.Background(), "cleanser")
	require.Nil(t, se)
	_, se = svc.GetByCategory(context.Background(), "cleanser")
	require.Nil(t, se)

	assert.Equal(t, 1, calls, "second read served from cache")
}

func TestProductGetByPriceRange_InvalidRange(t *testing.T) {
	svc := newProductService(nil, nil, nil)

	_, se := svc.GetByPriceRange(context.Background(), 50, 10)

	require.NotNil(t, se)
	assert.Equal(t, 400, se.StatusCode)
}

func TestProductUpdate_NoFields(t *testing.T) {
	svc := newProductService(nil, nil, nil)

	_, se := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateProductRequest{})

	require.NotNil(t, se)
	assert.Equal(t, 400, se.StatusCode)
}

func TestProductUpdateInventory_PassesDelta(t *testing.T) {
	var gotDelta int
	repo := &fnProductRepo{
		incrementFn: func(_ context.Context, id primitive.ObjectID, quantity int) (*models.Product, error) {
			gotDelta = quantity
			return &models.Product{ID: id, Inventory: 7}, nil
		},
	}
	svc := newProductService(repo, nil, nil)

	product, se := svc.UpdateInventory(context.Background(), primitive.NewObjectID().Hex(), -3)

	require.Nil(t, se)
	assert.Equal(t, -3, gotDelta)
	assert.Equal(t, 7, product.Inventory)
}

func TestProductDelete_RepoFailure(t *testing.T) {
	repo := &fnProductRepo{
		deleteFn: func(_ context.Context, _ primitive.ObjectID) (*models.Product, error) {
			return nil, errors.New("write concern error")
		},
	}
	svc := newProductService(repo, nil, nil)

	_, se := svc.Delete(context.Background(), primitive.NewObjectID().Hex())

	require.NotNil(t, se)
	assert.Equal(t, 500, se.StatusCode)
}
