package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, params FilterProductsParams) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
}

// FilterProductsParams defines the parameters for filtering and paginating products.
type FilterProductsParams struct {
	CategoryID string
	Search     string
	Limit      int64
	Skip       int64
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	SaveCategory(ctx context.Context, category *model.Category) (*model.Category, error)
}

type productRepository struct {
	store store.Store
}

func NewProductRepository(ctx context.Context, logger *zerolog.Logger, s store.Store) ProductRepository {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if err := s.EnsureIndexes(ctx, ProductCollection, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create product indexes")
	}

	return &productRepository{store: s}
}

func (r *productRepository) ListProducts(ctx context.Context, params FilterProductsParams) ([]model.Product, error) {
	filter := bson.M{}
	if params.CategoryID != "" {
		filter["categoryId"] = params.CategoryID
	}
	if params.Search != "" {
		filter["name"] = containsInsensitive(params.Search)
	}

	limit, skip := paging(params.Limit, params.Skip)

	var products []model.Product
	err := r.store.Get(ctx, ProductCollection, store.Query{
		Filter: filter,
		Sort:   bson.D{{Key: "createdAt", Value: -1}},
		Limit:  limit,
		Skip:   skip,
	}, &products)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return findByID[model.Product](ctx, r.store, ProductCollection, id)
}

func (r *productRepository) SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	id, err := saveDocument(ctx, r.store, ProductCollection, product)
	if err != nil {
		return nil, err
	}

	product.ID = id
	return product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, ProductCollection, id)
}

type categoryRepository struct {
	store store.Store
}

func NewCategoryRepository(s store.Store) CategoryRepository {
	return &categoryRepository{store: s}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.store.Get(ctx, CategoryCollection, store.Query{
		Sort: bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}},
	}, &categories)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	id, err := saveDocument(ctx, r.store, CategoryCollection, category)
	if err != nil {
		return nil, err
	}

	category.ID = id
	return category, nil
}
