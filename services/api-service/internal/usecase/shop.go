package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

var hundred = decimal.NewFromInt(100)

// ShopUsecase serves the product side catalog.
type ShopUsecase interface {
	ListProducts(ctx context.Context, req *payload.ListProductsRequest) ([]payload.ProductResponse, error)
	GetProduct(ctx context.Context, req *payload.IDRequest) (*payload.ProductResponse, error)
	SaveProduct(ctx context.Context, req *payload.SaveProductRequest) (*payload.ProductResponse, error)
	DeleteProduct(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	SaveCategory(ctx context.Context, req *payload.SaveCategoryRequest) (*model.Category, error)
}

type shopUsecase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	validator    *validation.Validator
}

func NewShopUsecase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	validator *validation.Validator,
) ShopUsecase {
	return &shopUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

func (u *shopUsecase) ListProducts(ctx context.Context, req *payload.ListProductsRequest) ([]payload.ProductResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	products, err := u.productRepo.ListProducts(ctx, repository.FilterProductsParams{
		CategoryID: req.CategoryID,
		Search:     strings.TrimSpace(req.Search),
		Limit:      req.Limit,
		Skip:       req.Skip,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "get products")
	}

	responses := make([]payload.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}

	return responses, nil
}

func (u *shopUsecase) GetProduct(ctx context.Context, req *payload.IDRequest) (*payload.ProductResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetProduct(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrProductNotFound
		}
		return nil, apperror.Wrap(err, "get product")
	}

	response := toProductResponse(*product)
	return &response, nil
}

func (u *shopUsecase) SaveProduct(ctx context.Context, req *payload.SaveProductRequest) (*payload.ProductResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
	}

	if req.ID != "" {
		existing, err := u.productRepo.GetProduct(ctx, req.ID)
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apperror.Validation("Invalid product id")
		case errors.Is(err, repository.ErrNotFound):
			product.ID, _ = bson.ObjectIDFromHex(req.ID)
		case err != nil:
			return nil, apperror.Wrap(err, "save product")
		default:
			product.ID = existing.ID
			product.CreatedAt = existing.CreatedAt
		}
	}

	saved, err := u.productRepo.SaveProduct(ctx, product)
	if err != nil {
		return nil, apperror.Wrap(err, "save product")
	}

	response := toProductResponse(*saved)
	return &response, nil
}

func (u *shopUsecase) DeleteProduct(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	deleted, err := u.productRepo.DeleteProduct(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrProductNotFound
		}
		return nil, apperror.Wrap(err, "delete product")
	}
	if deleted == 0 {
		return nil, ErrProductNotFound
	}

	return &payload.DeletedResponse{Deleted: deleted}, nil
}

func (u *shopUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, "get categories")
	}

	return orEmpty(categories), nil
}

func (u *shopUsecase) SaveCategory(ctx context.Context, req *payload.SaveCategoryRequest) (*model.Category, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	category := &model.Category{Name: strings.TrimSpace(req.Name), Icon: req.Icon, Order: req.Order}
	if req.ID != "" {
		id, err := bson.ObjectIDFromHex(req.ID)
		if err != nil {
			return nil, apperror.Validation("Invalid category id")
		}
		category.ID = id
	}

	saved, err := u.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		return nil, apperror.Wrap(err, "save category")
	}

	return saved, nil
}

// FinalPrice applies a percentage discount and rounds to cents.
func FinalPrice(price, discount float64) float64 {
	return decimal.NewFromFloat(price).
		Mul(hundred.Sub(decimal.NewFromFloat(discount))).
		Div(hundred).
		Round(2).
		InexactFloat64()
}

func toProductResponse(p model.Product) payload.ProductResponse {
	return payload.ProductResponse{Product: p, FinalPrice: FinalPrice(p.Price, p.Discount)}
}
