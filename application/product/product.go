package product

import (
	"context"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	productRepo "github.com/muhammadheryan/kidswear/repository/product"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int, includeInactive bool) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id string, includeInactive bool) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch *model.ProductPatch) (*model.Product, error)
	DeactivateProduct(ctx context.Context, id string) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int, includeInactive bool) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	items, total, err := s.productRepo.List(ctx, page, perPage, !includeInactive)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	if items == nil {
		items = []model.Product{}
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// GetProduct hides deactivated products from the storefront.
func (s *productAppImpl) GetProduct(ctx context.Context, id string, includeInactive bool) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	if !result.IsActive && !includeInactive {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id string, patch *model.ProductPatch) (*model.Product, error) {
	if err := s.productRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("product_id", id), zap.Error(err))
		return nil, errors.Classify(err)
	}

	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("product_id", id), zap.Error(err))
		return nil, errors.Classify(err)
	}
	return result, nil
}

// DeactivateProduct is the catalog's delete: rows are never removed because
// order items keep pointing at them.
func (s *productAppImpl) DeactivateProduct(ctx context.Context, id string) error {
	inactive := false
	if err := s.productRepo.Update(ctx, id, &model.ProductPatch{IsActive: &inactive}); err != nil {
		logger.Error("[DeactivateProduct] error productRepo.Update", zap.String("product_id", id), zap.Error(err))
		return errors.Classify(err)
	}
	return nil
}
