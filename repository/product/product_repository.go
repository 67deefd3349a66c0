package product

import (
	"context"

	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/repository/recordstore"
)

type NocoDB struct {
	client  recordstore.TableClient
	profile recordstore.SchemaProfile
	table   string
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, page, perPage int, activeOnly bool) ([]model.Product, int64, error)
	Update(ctx context.Context, id string, patch *model.ProductPatch) error
}

func NewProductRepository(client recordstore.TableClient, profile recordstore.SchemaProfile, tables recordstore.Tables) ProductRepository {
	return &NocoDB{client: client, profile: profile, table: tables.Products}
}

func (s *NocoDB) GetByID(ctx context.Context, id string) (*model.Product, error) {
	row, err := recordstore.FindOne(ctx, s.client, s.table, s.profile.ProductLookup(id))
	if err != nil {
		return nil, err
	}
	return s.profile.DecodeProduct(row)
}

func (s *NocoDB) List(ctx context.Context, page, perPage int, activeOnly bool) ([]model.Product, int64, error) {
	params := recordstore.ListParams{
		Sort:   "Id",
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
	if activeOnly {
		params.Where = s.profile.ActiveProductsWhere()
	}

	rows, info, err := s.client.List(ctx, s.table, params)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		p, err := s.profile.DecodeProduct(row)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *p)
	}
	return items, info.TotalRows, nil
}

func (s *NocoDB) Update(ctx context.Context, id string, patch *model.ProductPatch) error {
	row, err := recordstore.FindOne(ctx, s.client, s.table, s.profile.ProductLookup(id))
	if err != nil {
		return err
	}

	changes, err := s.profile.EncodeProductPatch(patch, row)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	return s.client.Update(ctx, s.table, recordstore.RowID(row), changes)
}
