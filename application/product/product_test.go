package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appproduct "github.com/muhammadheryan/kidswear/application/product"
	"github.com/muhammadheryan/kidswear/constant"
	productmocks "github.com/muhammadheryan/kidswear/mocks/repository/product"
	"github.com/muhammadheryan/kidswear/model"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/stretchr/testify/mock"
)

func checkErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx             context.Context
		page            int
		perPage         int
		includeInactive bool
	}
	items := []model.Product{{ID: "1", Name: "Cotton Frock", Price: 500, IsActive: true}}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: storefront sees active products",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), page: 1, perPage: 10},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, 1, 10, true).Return(items, int64(1), nil).Once()
			},
			want: &model.ProductListResponse{Items: items, TotalCount: 1, Page: 1, PerPage: 10},
		},
		{
			name:   "success: admin listing includes inactive, defaults applied",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), page: 0, perPage: 0, includeInactive: true},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, 1, 10, false).Return(nil, int64(0), nil).Once()
			},
			want: &model.ProductListResponse{Items: []model.Product{}, TotalCount: 0, Page: 1, PerPage: 10},
		},
		{
			name:   "error: store unreachable",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			args:   args{ctx: context.Background(), page: 1, perPage: 10},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, 1, 10, true).Return(nil, int64(0), cerr.SetUpstreamError("nocodb", 0)).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstreamUnreachable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.ListProducts(tt.args.ctx, tt.args.page, tt.args.perPage, tt.args.includeInactive)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrorType(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	inactive := &model.Product{ID: "9", Name: "Old Romper", IsActive: false}

	t.Run("inactive product is hidden from the storefront", func(t *testing.T) {
		repo := productmocks.NewProductRepository(t)
		repo.On("GetByID", mock.Anything, "9").Return(inactive, nil).Once()

		_, err := appproduct.NewProductApp(repo).GetProduct(context.Background(), "9", false)
		checkErrorType(t, err, constant.ErrNotFound)
	})

	t.Run("inactive product is visible to admins", func(t *testing.T) {
		repo := productmocks.NewProductRepository(t)
		repo.On("GetByID", mock.Anything, "9").Return(inactive, nil).Once()

		got, err := appproduct.NewProductApp(repo).GetProduct(context.Background(), "9", true)
		if err != nil {
			t.Fatalf("GetProduct() error = %v", err)
		}
		if got.ID != "9" {
			t.Fatalf("GetProduct() = %+v", got)
		}
	})
}

func TestProductApp_UpdateProduct(t *testing.T) {
	price := int64(650)
	patch := &model.ProductPatch{Price: &price}

	t.Run("success", func(t *testing.T) {
		repo := productmocks.NewProductRepository(t)
		repo.On("Update", mock.Anything, "1", patch).Return(nil).Once()
		repo.On("GetByID", mock.Anything, "1").Return(&model.Product{ID: "1", Price: 650, IsActive: true}, nil).Once()

		got, err := appproduct.NewProductApp(repo).UpdateProduct(context.Background(), "1", patch)
		if err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}
		if got.Price != 650 {
			t.Fatalf("UpdateProduct() price = %d, want 650", got.Price)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := productmocks.NewProductRepository(t)
		repo.On("Update", mock.Anything, "404", patch).Return(cerr.SetCustomError(constant.ErrNotFound)).Once()

		_, err := appproduct.NewProductApp(repo).UpdateProduct(context.Background(), "404", patch)
		checkErrorType(t, err, constant.ErrNotFound)
	})
}

func TestProductApp_DeactivateProduct(t *testing.T) {
	repo := productmocks.NewProductRepository(t)
	repo.On("Update", mock.Anything, "1", mock.MatchedBy(func(p *model.ProductPatch) bool {
		return p.IsActive != nil && !*p.IsActive && p.Price == nil && p.Name == nil
	})).Return(nil).Once()

	if err := appproduct.NewProductApp(repo).DeactivateProduct(context.Background(), "1"); err != nil {
		t.Fatalf("DeactivateProduct() error = %v", err)
	}
}
