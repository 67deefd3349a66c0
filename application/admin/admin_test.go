package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appadmin "github.com/muhammadheryan/kidswear/application/admin"
	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	redismocks "github.com/muhammadheryan/kidswear/mocks/repository/redis"
	"github.com/muhammadheryan/kidswear/model"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		Auth: config.AuthConfig{
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
			JWTSecret:         "test-secret",
			JWTExpiration:     time.Hour,
			SessionExpTime:    time.Hour,
		},
	}
}

func assertErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode())
}

func TestAdminApp_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(r *redismocks.Repository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: session stored under the token id",
			req:  &model.LoginRequest{Username: "admin", Password: "s3cret"},
			mockCall: func(r *redismocks.Repository) {
				r.On("SetSession", mock.Anything, mock.AnythingOfType("string"), "admin", time.Hour).Return(nil).Once()
			},
		},
		{
			name:    "error: wrong password",
			req:     &model.LoginRequest{Username: "admin", Password: "nope"},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name:    "error: wrong username",
			req:     &model.LoginRequest{Username: "root", Password: "s3cret"},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: session store failure",
			req:  &model.LoginRequest{Username: "admin", Password: "s3cret"},
			mockCall: func(r *redismocks.Repository) {
				r.On("SetSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			sessions := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(sessions)
			}
			app := appadmin.NewAdminApp(testConfig(t), sessions)

			got, err := app.Login(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assertErrorType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", got.Username)
			assert.NotEmpty(t, got.Token)
		})
	}
}

func TestAdminApp_LoginNotConfigured(t *testing.T) {
	app := appadmin.NewAdminApp(testConfig(t), nil)
	_, err := app.Login(context.Background(), &model.LoginRequest{Username: "admin", Password: "s3cret"})
	assertErrorType(t, err, constant.ErrNotConfigured)
}

func TestAdminApp_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	sessions := redismocks.NewRepository(t)

	var jti string
	sessions.On("SetSession", mock.Anything, mock.AnythingOfType("string"), "admin", time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	app := appadmin.NewAdminApp(testConfig(t), sessions)
	res, err := app.Login(ctx, &model.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	sessions.On("GetSession", mock.Anything, jti).Return("admin", nil).Once()
	subject, err := app.ValidateToken(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	sessions.On("DeleteSession", mock.Anything, jti).Return(nil).Once()
	require.NoError(t, app.Logout(ctx, res.Token))

	sessions.On("GetSession", mock.Anything, jti).Return("", goredis.Nil).Once()
	_, err = app.ValidateToken(ctx, res.Token)
	assert.Error(t, err)

	_, err = app.ValidateToken(ctx, "not-a-jwt")
	assert.Error(t, err)
}
