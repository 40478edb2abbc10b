package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	mockHash := auth.NewMockHashServiceInterface(ctrl)
	mockJWT := auth.NewMockJWTServiceInterface(ctrl)
	service := New(mockRepo, mockHash, mockJWT)

	return service, mockRepo, mockHash, mockJWT
}

func TestService_Register(t *testing.T) {
	service, mockRepo, mockHash, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "Successful registration",
			username: "fleetboss",
			password: "password",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").Return(nil, nil)
				mockHash.EXPECT().HashPassword("password").Return("hashed", nil)
				mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, player *domain.Player) (*domain.Player, error) {
						assert.Equal(t, "fleetboss", player.Username)
						assert.Equal(t, "hashed", player.PasswordHash)
						assert.True(t, player.Balance.Equal(decimal.RequireFromString("100000.00")))
						assert.Equal(t, 0, player.Score)
						player.ID = 1
						return player, nil
					},
				)
			},
			wantErr: nil,
		},
		{
			name:     "Username already taken",
			username: "fleetboss",
			password: "password",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").
					Return(&domain.Player{ID: 1, Username: "fleetboss"}, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:     "Repo error on lookup",
			username: "fleetboss",
			password: "password",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").
					Return(nil, errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
		{
			name:     "Hashing error",
			username: "fleetboss",
			password: "password",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").Return(nil, nil)
				mockHash.EXPECT().HashPassword("password").Return("", errors.New("hash error"))
			},
			wantErr: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			player, err := service.Register(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, player)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, player)
				assert.Equal(t, 1, player.ID)
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	service, mockRepo, mockHash, _ := NewMock(t)
	ctx := context.Background()

	player := &domain.Player{ID: 1, Username: "fleetboss", PasswordHash: "hashed"}

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Successful authentication",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").Return(player, nil)
				mockHash.EXPECT().ComparePassword("hashed", "password").Return(true)
			},
		},
		{
			name: "Unknown username",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			mockSetup: func() {
				mockRepo.EXPECT().FindByUsername(ctx, "fleetboss").Return(player, nil)
				mockHash.EXPECT().ComparePassword("hashed", "password").Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := service.Authenticate(ctx, "fleetboss", "password")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, player, got)
			}
		})
	}
}

func TestService_GenerateToken(t *testing.T) {
	service, _, _, mockJWT := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   bool
	}{
		{
			name: "Successful token generation",
			mockSetup: func() {
				mockJWT.EXPECT().GenerateJWT(1, gomock.Any()).DoAndReturn(
					func(_ int, expiresAt time.Time) (string, error) {
						assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)
						return "token", nil
					},
				)
			},
		},
		{
			name: "JWT error",
			mockSetup: func() {
				mockJWT.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			token, err := service.GenerateToken(1)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token", token)
			}
		})
	}
}
