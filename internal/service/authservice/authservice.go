package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/pkg/auth"
)

// Signup grant every new fleet operator starts with.
var startingBalance = decimal.RequireFromString("100000.00")

const tokenTTL = 24 * time.Hour

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlayerNotFound     = errors.New("player not found")
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Player, error)
	FindByID(ctx context.Context, playerID int) (*domain.Player, error)
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
}

type Service struct {
	playerRepo  Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		playerRepo:  repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*domain.Player, error) {
	existing, err := s.playerRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find player: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("player already exists, username: ", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	player := &domain.Player{
		Username:     username,
		PasswordHash: hashedPassword,
		Balance:      startingBalance,
		Score:        0,
	}
	newPlayer, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		zap.L().Error("can't create player: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("player successfully registered", zap.String("username", username))
	return newPlayer, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Player, error) {
	player, err := s.playerRepo.FindByUsername(ctx, username)
	if err != nil || player == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(player.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("player successfully authenticated", zap.String("username", username))
	return player, nil
}

func (s *Service) GenerateToken(playerID int) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(playerID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
