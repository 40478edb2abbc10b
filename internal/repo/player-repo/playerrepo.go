package playerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `
        SELECT id, username, password_hash, balance, score
        FROM players
        WHERE username = $1
    `
	row := r.db.QueryRow(ctx, query, username)
	var player domain.Player
	err := row.Scan(&player.ID, &player.Username, &player.PasswordHash, &player.Balance, &player.Score)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find player by username", zap.Error(err))
		return nil, err
	}
	return &player, nil
}

func (r *Repository) FindByID(ctx context.Context, playerID int) (*domain.Player, error) {
	query := `
        SELECT id, username, password_hash, balance, score
        FROM players
        WHERE id = $1
    `
	return r.scanPlayer(r.db.QueryRow(ctx, query, playerID))
}

// FindByIDForUpdate locks the player row for the duration of the surrounding
// transaction, serializing concurrent purchases per player.
func (r *Repository) FindByIDForUpdate(ctx context.Context, playerID int) (*domain.Player, error) {
	query := `
        SELECT id, username, password_hash, balance, score
        FROM players
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanPlayer(r.db.QueryRow(ctx, query, playerID))
}

func (r *Repository) scanPlayer(row pgx.Row) (*domain.Player, error) {
	var player domain.Player
	err := row.Scan(&player.ID, &player.Username, &player.PasswordHash, &player.Balance, &player.Score)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find player", zap.Error(err))
		return nil, err
	}
	return &player, nil
}

func (r *Repository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	query := `
		INSERT INTO players (username, password_hash, balance, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, player.Username, player.PasswordHash, player.Balance, player.Score).Scan(&player.ID)
	if err != nil {
		zap.L().Error("can't save player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, playerID int, balance decimal.Decimal) error {
	query := `
		UPDATE players
		SET balance = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, balance, playerID)
	if err != nil {
		zap.L().Error("can't update player balance", zap.Error(err))
		return err
	}
	return nil
}

// AddEarnings credits a completed fare: balance and score move together.
func (r *Repository) AddEarnings(ctx context.Context, playerID int, amount decimal.Decimal, score int) error {
	query := `
		UPDATE players
		SET balance = balance + $1, score = score + $2
		WHERE id = $3
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, amount, score, playerID)
		if err != nil {
			zap.L().Error("can't add player earnings", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM players
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list player ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan player id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
