package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/utez-accounts/internal/logger"
	"github.com/sbilibin2017/utez-accounts/internal/models"
	"github.com/sbilibin2017/utez-accounts/internal/services"
)

const uniqueViolation = "23505"

const userColumns = `user_id, email, name, surname, control_number, age, tel, password_hash, created_at, updated_at`

// executor returns the request transaction when there is one, db otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmailOrControlNumber returns the first user matching either non-nil argument,
// or nil when there is none.
func (r *UserReadRepository) GetByEmailOrControlNumber(ctx context.Context, email, controlNumber *string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND email = $1)
		   OR ($2::VARCHAR IS NOT NULL AND control_number = $2)
		LIMIT 1
	`
	return r.getOne(ctx, query, email, controlNumber)
}

// GetByID returns the user with userID, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken email or control number yields services.ErrUserAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (user_id, email, name, surname, control_number, age, tel, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{user.UserID, user.Email, user.Name, user.Surname, user.ControlNumber, user.Age, user.Tel, user.PasswordHash}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Password hash is left out of the log
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args[:len(args)-1],
		"result", rowsAffected,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return services.ErrUserAlreadyExists
	}

	return err
}
