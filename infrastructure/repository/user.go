package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "name", "lastname", "email", "password_hash", "active", "role_id", "created_at", "updated_at",
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var user domain.User
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &user, nil
}
