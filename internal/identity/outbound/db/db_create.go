package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
)

// CreateUser inserts the account row and its credential row in one
// transaction.
func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	err = pgx.BeginFunc(ctx, s.conn, func(tx pgx.Tx) error {
		const insertUser = `
			INSERT INTO users (id, email, full_name, avatar_url, status, created_by, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		if _, err := tx.Exec(ctx, insertUser,
			user.ID, user.Email, user.FullName, user.AvatarURL, user.Status, user.CreatedBy, user.UpdatedBy,
		); err != nil {
			return err
		}

		const insertCredential = `
			INSERT INTO user_credentials (user_id, password)
			VALUES ($1, $2)`

		_, err := tx.Exec(ctx, insertCredential, user.ID, passwordHash)
		return err
	})

	err = s.mapError(err)
	return err
}
