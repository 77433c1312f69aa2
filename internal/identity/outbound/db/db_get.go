package db

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
)

func (s *DB) GetUserByEmail(ctx context.Context, email string) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, email, full_name, avatar_url, status, updated_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL`

	var user entity.User
	err = s.conn.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.FullName, &user.AvatarURL, &user.Status, &user.UpdatedAt,
	)
	if err = s.mapError(err); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, email, full_name, avatar_url, status, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	var user entity.User
	err = s.conn.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.FullName, &user.AvatarURL, &user.Status, &user.UpdatedAt,
	)
	if err = s.mapError(err); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *DB) GetUserLoginInfo(ctx context.Context, email string) (u *entity.UserLoginInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserLoginInfo")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT u.id, u.email, u.full_name, u.status, uc.password
		FROM users u
		JOIN user_credentials uc ON uc.user_id = u.id
		WHERE u.email = $1 AND u.deleted_at IS NULL`

	var info entity.UserLoginInfo
	err = s.conn.QueryRow(ctx, query, email).Scan(
		&info.ID, &info.Email, &info.FullName, &info.Status, &info.Password,
	)
	if err = s.mapError(err); err != nil {
		return nil, err
	}

	return &info, nil
}
