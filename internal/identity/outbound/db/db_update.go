package db

import "context"

func (s *DB) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPassword")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE user_credentials
		SET password = $2, updated_at = now()
		WHERE user_id = $1`

	_, err = s.conn.Exec(ctx, query, userID, passwordHash)
	err = s.mapError(err)
	return err
}
