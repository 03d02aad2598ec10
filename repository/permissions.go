package repository

import (
	"context"
	"time"

	"github.com/litvinov-da/library/data"
	"github.com/lib/pq"
)

type permissions interface {
	GetAllPermissionsForUser(ctx context.Context, userID int64) (data.Permissions, error)
	AddPermissionsForUser(ctx context.Context, userID int64, codes ...string) error
}

// GetAllPermissionsForUser returns the permission codes granted to a user.
func (r *repository) GetAllPermissionsForUser(ctx context.Context, userID int64) (data.Permissions, error) {
	query := `
		SELECT permissions.code
		FROM permissions
		INNER JOIN users_permissions ON users_permissions.permission_id = permissions.id
		WHERE users_permissions.user_id = $1
		ORDER BY permissions.code`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var permissions data.Permissions
	for rows.Next() {
		var permission string
		err := rows.Scan(&permission)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, permission)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return permissions, nil
}

// AddPermissionsForUser grants permission codes to a user. Codes already
// granted are ignored.
func (r *repository) AddPermissionsForUser(ctx context.Context, userID int64, codes ...string) error {
	query := `
		INSERT INTO users_permissions
		SELECT $1, permissions.id FROM permissions WHERE permissions.code = ANY($2)
		ON CONFLICT DO NOTHING`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, userID, pq.Array(codes))
	return writeError(err)
}
