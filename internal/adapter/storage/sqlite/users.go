package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
)

const userColumns = `id, name, email, password_hash, role, active, created_at, updated_at`

func scanUser(sc rowScanner) (*domain.User, error) {
	var (
		u         domain.User
		role      string
		active    int
		createdAt int64
		updatedAt int64
	)
	if err := sc.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	u.Active = active == 1
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, domain.NormalizeEmail(u.Email), u.PasswordHash, string(u.Role), boolInt(u.Active),
		toMillis(u.CreatedAt), toMillis(u.UpdatedAt))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists)
	}
	return err
}

func (s *Store) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUser(ctx, `email = ?`, domain.NormalizeEmail(email))
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getUser(ctx, `id = ?`, id)
}

func (s *Store) UpdateUser(ctx context.Context, u *domain.User) error {
	err := affectedOne(s.db.ExecContext(ctx, `UPDATE users
		SET name = ?, email = ?, role = ?, active = ?, updated_at = ? WHERE id = ?`,
		u.Name, domain.NormalizeEmail(u.Email), string(u.Role), boolInt(u.Active), toMillis(u.UpdatedAt), u.ID))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists)
	}
	return err
}

func (s *Store) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return affectedOne(s.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id))
}

func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}

var _ port.UserStore = (*Store)(nil)
