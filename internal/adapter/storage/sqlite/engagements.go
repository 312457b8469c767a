package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
)

// qualify prefixes every column of a column list with alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

var engagementMediaColumns = qualify(mediaColumns, "m")

func (s *Store) AddEngagement(ctx context.Context, e *domain.Engagement, refresh bool) error {
	query := `INSERT INTO engagements (user_id, media_id, kind, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	if refresh {
		query += ` ON CONFLICT (user_id, media_id, kind) DO UPDATE SET updated_at = excluded.updated_at`
	}
	_, err := s.db.ExecContext(ctx, query,
		e.UserID, e.MediaID, string(e.Kind), toMillis(e.CreatedAt), toMillis(e.UpdatedAt))
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: media %s is already in %s", domain.ErrAlreadyExists, e.MediaID, e.Kind)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: user or media", domain.ErrNotFound)
	}
	return err
}

func (s *Store) RemoveEngagement(ctx context.Context, userID, mediaID string, kind domain.ListKind) error {
	return affectedOne(s.db.ExecContext(ctx,
		`DELETE FROM engagements WHERE user_id = ? AND media_id = ? AND kind = ?`, userID, mediaID, string(kind)))
}

func (s *Store) ListEngagements(ctx context.Context, userID string, kind domain.ListKind) ([]*domain.Engagement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT e.created_at, e.updated_at, `+engagementMediaColumns+`
		FROM engagements e JOIN media m ON m.id = e.media_id
		WHERE e.user_id = ? AND e.kind = ?
		ORDER BY e.updated_at DESC, m.id`, userID, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*domain.Engagement{}
	for rows.Next() {
		var createdAt, updatedAt int64
		m, err := scanMedia(prefixScanner{rows, []any{&createdAt, &updatedAt}})
		if err != nil {
			return nil, err
		}
		list = append(list, &domain.Engagement{
			UserID:    userID,
			MediaID:   m.ID,
			Kind:      kind,
			CreatedAt: fromMillis(createdAt),
			UpdatedAt: fromMillis(updatedAt),
			Media:     m,
		})
	}
	return list, rows.Err()
}

// prefixScanner scans leading columns into head before the wrapped destinations.
type prefixScanner struct {
	sc   rowScanner
	head []any
}

func (p prefixScanner) Scan(dest ...any) error {
	return p.sc.Scan(append(p.head, dest...)...)
}

func (s *Store) HasEngagement(ctx context.Context, userID, mediaID string, kind domain.ListKind) (bool, error) {
	var found bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (
		SELECT 1 FROM engagements WHERE user_id = ? AND media_id = ? AND kind = ?)`,
		userID, mediaID, string(kind)).Scan(&found)
	return found, err
}

func (s *Store) ClearEngagements(ctx context.Context, userID string, kind domain.ListKind) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM engagements WHERE user_id = ? AND kind = ?`, userID, string(kind))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) CountEngagements(ctx context.Context, mediaID string, kind domain.ListKind) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM engagements WHERE media_id = ? AND kind = ?`,
		mediaID, string(kind)).Scan(&n)
	return n, err
}

var _ port.EngagementStore = (*Store)(nil)
