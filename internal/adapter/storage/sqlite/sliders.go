package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
)

const sliderColumns = `id, title, description, image_url, media_id, page_type, active, position,
	start_date, end_date, button_text, button_link, background, created_at, updated_at`

func scanSlider(sc rowScanner) (*domain.Slider, error) {
	var (
		sl        domain.Slider
		page      string
		active    int
		startDate int64
		endDate   sql.NullInt64
		createdAt int64
		updatedAt int64
	)
	err := sc.Scan(&sl.ID, &sl.Title, &sl.Description, &sl.ImageURL, &sl.MediaID, &page, &active, &sl.Order,
		&startDate, &endDate, &sl.ButtonText, &sl.ButtonLink, &sl.Background, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	sl.PageType = domain.PageType(page)
	sl.Active = active == 1
	sl.StartDate = fromMillis(startDate)
	sl.EndDate = timePtr(endDate)
	sl.CreatedAt = fromMillis(createdAt)
	sl.UpdatedAt = fromMillis(updatedAt)
	return &sl, nil
}

func (s *Store) SaveSlider(ctx context.Context, sl *domain.Slider) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO sliders (`+sliderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sl.ID, sl.Title, sl.Description, sl.ImageURL, sl.MediaID, string(sl.PageType), boolInt(sl.Active), sl.Order,
		toMillis(sl.StartDate), nullMillis(sl.EndDate), sl.ButtonText, sl.ButtonLink, sl.Background,
		toMillis(sl.CreatedAt), toMillis(sl.UpdatedAt))
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: slider %s", domain.ErrAlreadyExists, sl.ID)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: media %s", domain.ErrNotFound, sl.MediaID)
	}
	return err
}

func (s *Store) UpdateSlider(ctx context.Context, sl *domain.Slider) error {
	err := affectedOne(s.db.ExecContext(ctx, `UPDATE sliders SET
		title = ?, description = ?, image_url = ?, media_id = ?, page_type = ?, active = ?, position = ?,
		start_date = ?, end_date = ?, button_text = ?, button_link = ?, background = ?, updated_at = ?
		WHERE id = ?`,
		sl.Title, sl.Description, sl.ImageURL, sl.MediaID, string(sl.PageType), boolInt(sl.Active), sl.Order,
		toMillis(sl.StartDate), nullMillis(sl.EndDate), sl.ButtonText, sl.ButtonLink, sl.Background,
		toMillis(sl.UpdatedAt), sl.ID))
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: media %s", domain.ErrNotFound, sl.MediaID)
	}
	return err
}

func (s *Store) GetSlider(ctx context.Context, id string) (*domain.Slider, error) {
	sl, err := scanSlider(s.db.QueryRowContext(ctx, `SELECT `+sliderColumns+` FROM sliders WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return sl, err
}

func (s *Store) DeleteSlider(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM sliders WHERE id = ?`, id))
}

func (s *Store) ListSliders(ctx context.Context, page domain.PageType) ([]*domain.Slider, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sliderColumns+` FROM sliders
		WHERE ? = '' OR page_type = ?
		ORDER BY position, created_at, id`, string(page), string(page))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sliders := []*domain.Slider{}
	for rows.Next() {
		sl, err := scanSlider(rows)
		if err != nil {
			return nil, err
		}
		sliders = append(sliders, sl)
	}
	return sliders, rows.Err()
}

var _ port.SliderStore = (*Store)(nil)
