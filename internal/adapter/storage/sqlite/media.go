package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
)

const mediaColumns = `id, type, title, plot, full_plot, genres, runtime, rated, cast_members, directors,
	writers, languages, countries, released, year, imdb_rating, imdb_votes, poster_url, playback,
	ingest_status, ingest_error, sport_details, news_details, views, created_at, updated_at`

// mediaRow is the column form of a media record.
type mediaRow struct {
	genres, cast, directors, writers, languages, countries string
	released                                              sql.NullInt64
	playback, sport, news                                 sql.NullString
	masterPlaylist                                        string
	startTime, endTime                                    sql.NullInt64
	breaking, featured                                    int
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	return string(b), err
}

func encodeOptional(v any, present bool) (sql.NullString, error) {
	if !present {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func toMediaRow(m *domain.Media) (*mediaRow, error) {
	r := &mediaRow{released: nullMillis(m.Released)}
	lists := []struct {
		dst *string
		src []string
	}{
		{&r.genres, m.Genres}, {&r.cast, m.Cast}, {&r.directors, m.Directors},
		{&r.writers, m.Writers}, {&r.languages, m.Languages}, {&r.countries, m.Countries},
	}
	for _, l := range lists {
		s, err := encodeList(l.src)
		if err != nil {
			return nil, err
		}
		*l.dst = s
	}

	var err error
	if r.playback, err = encodeOptional(m.Playback, m.Playback != nil); err != nil {
		return nil, fmt.Errorf("encode playback: %w", err)
	}
	if m.Playback != nil {
		r.masterPlaylist = m.Playback.MasterPlaylist
	}
	if r.sport, err = encodeOptional(m.Sport, m.Sport != nil); err != nil {
		return nil, fmt.Errorf("encode sport details: %w", err)
	}
	if m.Sport != nil {
		r.startTime = nullMillis(m.Sport.StartTime)
		r.endTime = nullMillis(m.Sport.EndTime)
	}
	if r.news, err = encodeOptional(m.News, m.News != nil); err != nil {
		return nil, fmt.Errorf("encode news details: %w", err)
	}
	if m.News != nil {
		r.breaking = boolInt(m.News.Breaking)
		r.featured = boolInt(m.News.Featured)
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedia(sc rowScanner) (*domain.Media, error) {
	var (
		m         domain.Media
		r         mediaRow
		mediaType string
		status    string
		createdAt int64
		updatedAt int64
	)
	err := sc.Scan(&m.ID, &mediaType, &m.Title, &m.Plot, &m.FullPlot, &r.genres, &m.Runtime, &m.Rated,
		&r.cast, &r.directors, &r.writers, &r.languages, &r.countries, &r.released, &m.Year,
		&m.IMDb.Rating, &m.IMDb.Votes, &m.PosterURL, &r.playback, &status, &m.IngestError,
		&r.sport, &r.news, &m.Views, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	m.Type = domain.MediaType(mediaType)
	m.IngestStatus = domain.IngestStatus(status)
	m.Released = timePtr(r.released)
	m.CreatedAt = fromMillis(createdAt)
	m.UpdatedAt = fromMillis(updatedAt)

	lists := []struct {
		dst *[]string
		src string
	}{
		{&m.Genres, r.genres}, {&m.Cast, r.cast}, {&m.Directors, r.directors},
		{&m.Writers, r.writers}, {&m.Languages, r.languages}, {&m.Countries, r.countries},
	}
	for _, l := range lists {
		if err := json.Unmarshal([]byte(l.src), l.dst); err != nil {
			return nil, fmt.Errorf("decode media %s list: %w", m.ID, err)
		}
	}
	if r.playback.Valid {
		m.Playback = &domain.TranscodeResult{}
		if err := json.Unmarshal([]byte(r.playback.String), m.Playback); err != nil {
			return nil, fmt.Errorf("decode media %s playback: %w", m.ID, err)
		}
	}
	if r.sport.Valid {
		m.Sport = &domain.SportDetails{}
		if err := json.Unmarshal([]byte(r.sport.String), m.Sport); err != nil {
			return nil, fmt.Errorf("decode media %s sport details: %w", m.ID, err)
		}
	}
	if r.news.Valid {
		m.News = &domain.NewsDetails{}
		if err := json.Unmarshal([]byte(r.news.String), m.News); err != nil {
			return nil, fmt.Errorf("decode media %s news details: %w", m.ID, err)
		}
	}
	return &m, nil
}

func (s *Store) Save(ctx context.Context, m *domain.Media) error {
	r, err := toMediaRow(m)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO media (`+mediaColumns+`,
		master_playlist, start_time, end_time, news_breaking, news_featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, string(m.Type), m.Title, m.Plot, m.FullPlot, r.genres, m.Runtime, m.Rated,
		r.cast, r.directors, r.writers, r.languages, r.countries, r.released, m.Year,
		m.IMDb.Rating, m.IMDb.Votes, m.PosterURL, r.playback, string(m.IngestStatus), m.IngestError,
		r.sport, r.news, m.Views, toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
		r.masterPlaylist, r.startTime, r.endTime, r.breaking, r.featured)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: media %s", domain.ErrAlreadyExists, m.ID)
	}
	return err
}

// Update writes the editable fields. Playback, ingest state and views are
// owned by UpdateIngest and IncrementViews.
func (s *Store) Update(ctx context.Context, m *domain.Media) error {
	r, err := toMediaRow(m)
	if err != nil {
		return err
	}
	return affectedOne(s.db.ExecContext(ctx, `UPDATE media SET
		type = ?, title = ?, plot = ?, full_plot = ?, genres = ?, runtime = ?, rated = ?,
		cast_members = ?, directors = ?, writers = ?, languages = ?, countries = ?, released = ?,
		year = ?, imdb_rating = ?, imdb_votes = ?, poster_url = ?, sport_details = ?, start_time = ?,
		end_time = ?, news_details = ?, news_breaking = ?, news_featured = ?, updated_at = ?
		WHERE id = ?`,
		string(m.Type), m.Title, m.Plot, m.FullPlot, r.genres, m.Runtime, m.Rated,
		r.cast, r.directors, r.writers, r.languages, r.countries, r.released,
		m.Year, m.IMDb.Rating, m.IMDb.Votes, m.PosterURL, r.sport, r.startTime,
		r.endTime, r.news, r.breaking, r.featured, toMillis(m.UpdatedAt),
		m.ID))
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Media, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+mediaColumns+` FROM media WHERE id = ?`, id)
	m, err := scanMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return m, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id))
}

func (s *Store) UpdateIngest(ctx context.Context, m *domain.Media) error {
	playback, err := encodeOptional(m.Playback, m.Playback != nil)
	if err != nil {
		return fmt.Errorf("encode playback: %w", err)
	}
	master := ""
	if m.Playback != nil {
		master = m.Playback.MasterPlaylist
	}
	return affectedOne(s.db.ExecContext(ctx, `UPDATE media
		SET playback = ?, master_playlist = ?, ingest_status = ?, ingest_error = ?, updated_at = ?
		WHERE id = ?`,
		playback, master, string(m.IngestStatus), m.IngestError, toMillis(m.UpdatedAt), m.ID))
}

func (s *Store) UpdatePoster(ctx context.Context, id, posterURL string) error {
	return affectedOne(s.db.ExecContext(ctx, `UPDATE media SET poster_url = ? WHERE id = ?`, posterURL, id))
}

func (s *Store) IncrementViews(ctx context.Context, id string) error {
	return affectedOne(s.db.ExecContext(ctx, `UPDATE media SET views = views + 1 WHERE id = ?`, id))
}

func (s *Store) List(ctx context.Context, q domain.MediaQuery) ([]*domain.Media, error) {
	q.Normalize()
	where, args := mediaFilter(q)
	query := `SELECT ` + mediaColumns + ` FROM media`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY ` + mediaOrder(q.Sort) + ` LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Media, 0, q.Limit)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func mediaFilter(q domain.MediaQuery) ([]string, []any) {
	var where []string
	var args []any
	add := func(clause string, a ...any) {
		where = append(where, clause)
		args = append(args, a...)
	}

	if q.Type != "" {
		add(`type = ?`, string(q.Type))
	}
	if q.Genre != "" {
		add(`EXISTS (SELECT 1 FROM json_each(media.genres) WHERE json_each.value = ? COLLATE NOCASE)`, q.Genre)
	}
	if q.Language != "" {
		add(`EXISTS (SELECT 1 FROM json_each(media.languages) WHERE json_each.value = ? COLLATE NOCASE)`, q.Language)
	}
	if q.Year > 0 {
		add(`year = ?`, q.Year)
	}
	if q.Text != "" {
		pattern := "%" + escapeLike(q.Text) + "%"
		add(`(title LIKE ? ESCAPE '\' OR plot LIKE ? ESCAPE '\' OR cast_members LIKE ? ESCAPE '\' OR directors LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern, pattern)
	}
	if q.MinRating > 0 {
		add(`imdb_rating >= ?`, q.MinRating)
	}
	if q.MinVotes > 0 {
		add(`imdb_votes >= ?`, q.MinVotes)
	}
	if q.Breaking {
		add(`news_breaking = 1`)
	}
	if q.Featured {
		add(`news_featured = 1`)
	}
	if q.Playable {
		add(`master_playlist != ''`)
	}
	if q.LiveAt != nil {
		now := toMillis(*q.LiveAt)
		add(`start_time <= ? AND end_time > ?`, now, now)
	}
	if q.UpcomingAfter != nil {
		add(`start_time > ?`, toMillis(*q.UpcomingAfter))
	}
	if q.ExcludeID != "" {
		add(`id != ?`, q.ExcludeID)
	}
	return where, args
}

func mediaOrder(sort domain.SortOrder) string {
	switch sort {
	case domain.SortRating:
		return `imdb_rating DESC, imdb_votes DESC, id`
	case domain.SortVotes:
		return `imdb_votes DESC, imdb_rating DESC, id`
	case domain.SortViews:
		return `views DESC, id`
	case domain.SortStartTime:
		return `start_time IS NULL, start_time ASC, id`
	default:
		return `COALESCE(released, created_at) DESC, created_at DESC, id`
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (s *Store) Genres(ctx context.Context, mediaType domain.MediaType) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT json_each.value
		FROM media, json_each(media.genres)
		WHERE ? = '' OR media.type = ?
		ORDER BY json_each.value`, string(mediaType), string(mediaType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

var _ port.MediaStore = (*Store)(nil)
