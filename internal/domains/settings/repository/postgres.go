package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/settings/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// document is the JSONB shape of the settings row. updated_at has its own column.
type document struct {
	SiteTitle       string            `json:"site_title"`
	Theme           string            `json:"theme"`
	MaintenanceMode bool              `json:"maintenance_mode"`
	Social          map[string]string `json:"social"`
	ContactInfo     model.ContactInfo `json:"contact_info"`
}

func toDocument(s *model.Settings) document {
	return document{
		SiteTitle:       s.SiteTitle,
		Theme:           s.Theme,
		MaintenanceMode: s.MaintenanceMode,
		Social:          s.Social,
		ContactInfo:     s.ContactInfo,
	}
}

func (d document) settings(updatedAt time.Time) *model.Settings {
	return &model.Settings{
		SiteTitle:       d.SiteTitle,
		Theme:           d.Theme,
		MaintenanceMode: d.MaintenanceMode,
		Social:          d.Social,
		ContactInfo:     d.ContactInfo,
		UpdatedAt:       updatedAt,
	}
}

func scanSettings(row pgx.Row) (*model.Settings, error) {
	// data is decoded over the defaults so keys added later still have a value
	doc := toDocument(model.Defaults())
	var updatedAt time.Time
	if err := row.Scan(&doc, &updatedAt); err != nil {
		return nil, err
	}
	return doc.settings(updatedAt), nil
}

func (r *postgresRepository) Get(ctx context.Context) (*model.Settings, error) {
	s, err := scanSettings(r.pool.QueryRow(ctx, `SELECT data, updated_at FROM settings WHERE id = 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) Merge(ctx context.Context, patch *model.Patch, seed *model.Settings) (*model.Settings, error) {
	query := `
		INSERT INTO settings AS s (id, data, updated_at)
		VALUES (1, $4::jsonb, NOW())
		ON CONFLICT (id) DO UPDATE SET
			data = (s.data - 'updated_at') || $1::jsonb || jsonb_build_object(
				'social', COALESCE(s.data->'social', '{}'::jsonb) || $2::jsonb,
				'contact_info', COALESCE(s.data->'contact_info', '{}'::jsonb) || $3::jsonb
			),
			updated_at = GREATEST(NOW(), s.updated_at + INTERVAL '1 microsecond')
		RETURNING data, updated_at
	`
	s, err := scanSettings(r.pool.QueryRow(ctx, query,
		patch.TopLevel(), patch.SocialFields(), patch.ContactFields(), toDocument(seed),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) Seed(ctx context.Context, s *model.Settings) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO settings (id, data) VALUES (1, $1::jsonb) ON CONFLICT (id) DO NOTHING`, toDocument(s))
	if err != nil {
		return false, fmt.Errorf("failed to seed settings: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
