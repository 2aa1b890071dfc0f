package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/certificate/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const certificateColumns = `id, name, issuer, issue_date, expiry_date, credential_id, credential_url,
	category, status, description, level, icon, priority, skills, image_url,
	created_by, created_at, updated_at`

// sortExpressions whitelists ORDER BY expressions by sort key.
var sortExpressions = map[string]string{
	model.SortIssueDate:  "issue_date",
	model.SortExpiryDate: "expiry_date",
	model.SortName:       "LOWER(name)",
	model.SortCreatedAt:  "created_at",
	model.SortPriority:   "CASE priority WHEN 'Critical' THEN 4 WHEN 'High' THEN 3 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 1 ELSE 0 END",
}

type postgresCertificateRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCertificateRepository(pool *pgxpool.Pool) CertificateRepository {
	return &postgresCertificateRepository{pool: pool}
}

func scanCertificate(row pgx.Row) (*model.Certificate, error) {
	c := &model.Certificate{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Issuer,
		&c.IssueDate,
		&c.ExpiryDate,
		&c.CredentialID,
		&c.CredentialURL,
		&c.Category,
		&c.Status,
		&c.Description,
		&c.Level,
		&c.Icon,
		&c.Priority,
		&c.Skills,
		&c.ImageURL,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return c, err
}

func (r *postgresCertificateRepository) Create(ctx context.Context, c *model.Certificate) error {
	query := `
		INSERT INTO certificates (` + certificateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID, c.CredentialURL,
		c.Category, c.Status, c.Description, c.Level, c.Icon, c.Priority, c.Skills, c.ImageURL,
		c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

func (r *postgresCertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	c, err := scanCertificate(r.pool.QueryRow(ctx, `SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return c, nil
}

func (r *postgresCertificateRepository) Update(ctx context.Context, c *model.Certificate) error {
	query := `
		UPDATE certificates SET
			name = $2, issuer = $3, issue_date = $4, expiry_date = $5, credential_id = $6,
			credential_url = $7, category = $8, status = $9, description = $10, level = $11,
			icon = $12, priority = $13, skills = $14, image_url = $15, updated_at = $16
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
		c.CredentialURL, c.Category, c.Status, c.Description, c.Level,
		c.Icon, c.Priority, c.Skills, c.ImageURL, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCertificateNotFound
	}
	return nil
}

func (r *postgresCertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCertificateNotFound
	}
	return nil
}

func orderBy(filter model.CertificateFilter) string {
	expr, ok := sortExpressions[filter.Sort]
	if !ok {
		expr = sortExpressions[model.SortIssueDate]
	}
	dir := "DESC NULLS LAST"
	if filter.Ascending {
		dir = "ASC NULLS LAST"
	}
	return " ORDER BY " + expr + " " + dir + ", created_at DESC"
}

func (r *postgresCertificateRepository) List(
	ctx context.Context,
	filter model.CertificateFilter,
	page pagination.Params,
) ([]*model.Certificate, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Category != "", "category = ?", filter.Category).
		AddIf(filter.Status != "", "status = ?", filter.Status).
		AddIf(filter.Level != "", "level = ?", filter.Level).
		AddIf(filter.Priority != "", "priority = ?", filter.Priority).
		Search(filter.Search, "name", "issuer", "description", "array_to_string(skills, ' ')")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM certificates`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count certificates: %w", err)
	}

	query := `SELECT ` + certificateColumns + ` FROM certificates` + where.SQL() +
		orderBy(filter) + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Certificate, 0, page.Limit())
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan certificate: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate certificates: %w", err)
	}
	return items, total, nil
}

func (r *postgresCertificateRepository) Stats(ctx context.Context, now time.Time) (*model.Stats, error) {
	stats := &model.Stats{}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $1 AND expiry_date BETWEEN $4 AND $5)
		FROM certificates
	`
	err := r.pool.QueryRow(ctx, query,
		model.StatusActive, model.StatusExpired, model.StatusPending,
		now, now.AddDate(0, 0, model.ExpiringSoonDays),
	).Scan(&stats.Total, &stats.Active, &stats.Expired, &stats.Pending, &stats.ExpiringSoon)
	if err != nil {
		return nil, fmt.Errorf("failed to count certificate stats: %w", err)
	}

	if stats.Categories, err = r.groupCount(ctx, "category"); err != nil {
		return nil, err
	}
	if stats.Levels, err = r.groupCount(ctx, "level"); err != nil {
		return nil, err
	}
	return stats, nil
}

// groupCount only receives column names from Stats, never user input.
func (r *postgresCertificateRepository) groupCount(ctx context.Context, column string) ([]model.NameCount, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS n FROM certificates
		GROUP BY %[1]s
		ORDER BY n DESC, %[1]s
	`, column)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to group certificates by %s: %w", column, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.NameCount, error) {
		var nc model.NameCount
		err := row.Scan(&nc.Name, &nc.Count)
		return nc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan certificate groups: %w", err)
	}
	return out, nil
}
