package postgres

import (
	"context"
	"database/sql"

	"visitorregistry/internal/domain"
)

// createVisitorsTable is idempotent and safe to run concurrently; racing
// requests on a fresh database must not fail on the second create.
const createVisitorsTable = `
	CREATE TABLE IF NOT EXISTS visitors (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		surname TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		visit_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type visitorRepository struct {
	DB *sql.DB
}

// NewVisitorRepository returns a domain.VisitorRepository implemented with Postgres.
func NewVisitorRepository(db *sql.DB) domain.VisitorRepository {
	return &visitorRepository{DB: db}
}

// Save checks out a dedicated connection so the schema statement and the
// insert run on the same session, and releases it on every exit path.
func (r *visitorRepository) Save(ctx context.Context, v *domain.Visitor) error {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, createVisitorsTable); err != nil {
		return err
	}

	query := `
		INSERT INTO visitors (first_name, surname, company, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, visit_date, created_at
	`
	return conn.QueryRowContext(ctx, query, v.FirstName, v.Surname, v.Company, v.Email).
		Scan(&v.ID, &v.VisitDate, &v.CreatedAt)
}

func (r *visitorRepository) List(ctx context.Context, limit, offset int) ([]*domain.Visitor, error) {
	query := `
		SELECT id, first_name, surname, company, email, visit_date, created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visitors []*domain.Visitor
	for rows.Next() {
		v := &domain.Visitor{}
		if err := rows.Scan(&v.ID, &v.FirstName, &v.Surname, &v.Company, &v.Email, &v.VisitDate, &v.CreatedAt); err != nil {
			return nil, err
		}
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if visitors == nil {
		visitors = []*domain.Visitor{}
	}
	return visitors, nil
}

func (r *visitorRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
