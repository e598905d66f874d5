package postgres

import (
	"context"
	"database/sql"

	"gothamai/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

// NewContactRepository returns a domain.ContactRepository implemented with Postgres.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

var contactSortColumns = map[string]string{
	domain.SortByCreatedAt: "created_at",
}

const contactColumns = `id, name, email, subject, message, phone, ip_address, status, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	query := `
		INSERT INTO contacts (name, email, subject, message, phone, ip_address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Subject, c.Message, c.Phone, c.IPAddress, string(c.Status), c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *contactRepository) List(ctx context.Context, q domain.ContactQuery) ([]*domain.Contact, int, error) {
	var conds conditions
	if q.Status != "" {
		conds.add("status = %s", q.Status)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`+conds.where(), conds.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + conds.where() + pageOrderBy(q.Sort, contactSortColumns)
	query += " LIMIT " + conds.next(q.Pagination.PageSize) + " OFFSET " + conds.next(q.Pagination.Offset())
	rows, err := r.DB.QueryContext(ctx, query, conds.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c := &domain.Contact{}
		var status string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Phone, &c.IPAddress, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		c.Status = domain.ContactStatus(status)
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}
