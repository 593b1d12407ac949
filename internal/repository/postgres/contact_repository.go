package postgres

import (
	"context"

	"github.com/pkg/errors"

	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *models.Contact) error {
	query :=
		`INSERT INTO contact
		 (id, name, email, personalemail, phone, year, address, domain, department, github, linkedin, leetcode, hackerrank)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 `

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.PersonalEmail, c.Phone, c.Year, c.Address,
		c.Domain, c.Department, c.GitHub, c.LinkedIn, c.LeetCode, c.HackerRank)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return errors.Wrap(err, "insert contact")
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, c *models.Contact) error {
	query :=
		`UPDATE contact
		 SET name = $1, email = $2, personalemail = $3, phone = $4, year = $5, address = $6, domain = $7,
		     department = $8, github = $9, linkedin = $10, leetcode = $11, hackerrank = $12
		 WHERE id = $13
		 `

	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Email, c.PersonalEmail, c.Phone, c.Year, c.Address, c.Domain,
		c.Department, c.GitHub, c.LinkedIn, c.LeetCode, c.HackerRank, c.ID)
	if err != nil {
		return errors.Wrap(err, "update contact")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update contact rows affected")
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	query :=
		`SELECT id, name, email, personalemail, phone, year, address, domain, department,
		        github, linkedin, leetcode, hackerrank
		 FROM contact
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select contacts")
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PersonalEmail, &c.Phone, &c.Year,
			&c.Address, &c.Domain, &c.Department, &c.GitHub, &c.LinkedIn, &c.LeetCode, &c.HackerRank); err != nil {
			return nil, errors.Wrap(err, "scan contact")
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate contacts")
	}
	return contacts, nil
}

func (r *ContactRepository) DeleteByPhone(ctx context.Context, phone string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact WHERE phone = $1`, phone)
	if err != nil {
		return 0, errors.Wrap(err, "delete contact")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "delete contact rows affected")
	}
	return n, nil
}
