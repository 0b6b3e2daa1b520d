package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the append-only contact store.
type Repository interface {
	Append(ctx context.Context, contact Contact) (Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Search(ctx context.Context, term string) ([]Contact, error)
}

const schema = `CREATE TABLE IF NOT EXISTS contacts (
    id         BIGSERIAL PRIMARY KEY,
    first_name TEXT     NOT NULL,
    last_name  TEXT     NOT NULL,
    email      TEXT     NOT NULL,
    mobile     CHAR(10) NOT NULL,
    location   TEXT     NOT NULL
)`

const selectContacts = `SELECT id, first_name, last_name, email, mobile, location FROM contacts`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed contact repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the contacts table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	return nil
}

// Append inserts the contact and returns it with its assigned identifier.
func (r *PostgresRepository) Append(ctx context.Context, contact Contact) (Contact, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO contacts (first_name, last_name, email, mobile, location)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		contact.FirstName, contact.LastName, contact.Email, contact.Mobile, contact.Location)
	if err := row.Scan(&contact.ID); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

// List returns every contact in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]Contact, error) {
	return r.query(ctx, selectContacts+` ORDER BY id`)
}

// Search returns contacts whose first name, last name, email or location
// contains term, ignoring case. An empty term lists everything.
func (r *PostgresRepository) Search(ctx context.Context, term string) ([]Contact, error) {
	if term == "" {
		return r.List(ctx)
	}
	pattern := "%" + escapeLike(term) + "%"
	return r.query(ctx, selectContacts+`
        WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR location ILIKE $1
        ORDER BY id`, pattern)
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]Contact, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[Contact])
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []Contact{}
	}
	return contacts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in term match literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
