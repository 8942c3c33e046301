package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	"github.com/eggkhata/egg_khata_app/internal/models"
	"github.com/eggkhata/egg_khata_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxContactRepository struct {
	BaseRepository
}

// newPgxContactRepository creates a new repository for contact data.
func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

const contactColumns = `contact_id, name, type, phone, current_balance, price_adjustment, created_at, created_by, last_updated_at, last_updated_by`

func scanContact(row pgx.Row) (*models.Contact, error) {
	var m models.Contact
	var phone sql.NullString
	err := row.Scan(
		&m.ContactID,
		&m.Name,
		&m.Type,
		&phone,
		&m.CurrentBalance,
		&m.PriceAdjustment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		m.Phone = phone.String
	}
	return &m, nil
}

// SaveContact inserts a new contact.
func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)

	query := `
		INSERT INTO contacts (contact_id, name, type, phone, current_balance, price_adjustment, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	var phone sql.NullString
	if m.Phone != "" {
		phone = sql.NullString{String: m.Phone, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		m.ContactID,
		m.Name,
		m.Type,
		phone,
		m.CurrentBalance,
		m.PriceAdjustment,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: contact with ID %s already exists", apperrors.ErrDuplicate, m.ContactID)
		}
		return fmt.Errorf("failed to save contact %s: %w", m.ContactID, err)
	}
	return nil
}

// FindContactByID retrieves a contact by its ID.
func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`

	m, err := scanContact(r.Pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact by ID %s: %w", contactID, err)
	}

	d := mapping.ToDomainContact(*m)
	return &d, nil
}

// ListContacts retrieves contacts, optionally filtered by type, ordered by name.
func (r *PgxContactRepository) ListContacts(ctx context.Context, contactType *domain.ContactType) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`
	args := []any{}
	if contactType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*contactType))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, mapping.ToDomainContact(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", rows.Err())
	}
	return contacts, nil
}

// UpdateContact updates a contact's mutable fields. The balance column is
// deliberately not part of this statement.
func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)

	query := `
		UPDATE contacts
		SET name = $2, phone = $3, price_adjustment = $4, last_updated_at = $5, last_updated_by = $6
		WHERE contact_id = $1;
	`
	var phone sql.NullString
	if m.Phone != "" {
		phone = sql.NullString{String: m.Phone, Valid: true}
	}

	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ContactID,
		m.Name,
		phone,
		m.PriceAdjustment,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update contact %s: %w", m.ContactID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindContactByIDForUpdate retrieves a contact and locks its row for update.
// Must be called within a transaction.
func (r *PgxContactRepository) FindContactByIDForUpdate(ctx context.Context, tx pgx.Tx, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1 FOR UPDATE;`

	m, err := scanContact(tx.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock contact %s for update: %w", contactID, err)
	}

	d := mapping.ToDomainContact(*m)
	return &d, nil
}

// ApplyBalanceChangeInTx adds the signed delta to the contact's balance within
// the given transaction. The row must already be locked.
func (r *PgxContactRepository) ApplyBalanceChangeInTx(ctx context.Context, tx pgx.Tx, contactID string, delta decimal.Decimal, userID string, now time.Time) error {
	if delta.IsZero() {
		return nil
	}

	query := `
		UPDATE contacts
		SET current_balance = COALESCE(current_balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE contact_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, contactID, delta, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance for contact %s: %w", contactID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: contact %s not found during balance update", apperrors.ErrNotFound, contactID)
	}
	return nil
}
