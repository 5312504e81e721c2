package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osei-labs/paygate-bot/internal/domain"
)

// PaymentRepository persists processed payments. Uniqueness of the payment
// reference is enforced by the table constraint, not by application locking;
// concurrent inserts of the same reference leave exactly one row.
type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Insert writes a payment record. It reports false when a record with the
// same reference already exists, which is not an error.
func (r *PaymentRepository) Insert(ctx context.Context, p domain.Payment) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO payments (reference, status, amount, email, full_name, paid_at, chat_id, invite_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (reference) DO NOTHING
	`, p.Reference, p.Status, p.Amount, p.Email, p.FullName, p.PaidAt, p.ChatID, p.InviteLink)
	if err != nil {
		return false, fmt.Errorf("insert payment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PaymentRepository) Exists(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE reference = $1)`, reference,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment exists: %w", err)
	}
	return exists, nil
}

// List returns payments newest-first by insertion id. A negative limit
// returns all records.
func (r *PaymentRepository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	query := `
		SELECT id, reference, status, amount, email, full_name, paid_at, chat_id, invite_link, created_at
		FROM payments
		ORDER BY id DESC
	`
	args := []any{}
	if limit >= 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.ID, &p.Reference, &p.Status, &p.Amount, &p.Email,
			&p.FullName, &p.PaidAt, &p.ChatID, &p.InviteLink, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
