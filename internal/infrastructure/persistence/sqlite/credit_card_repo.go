package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/repository"
)

type creditCardRepo struct {
	db     *sql.DB
	cipher *CardCipher
}

// NewCreditCardRepository creates a SQLite-backed card repository that keeps
// card numbers sealed at rest.
func NewCreditCardRepository(db *sql.DB, cipher *CardCipher) repository.CreditCardRepository {
	return &creditCardRepo{db: db, cipher: cipher}
}

func (r *creditCardRepo) Save(ctx context.Context, card *entity.CreditCard) error {
	sealed, err := r.cipher.Seal(card.Number)
	if err != nil {
		return err
	}

	created := card.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO autofill_cards
			(cardholder_name, number_sealed, last4, expiry_month, expiry_year, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		card.CardholderName, sealed, lastFour(card.Number), card.ExpiryMonth, card.ExpiryYear, created.Unix())
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read card id: %w", err)
	}
	card.ID = entity.CreditCardID(id)
	card.CreatedAt = time.Unix(created.Unix(), 0)
	return nil
}

func (r *creditCardRepo) GetAll(ctx context.Context) ([]*entity.CreditCard, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cardholder_name, number_sealed, expiry_month, expiry_year, created_at
		FROM autofill_cards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var out []*entity.CreditCard
	for rows.Next() {
		var (
			card    entity.CreditCard
			id      int64
			sealed  []byte
			created int64
		)
		if err := rows.Scan(&id, &card.CardholderName, &sealed, &card.ExpiryMonth, &card.ExpiryYear, &created); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		if card.Number, err = r.cipher.Open(sealed); err != nil {
			return nil, fmt.Errorf("card %d: %w", id, err)
		}
		card.ID = entity.CreditCardID(id)
		card.CreatedAt = time.Unix(created, 0)
		out = append(out, &card)
	}
	return out, rows.Err()
}

func (r *creditCardRepo) Delete(ctx context.Context, id entity.CreditCardID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM autofill_cards WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("delete card %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("card %d: %w", id, entity.ErrAutofillEntryNotFound)
	}
	return nil
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
