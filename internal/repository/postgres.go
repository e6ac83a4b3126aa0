package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PostgresStore implements Store against PostgreSQL. Money columns are
// NUMERIC and scanned through strings so no float conversion ever happens.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ---------- users ----------

const userColumns = `id, name, email, password_hash, phone, bank_account, balance, created_at`

func (s *PostgresStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var balance string
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Phone, &user.BankAccount, &balance, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("invalid stored balance: %w", err)
	}
	return &user, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, phone, bank_account, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	created := *user
	created.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, query,
		created.Name, created.Email, created.PasswordHash,
		created.Phone, created.BankAccount, created.Balance.String(), created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (s *PostgresStore) UpdateUserBalance(ctx context.Context, userID int, newBalance decimal.Decimal) (*models.User, error) {
	query := `UPDATE users SET balance = $2 WHERE id = $1 RETURNING ` + userColumns
	return s.scanUser(s.db.QueryRowContext(ctx, query, userID, newBalance.String()))
}

// CompareAndSwapBalance updates the balance only when the stored value still
// equals expected; a conditional UPDATE gives the same serialisation the
// memory store gets from its mutex.
func (s *PostgresStore) CompareAndSwapBalance(ctx context.Context, userID int, expected, newBalance decimal.Decimal) (*models.User, bool, error) {
	query := `
		UPDATE users SET balance = $3
		WHERE id = $1 AND balance = $2
		RETURNING ` + userColumns
	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, userID, expected.String(), newBalance.String()))
	if err == ErrNotFound {
		// Either the user is missing or the balance moved; disambiguate.
		if _, getErr := s.GetUser(ctx, userID); getErr != nil {
			return nil, false, getErr
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// ---------- transactions ----------

const transactionColumns = `id, user_id, type, amount, recipient, recipient_account, description, status, created_at`

func scanTransaction(scan func(dest ...any) error) (*models.Transaction, error) {
	var tx models.Transaction
	var amount string
	var recipient, recipientAccount, description sql.NullString
	err := scan(
		&tx.ID, &tx.UserID, &tx.Type, &amount,
		&recipient, &recipientAccount, &description,
		&tx.Status, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount: %w", err)
	}
	tx.Recipient = recipient.String
	tx.RecipientAccount = recipientAccount.String
	tx.Description = description.String
	return &tx, nil
}

func (s *PostgresStore) GetTransaction(ctx context.Context, id int) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

func (s *PostgresStore) ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, *tx)
	}
	return txs, rows.Err()
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, recipient, recipient_account, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	created := *tx
	created.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, query,
		created.UserID, created.Type, created.Amount.String(),
		nullString(created.Recipient), nullString(created.RecipientAccount), nullString(created.Description),
		created.Status, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &created, nil
}

// ---------- contacts ----------

func (s *PostgresStore) listContacts(ctx context.Context, query string, userID int) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		var bank sql.NullString
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Account, &bank, &c.IsFrequent); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		c.Bank = bank.String
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *PostgresStore) ListContacts(ctx context.Context, userID int) ([]models.Contact, error) {
	query := `SELECT id, user_id, name, account, bank, is_frequent FROM contacts WHERE user_id = $1 ORDER BY id`
	return s.listContacts(ctx, query, userID)
}

func (s *PostgresStore) ListFrequentContacts(ctx context.Context, userID int) ([]models.Contact, error) {
	query := `SELECT id, user_id, name, account, bank, is_frequent FROM contacts WHERE user_id = $1 AND is_frequent ORDER BY id`
	return s.listContacts(ctx, query, userID)
}

func (s *PostgresStore) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (user_id, name, account, bank, is_frequent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	created := *contact
	err := s.db.QueryRowContext(ctx, query,
		created.UserID, created.Name, created.Account, nullString(created.Bank), created.IsFrequent,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &created, nil
}

// ---------- conversations ----------

func (s *PostgresStore) ListConversations(ctx context.Context, userID int) ([]models.Conversation, error) {
	query := `
		SELECT id, user_id, message, response, type, created_at
		FROM ai_conversations
		WHERE user_id = $1
		ORDER BY created_at DESC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	convs := make([]models.Conversation, 0)
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Message, &c.Response, &c.Type, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (s *PostgresStore) CreateConversation(ctx context.Context, conv *models.Conversation) (*models.Conversation, error) {
	query := `
		INSERT INTO ai_conversations (user_id, message, response, type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	created := *conv
	created.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, query,
		created.UserID, created.Message, created.Response, created.Type, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &created, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
