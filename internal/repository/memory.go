package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/shopspring/decimal"
)

// MemoryStore keeps every entity in a map guarded by its own RWMutex.
// Ids are monotonically increasing per entity type, starting at 1, and are
// never reused. It is the default store for the demo deployment.
type MemoryStore struct {
	usersMu    sync.RWMutex
	users      map[int]models.User
	nextUserID int

	txMu   sync.RWMutex
	txs    map[int]models.Transaction
	nextTx int

	contactsMu  sync.RWMutex
	contacts    map[int]models.Contact
	nextContact int

	convsMu  sync.RWMutex
	convs    map[int]models.Conversation
	nextConv int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[int]models.User),
		nextUserID:  1,
		txs:         make(map[int]models.Transaction),
		nextTx:      1,
		contacts:    make(map[int]models.Contact),
		nextContact: 1,
		convs:       make(map[int]models.Conversation),
		nextConv:    1,
	}
}

// ---------- users ----------

func (s *MemoryStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByEmail does a linear scan and returns the first match.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}
	created := *user
	created.ID = s.nextUserID
	s.nextUserID++
	created.CreatedAt = time.Now().UTC()
	s.users[created.ID] = created
	return &created, nil
}

func (s *MemoryStore) UpdateUserBalance(ctx context.Context, userID int, newBalance decimal.Decimal) (*models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	user.Balance = newBalance
	s.users[userID] = user
	return &user, nil
}

func (s *MemoryStore) CompareAndSwapBalance(ctx context.Context, userID int, expected, newBalance decimal.Decimal) (*models.User, bool, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, false, ErrNotFound
	}
	if !user.Balance.Equal(expected) {
		return nil, false, nil
	}
	user.Balance = newBalance
	s.users[userID] = user
	return &user, true, nil
}

// ---------- transactions ----------

func (s *MemoryStore) GetTransaction(ctx context.Context, id int) (*models.Transaction, error) {
	s.txMu.RLock()
	defer s.txMu.RUnlock()
	tx, ok := s.txs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tx, nil
}

func (s *MemoryStore) ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error) {
	s.txMu.RLock()
	defer s.txMu.RUnlock()
	txs := make([]models.Transaction, 0)
	for id := 1; id < s.nextTx; id++ {
		if tx, ok := s.txs[id]; ok && tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	// Newest first; equal timestamps keep insertion order.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	return txs, nil
}

func (s *MemoryStore) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	created := *tx
	created.ID = s.nextTx
	s.nextTx++
	created.CreatedAt = time.Now().UTC()
	s.txs[created.ID] = created
	return &created, nil
}

// ---------- contacts ----------

func (s *MemoryStore) ListContacts(ctx context.Context, userID int) ([]models.Contact, error) {
	s.contactsMu.RLock()
	defer s.contactsMu.RUnlock()
	contacts := make([]models.Contact, 0)
	for id := 1; id < s.nextContact; id++ {
		if c, ok := s.contacts[id]; ok && c.UserID == userID {
			contacts = append(contacts, c)
		}
	}
	return contacts, nil
}

func (s *MemoryStore) ListFrequentContacts(ctx context.Context, userID int) ([]models.Contact, error) {
	s.contactsMu.RLock()
	defer s.contactsMu.RUnlock()
	contacts := make([]models.Contact, 0)
	for id := 1; id < s.nextContact; id++ {
		if c, ok := s.contacts[id]; ok && c.UserID == userID && c.IsFrequent {
			contacts = append(contacts, c)
		}
	}
	return contacts, nil
}

func (s *MemoryStore) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	s.contactsMu.Lock()
	defer s.contactsMu.Unlock()
	created := *contact
	created.ID = s.nextContact
	s.nextContact++
	s.contacts[created.ID] = created
	return &created, nil
}

// ---------- conversations ----------

func (s *MemoryStore) ListConversations(ctx context.Context, userID int) ([]models.Conversation, error) {
	s.convsMu.RLock()
	defer s.convsMu.RUnlock()
	convs := make([]models.Conversation, 0)
	for id := 1; id < s.nextConv; id++ {
		if c, ok := s.convs[id]; ok && c.UserID == userID {
			convs = append(convs, c)
		}
	}
	sort.SliceStable(convs, func(i, j int) bool {
		return convs[i].CreatedAt.After(convs[j].CreatedAt)
	})
	return convs, nil
}

func (s *MemoryStore) CreateConversation(ctx context.Context, conv *models.Conversation) (*models.Conversation, error) {
	s.convsMu.Lock()
	defer s.convsMu.Unlock()
	created := *conv
	created.ID = s.nextConv
	s.nextConv++
	created.CreatedAt = time.Now().UTC()
	s.convs[created.ID] = created
	return &created, nil
}
