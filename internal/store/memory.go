package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/cybank/internal/model"
	"github.com/shopspring/decimal"
)

// MemoryStore keeps every record in process memory. Lists come back in
// insertion order and every returned entity is a copy.
type MemoryStore struct {
	mu sync.RWMutex

	accounts     map[string]*model.Account
	userAccounts map[string][]string

	linked     map[string]*model.LinkedBankAccount
	userLinked map[string][]string

	transactions map[string][]*model.Transaction

	transfers     map[string]*model.Transfer
	transferOrder []string

	users     map[string]*model.User
	usernames map[string]string

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:     make(map[string]*model.Account),
		userAccounts: make(map[string][]string),
		linked:       make(map[string]*model.LinkedBankAccount),
		userLinked:   make(map[string][]string),
		transactions: make(map[string][]*model.Transaction),
		transfers:    make(map[string]*model.Transfer),
		users:        make(map[string]*model.User),
		usernames:    make(map[string]string),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) ExecTx(fn func(Repository) error) error {
	return fn(s)
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) CreateAccount(userID, name string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := &model.Account{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Balance:   decimal.Zero,
		Status:    model.AccountStatusActive,
		CreatedAt: s.now(),
	}
	s.accounts[acc.ID] = acc
	s.userAccounts[userID] = append(s.userAccounts[userID], acc.ID)

	cp := *acc
	return &cp, nil
}

func (s *MemoryStore) GetAccountByID(id string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with ID %s: %w", id, ErrRecordNotFound)
	}
	cp := *acc
	return &cp, nil
}

func (s *MemoryStore) ListAccounts(userID string) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userAccounts[userID]
	accounts := make([]*model.Account, 0, len(ids))
	for _, id := range ids {
		cp := *s.accounts[id]
		accounts = append(accounts, &cp)
	}
	return accounts, nil
}

func (s *MemoryStore) SetAccountBalance(id string, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("account with ID %s: %w", id, ErrRecordNotFound)
	}
	acc.Balance = balance
	return nil
}

func (s *MemoryStore) CreateLinkedBank(userID, bankName, accountNumber, accountType string, balance decimal.Decimal) (*model.LinkedBankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bank := &model.LinkedBankAccount{
		ID:            uuid.NewString(),
		UserID:        userID,
		BankName:      bankName,
		AccountNumber: accountNumber,
		AccountType:   accountType,
		Balance:       balance,
		LastSynced:    s.now(),
	}
	s.linked[bank.ID] = bank
	s.userLinked[userID] = append(s.userLinked[userID], bank.ID)

	cp := *bank
	return &cp, nil
}

func (s *MemoryStore) GetLinkedBankByID(id string) (*model.LinkedBankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bank, ok := s.linked[id]
	if !ok {
		return nil, fmt.Errorf("linked bank with ID %s: %w", id, ErrRecordNotFound)
	}
	cp := *bank
	return &cp, nil
}

func (s *MemoryStore) ListLinkedBanks(userID string) ([]*model.LinkedBankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userLinked[userID]
	banks := make([]*model.LinkedBankAccount, 0, len(ids))
	for _, id := range ids {
		cp := *s.linked[id]
		banks = append(banks, &cp)
	}
	return banks, nil
}

func (s *MemoryStore) SetLinkedBankBalance(id string, balance decimal.Decimal, syncedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bank, ok := s.linked[id]
	if !ok {
		return fmt.Errorf("linked bank with ID %s: %w", id, ErrRecordNotFound)
	}
	bank.Balance = balance
	bank.LastSynced = syncedAt
	return nil
}

func (s *MemoryStore) UnlinkBank(id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bank, ok := s.linked[id]
	if !ok {
		return fmt.Errorf("linked bank with ID %s: %w", id, ErrRecordNotFound)
	}
	if bank.UserID != userID {
		return fmt.Errorf("linked bank with ID %s: %w", id, ErrOwnershipMismatch)
	}

	delete(s.linked, id)
	ids := s.userLinked[userID]
	for i, linkedID := range ids {
		if linkedID == id {
			s.userLinked[userID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) TotalLinkedBalance(userID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, id := range s.userLinked[userID] {
		total = total.Add(s.linked[id].Balance)
	}
	return total, nil
}

func (s *MemoryStore) RecordTransaction(accountID string, entry model.Entry, description, category string) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; !ok {
		return nil, fmt.Errorf("account with ID %s: %w", accountID, ErrRecordNotFound)
	}

	txn := &model.Transaction{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Entry:       entry,
		Description: description,
		Category:    category,
		CreatedAt:   s.now(),
	}
	s.transactions[accountID] = append(s.transactions[accountID], txn)

	cp := *txn
	return &cp, nil
}

func (s *MemoryStore) ListTransactions(accountID string) ([]*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.transactions[accountID]
	out := make([]*model.Transaction, 0, len(log))
	for _, txn := range log {
		cp := *txn
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryStore) RecordTransfer(transfer *model.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *transfer
	if cp.ID == "" {
		cp.ID = uuid.NewString()
		transfer.ID = cp.ID
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = s.now()
		transfer.CreatedAt = cp.CreatedAt
	}
	if _, exists := s.transfers[cp.ID]; exists {
		return fmt.Errorf("transfer %s: %w", cp.ID, ErrConstraintViolation)
	}

	s.transfers[cp.ID] = &cp
	s.transferOrder = append(s.transferOrder, cp.ID)
	return nil
}

func (s *MemoryStore) ListTransfers(userID string) ([]*model.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Transfer
	for _, id := range s.transferOrder {
		t := s.transfers[id]
		if t.UserID != userID {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryStore) GetTransfer(id string) (*model.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transfers[id]
	if !ok {
		return nil, fmt.Errorf("transfer with ID %s: %w", id, ErrRecordNotFound)
	}
	cp := *t
	return &cp, nil
}

func (s *MemoryStore) CreateUser(username, passwordHash, fullName, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[username]; taken {
		return nil, fmt.Errorf("failed to create user '%s': %w", username, ErrUserExists)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Email:        email,
		CreatedAt:    s.now(),
	}
	s.users[user.ID] = user
	s.usernames[username] = user.ID

	cp := *user
	return &cp, nil
}

func (s *MemoryStore) GetUserByID(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrRecordNotFound)
	}
	cp := *user
	return &cp, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, fmt.Errorf("user '%s': %w", username, ErrRecordNotFound)
	}
	cp := *s.users[id]
	return &cp, nil
}
