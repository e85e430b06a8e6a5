package repositories

import (
	"context"
	"sync"
	"time"

	"healthpulse/internal/models/db_models"
	"healthpulse/pkg/utils"
)

// MemoryStore keeps accounts, profiles and lifestyle logs in process memory.
// It is the default store when no POSTGRES_URL is configured; all data is
// lost on restart. A single store-wide lock serializes writes so concurrent
// appends to the same account's log cannot interleave.
type MemoryStore struct {
	mu sync.RWMutex

	accountsByID    map[uint]db_models.Account
	accountsByEmail map[string]uint
	profiles        map[uint]db_models.HealthProfile
	logs            map[uint][]db_models.LifestyleLog

	nextAccountID uint
	nextLogID     uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accountsByID:    make(map[uint]db_models.Account),
		accountsByEmail: make(map[string]uint),
		profiles:        make(map[uint]db_models.HealthProfile),
		logs:            make(map[uint][]db_models.LifestyleLog),
		nextAccountID:   1,
		nextLogID:       1,
	}
}

func (s *MemoryStore) Create(ctx context.Context, account *db_models.Account, profile *db_models.HealthProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accountsByEmail[account.Email]; exists {
		return utils.ErrEmailAlreadyExists
	}

	account.ID = s.nextAccountID
	s.nextAccountID++
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	profile.AccountID = account.ID

	s.accountsByID[account.ID] = *account
	s.accountsByEmail[account.Email] = account.ID
	s.profiles[account.ID] = *profile
	s.logs[account.ID] = nil
	return nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.accountsByEmail[email]
	if !ok {
		return nil, nil
	}
	account := s.accountsByID[id]
	return &account, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id uint) (*db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accountsByID[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (s *MemoryStore) ProfileByAccountID(ctx context.Context, accountID uint) (*db_models.HealthProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[accountID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *MemoryStore) Append(ctx context.Context, entry *db_models.LifestyleLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextLogID
	s.nextLogID++
	s.logs[entry.AccountID] = append(s.logs[entry.AccountID], *entry)
	return nil
}

func (s *MemoryStore) Recent(ctx context.Context, accountID uint, n int) ([]db_models.LifestyleLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.logs[accountID]
	if len(all) > n {
		all = all[len(all)-n:]
	}
	out := make([]db_models.LifestyleLog, len(all))
	copy(out, all)
	return out, nil
}

func (s *MemoryStore) ListByAccount(ctx context.Context, accountID uint) ([]db_models.LifestyleLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.logs[accountID]
	out := make([]db_models.LifestyleLog, len(all))
	copy(out, all)
	return out, nil
}
