package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/pkg/apperrors"
)

// memStore is the shared in-memory backing for the mock repositories.
// Keeping all tables in one struct lets the mocks emulate the
// cross-table transactional behaviour of the real repositories.
type memStore struct {
	mu     sync.Mutex
	nextID int64

	accounts   map[int64]*models.Account        // by account id
	byUsername map[string]int64                 // username -> account id
	students   map[int64]*models.StudentProfile // by account id
	admins     map[int64]*models.AdminProfile   // by account id
	terms      map[int64]*models.Term           // by term id
	selections map[int64]*models.TermSelection  // by student profile id
	messages   []*models.Message
}

func newMemStore() *memStore {
	return &memStore{
		accounts:   make(map[int64]*models.Account),
		byUsername: make(map[string]int64),
		students:   make(map[int64]*models.StudentProfile),
		admins:     make(map[int64]*models.AdminProfile),
		terms:      make(map[int64]*models.Term),
		selections: make(map[int64]*models.TermSelection),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// studentByProfileID finds a student profile by its own id rather
// than the account id.
func (s *memStore) studentByProfileID(profileID int64) *models.StudentProfile {
	for _, student := range s.students {
		if student.ID == profileID {
			return student
		}
	}
	return nil
}

// mockAccountRepo implements IAccountRepository over the memStore.
// failProfileInsert simulates a profile insert failing inside the
// registration transaction: the account row must not survive either.
type mockAccountRepo struct {
	store             *memStore
	failProfileInsert bool
}

func (m *mockAccountRepo) GetAccountByID(_ context.Context, id int64) (*models.Account, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	account, ok := m.store.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *mockAccountRepo) GetAccountByUsername(_ context.Context, username string) (*models.Account, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	id, ok := m.store.byUsername[username]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	copied := *m.store.accounts[id]
	return &copied, nil
}

func (m *mockAccountRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	_, ok := m.store.byUsername[username]
	return ok, nil
}

func (m *mockAccountRepo) CreateStudentAccount(_ context.Context, account *models.Account, profile *models.StudentProfile) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, taken := m.store.byUsername[account.Username]; taken {
		return apperrors.ErrUsernameTaken
	}
	if m.failProfileInsert {
		// Nothing persists: the real repository rolls the account back.
		return errors.New("profile insert failed")
	}
	account.ID = m.store.id()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	profile.ID = m.store.id()
	profile.AccountID = account.ID
	m.store.accounts[account.ID] = account
	m.store.byUsername[account.Username] = account.ID
	m.store.students[account.ID] = profile
	return nil
}

func (m *mockAccountRepo) CreateAdminAccount(_ context.Context, account *models.Account, profile *models.AdminProfile) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, taken := m.store.byUsername[account.Username]; taken {
		return apperrors.ErrUsernameTaken
	}
	if m.failProfileInsert {
		return errors.New("profile insert failed")
	}
	account.ID = m.store.id()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	profile.ID = m.store.id()
	profile.AccountID = account.ID
	m.store.accounts[account.ID] = account
	m.store.byUsername[account.Username] = account.ID
	m.store.admins[account.ID] = profile
	return nil
}

func (m *mockAccountRepo) UpdateAccountWithStudentProfile(_ context.Context, account *models.Account, profile *models.StudentProfile) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	stored, ok := m.store.accounts[account.ID]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	stored.Password = account.Password
	stored.UpdatedAt = time.Now()
	m.store.students[account.ID] = profile
	return nil
}

func (m *mockAccountRepo) UpdateAccountWithAdminProfile(_ context.Context, account *models.Account, profile *models.AdminProfile) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	stored, ok := m.store.accounts[account.ID]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	stored.Password = account.Password
	stored.UpdatedAt = time.Now()
	m.store.admins[account.ID] = profile
	return nil
}

// mockStudentRepo implements IStudentRepository.
type mockStudentRepo struct {
	store *memStore
}

func (m *mockStudentRepo) GetStudentByAccountID(_ context.Context, accountID int64) (*models.StudentProfile, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	student, ok := m.store.students[accountID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *student
	return &copied, nil
}

// mockAdminRepo implements IAdminRepository.
type mockAdminRepo struct {
	store *memStore
}

func (m *mockAdminRepo) GetAdminByAccountID(_ context.Context, accountID int64) (*models.AdminProfile, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	admin, ok := m.store.admins[accountID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *admin
	return &copied, nil
}

func (m *mockAdminRepo) AdminExists(_ context.Context, id int64) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, admin := range m.store.admins {
		if admin.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// mockDepartmentRepo implements IDepartmentRepository over a fixed set.
type mockDepartmentRepo struct {
	departments []*models.Department
}

func (m *mockDepartmentRepo) ListDepartments(_ context.Context) ([]*models.Department, error) {
	return m.departments, nil
}

func (m *mockDepartmentRepo) DepartmentExists(_ context.Context, id int64) (bool, error) {
	for _, department := range m.departments {
		if department.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// mockTermRepo implements ITermRepository.
type mockTermRepo struct {
	store *memStore
}

// ListTerms mirrors the SQL contract: newest start date first, with
// an optional case-insensitive substring match on the name.
func (m *mockTermRepo) ListTerms(_ context.Context, nameFilter string) ([]*models.Term, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	terms := make([]*models.Term, 0, len(m.store.terms))
	for _, term := range m.store.terms {
		if nameFilter != "" && !strings.Contains(strings.ToLower(term.Name), strings.ToLower(nameFilter)) {
			continue
		}
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].StartDate.After(terms[j].StartDate)
	})
	return terms, nil
}

func (m *mockTermRepo) GetTermByID(_ context.Context, id int64) (*models.Term, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	term, ok := m.store.terms[id]
	if !ok {
		return nil, apperrors.ErrTermNotFound
	}
	copied := *term
	return &copied, nil
}

func (m *mockTermRepo) CreateTerm(_ context.Context, term *models.Term) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	term.ID = m.store.id()
	term.CreatedAt = time.Now()
	m.store.terms[term.ID] = term
	return nil
}

func (m *mockTermRepo) UpdateTerm(_ context.Context, term *models.Term) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, ok := m.store.terms[term.ID]; !ok {
		return apperrors.ErrTermNotFound
	}
	m.store.terms[term.ID] = term
	return nil
}

func (m *mockTermRepo) DeleteTerm(_ context.Context, id int64) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, ok := m.store.terms[id]; !ok {
		return apperrors.ErrTermNotFound
	}
	for _, selection := range m.store.selections {
		if selection.TermID == id {
			return apperrors.ErrTermHasUsage
		}
	}
	delete(m.store.terms, id)
	return nil
}

// mockSelectionRepo implements ISelectionRepository with the same
// all-or-nothing semantics as the transactional SQL implementation.
type mockSelectionRepo struct {
	store *memStore
}

func (m *mockSelectionRepo) GetCurrentSelection(_ context.Context, studentID int64) (*models.TermSelection, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	selection, ok := m.store.selections[studentID]
	if !ok {
		return nil, nil
	}
	copied := *selection
	return &copied, nil
}

func (m *mockSelectionRepo) ReplaceSelection(_ context.Context, studentID, termID int64) (*models.TermSelection, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	term, ok := m.store.terms[termID]
	if !ok {
		// Term validation happens before any mutation, so a bad term
		// leaves the existing selection untouched.
		return nil, apperrors.ErrInvalidTerm
	}

	selection := &models.TermSelection{
		ID:         m.store.id(),
		StudentID:  studentID,
		TermID:     termID,
		SelectedAt: time.Now(),
		Term:       term,
	}
	m.store.selections[studentID] = selection

	if student := m.store.studentByProfileID(studentID); student != nil {
		id := termID
		student.TermID = &id
	}

	copied := *selection
	return &copied, nil
}

// mockMessageRepo implements IMessageRepository.
type mockMessageRepo struct {
	store *memStore
}

func (m *mockMessageRepo) CreateMessage(_ context.Context, message *models.Message) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, ok := m.store.accounts[message.RecipientID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	message.ID = m.store.id()
	message.CreatedAt = time.Now()
	m.store.messages = append(m.store.messages, message)
	return nil
}

func (m *mockMessageRepo) ListMessagesForAccount(_ context.Context, accountID int64) ([]*models.Message, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	messages := make([]*models.Message, 0)
	for _, message := range m.store.messages {
		if message.SenderID == accountID || message.RecipientID == accountID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}
