package repositories

import "github.com/campusflow/backend/internal/db"

// Repositories bundles all repository instances for dependency wiring.
type Repositories struct {
	AccountRepository    *AccountRepository
	StudentRepository    *StudentRepository
	AdminRepository      *AdminRepository
	TermRepository       *TermRepository
	SelectionRepository  *SelectionRepository
	DepartmentRepository *DepartmentRepository
	MessageRepository    *MessageRepository
}

// NewRepositories creates all repositories sharing one pool handle.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AccountRepository:    NewAccountRepository(database),
		StudentRepository:    NewStudentRepository(database),
		AdminRepository:      NewAdminRepository(database),
		TermRepository:       NewTermRepository(database),
		SelectionRepository:  NewSelectionRepository(database),
		DepartmentRepository: NewDepartmentRepository(database),
		MessageRepository:    NewMessageRepository(database),
	}
}
