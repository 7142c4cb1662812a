package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles every repository over a single gorm handle so that
// a membership transition can touch students, teams and tracks on one
// transaction.
type Repositories struct {
	Users    UserRepositoryInterface
	Students StudentRepositoryInterface
	Teams    TeamRepositoryInterface
	Tracks   TrackRepositoryInterface
}

// New builds the repository bundle over the given gorm handle
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Students: NewStudentRepository(db),
		Teams:    NewTeamRepository(db),
		Tracks:   NewTrackRepository(db),
	}
}

// TxManager runs a function against a transactional repository bundle.
// The callback's error rolls the transaction back; nil commits it.
type TxManager interface {
	Do(fn func(r *Repositories) error) error
}

// GormTxManager implements TxManager over gorm's native transactions
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a transaction manager over the given handle
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// Do runs fn inside a database transaction
func (m *GormTxManager) Do(fn func(r *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
