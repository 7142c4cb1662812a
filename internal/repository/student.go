package repository

import (
	"strings"

	"github.com/sawwere/team-selection/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Omit(clause.Associations).Create(student).Error
}

// GetByID retrieves a student by ID with their current team
func (r *StudentRepository) GetByID(id int64) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("CurrentTeam").Preload("User").First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("CurrentTeam").First(&student, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByUserID retrieves the student linked to a user account
func (r *StudentRepository) GetByUserID(userID int64) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("CurrentTeam").First(&student, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll() ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("CurrentTeam").Find(&students).Error
	return students, err
}

// GetByTrackID retrieves all students registered on a track
func (r *StudentRepository) GetByTrackID(trackID int64) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("CurrentTeam").Where("track_id = ?", trackID).Find(&students).Error
	return students, err
}

// GetCaptainsByTrackID retrieves all team captains on a track
func (r *StudentRepository) GetCaptainsByTrackID(trackID int64) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("CurrentTeam").
		Where("track_id = ? AND captain = ?", trackID, true).
		Find(&students).Error
	return students, err
}

// FindByStatusAndTrackID retrieves students on a track filtered by placement status
func (r *StudentRepository) FindByStatusAndTrackID(status bool, trackID int64) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("CurrentTeam").
		Where("status = ? AND track_id = ?", status, trackID).
		Find(&students).Error
	return students, err
}

// FindByTagAndTrackID retrieves students on a track whose tag string contains
// any of the space-separated tags as a whole token, so "C" does not match "CSS"
func (r *StudentRepository) FindByTagAndTrackID(tag string, trackID int64) ([]models.Student, error) {
	students := make([]models.Student, 0)
	tokens := strings.Fields(tag)
	if len(tokens) == 0 {
		return students, nil
	}

	cond := r.db.Where("' ' || tags || ' ' LIKE ?", "% "+tokens[0]+" %")
	for _, token := range tokens[1:] {
		cond = cond.Or("' ' || tags || ' ' LIKE ?", "% "+token+" %")
	}

	err := r.db.Preload("CurrentTeam").
		Where("track_id = ?", trackID).
		Where(cond).
		Find(&students).Error
	return students, err
}

// Update updates a student without touching associated rows
func (r *StudentRepository) Update(student *models.Student) error {
	return r.db.Omit(clause.Associations).Save(student).Error
}

// Delete deletes a student
func (r *StudentRepository) Delete(id int64) error {
	return r.db.Delete(&models.Student{}, "id = ?", id).Error
}
