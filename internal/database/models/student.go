package models

import (
	"time"
)

// Student is a registered participant of a track. Status is true exactly
// while the student is on a team. Subscriptions holds the ids of teams the
// student has applied to, in the same space-separated token encoding as
// Team.Candidates.
type Student struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Fio           string    `json:"fio" gorm:"size:200"`
	Email         string    `json:"email" gorm:"index;size:255"`
	Course        int       `json:"course"`
	GroupNumber   int       `json:"group_number"`
	AboutSelf     string    `json:"about_self" gorm:"size:1000"`
	Tags          string    `json:"tags" gorm:"size:500"`
	Contacts      string    `json:"contacts" gorm:"size:500"`
	Status        bool      `json:"status" gorm:"not null;default:false"`
	CurrentTeamID *int64    `json:"current_team_id,omitempty" gorm:"index"`
	TrackID       *int64    `json:"track_id,omitempty" gorm:"index"`
	Captain       bool      `json:"captain" gorm:"not null;default:false"`
	Subscriptions string    `json:"subscriptions" gorm:"size:1000;default:''"`
	UserID        *int64    `json:"user_id,omitempty" gorm:"index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	CurrentTeam *Team `json:"current_team,omitempty" gorm:"foreignKey:CurrentTeamID"`
	User        *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
