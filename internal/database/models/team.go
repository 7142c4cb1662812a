package models

import (
	"time"
)

// Team is a bounded-capacity group of students tied to at most one track.
// Candidates holds the ids of students with pending join applications,
// encoded as space-separated integer tokens with a trailing space per token
// (the persisted format the frontend and export consumers rely on).
type Team struct {
	ID                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string    `json:"name" gorm:"size:200"`
	About              string    `json:"about" gorm:"size:1000"`
	ProjectType        string    `json:"project_type" gorm:"size:200"`
	Tags               string    `json:"tags" gorm:"size:500"`
	QuantityOfStudents int       `json:"quantity_of_students" gorm:"not null;default:0"`
	CaptainID          int64     `json:"captain_id"`
	FullFlag           bool      `json:"full_flag" gorm:"not null;default:false"`
	Candidates         string    `json:"candidates" gorm:"size:1000;default:''"`
	CurrentTrackID     *int64    `json:"current_track_id,omitempty" gorm:"index"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	CurrentTrack *Track    `json:"current_track,omitempty" gorm:"foreignKey:CurrentTrackID"`
	Students     []Student `json:"students,omitempty" gorm:"foreignKey:CurrentTeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
