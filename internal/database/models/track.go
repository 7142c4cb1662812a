package models

import (
	"fmt"
	"time"
)

// TrackType distinguishes the two academic cohorts.
type TrackType string

const (
	TrackTypeBachelor TrackType = "bachelor"
	TrackTypeMaster   TrackType = "master"
)

// ParseTrackType validates a raw track type coming from the API.
func ParseTrackType(raw string) (TrackType, error) {
	switch TrackType(raw) {
	case TrackTypeBachelor, TrackTypeMaster:
		return TrackType(raw), nil
	default:
		return "", fmt.Errorf("unknown track type %q", raw)
	}
}

// Track is a time-boxed academic cohort hosting team formation.
// The "current" track of a type is the one with the latest non-null StartDate.
type Track struct {
	ID                       int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                     string     `json:"name" gorm:"size:200"`
	About                    string     `json:"about" gorm:"size:1000"`
	StartDate                *time.Time `json:"start_date"`
	EndDate                  *time.Time `json:"end_date"`
	Type                     TrackType  `json:"type" gorm:"type:varchar(20);index"`
	MinConstraint            int        `json:"min_constraint" gorm:"not null;default:3"`
	MaxConstraint            int        `json:"max_constraint" gorm:"not null;default:5"`
	MaxThirdCourseConstraint int        `json:"max_third_course_constraint"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`

	// Relationships
	CurrentTeams []Team `json:"current_teams,omitempty" gorm:"foreignKey:CurrentTrackID"`
}

// TableName returns the table name for Track
func (Track) TableName() string {
	return "tracks"
}
