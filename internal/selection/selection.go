// Package selection implements the team-membership state machine: the
// subscribe/approve/decline/remove transitions and the derived-field rules
// (quantityOfStudents, fullFlag, captaincy) that every mutation must keep
// consistent. Functions here mutate the passed model structs in place and do
// no I/O; the service layer runs them inside a single transaction and
// persists the touched rows.
package selection

import (
	"github.com/sawwere/team-selection/internal/database/models"
	apperrors "github.com/sawwere/team-selection/internal/errors"
)

// Subscribe records a join application: the team id is appended to the
// student's subscriptions and the student id to the team's candidates.
// No capacity check happens here and duplicates are not collapsed;
// re-subscribing simply appends a second token.
func Subscribe(student *models.Student, team *models.Team) {
	student.Subscriptions = AppendID(student.Subscriptions, team.ID)
	team.Candidates = AppendID(team.Candidates, student.ID)
}

// Approve moves an applicant onto the team. The guard rejects the transition
// when the student is already placed or the team is full, leaving both rows
// untouched. On success the student's remaining applications are dropped
// wholesale: other teams keep a stale candidate token until they decline.
func Approve(student *models.Student, team *models.Team, maxConstraint int) error {
	if student.Status || team.FullFlag {
		return apperrors.ErrCannotAddStudent
	}

	student.Status = true
	student.CurrentTeamID = &team.ID
	student.CurrentTeam = team
	student.Subscriptions = ""

	team.QuantityOfStudents++
	team.Candidates = RemoveID(team.Candidates, student.ID)
	team.FullFlag = team.QuantityOfStudents == maxConstraint
	team.Students = append(team.Students, *student)
	return nil
}

// Decline withdraws an application from both sides: the student id token
// leaves the team's candidates and the team id token leaves the student's
// subscriptions. Membership is untouched; the removal from team.Students is
// defensive since a declined student was never added.
func Decline(student *models.Student, team *models.Team) {
	for i := range team.Students {
		if team.Students[i].ID == student.ID {
			team.Students = append(team.Students[:i], team.Students[i+1:]...)
			break
		}
	}
	student.Subscriptions = RemoveID(student.Subscriptions, team.ID)
	team.Candidates = RemoveID(team.Candidates, student.ID)
}

// Remove takes a member off the team. fullFlag stays true only while the
// remaining quantity still reaches the track's max constraint.
func Remove(student *models.Student, team *models.Team, maxConstraint int) {
	student.Status = false
	student.CurrentTeamID = nil
	student.CurrentTeam = nil

	for i := range team.Students {
		if team.Students[i].ID == student.ID {
			team.Students = append(team.Students[:i], team.Students[i+1:]...)
			break
		}
	}
	team.QuantityOfStudents--
	if team.QuantityOfStudents < maxConstraint {
		team.FullFlag = false
	}
}

// InitTeam sets up a freshly created team around its captain: exactly one
// member, the captain flag on the student and the captain id on the team.
func InitTeam(team *models.Team, captain *models.Student, track *models.Track) {
	team.CurrentTrackID = &track.ID
	team.CurrentTrack = track
	team.CaptainID = captain.ID
	team.QuantityOfStudents = 1
	team.FullFlag = false

	captain.Captain = true
	captain.Status = true
	captain.CurrentTeamID = &team.ID
	captain.CurrentTeam = team
	team.Students = []models.Student{*captain}
}

// Detach clears a student's membership state when the team itself goes away.
func Detach(student *models.Student) {
	student.Status = false
	student.CurrentTeamID = nil
	student.CurrentTeam = nil
	student.Captain = false
}
