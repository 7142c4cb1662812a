package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/repository"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService builds the Excel roster of a track: the track's parameters
// followed by every team with its member list.
type ReportService struct {
	tracks repository.TrackRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(tracks repository.TrackRepositoryInterface) *ReportService {
	return &ReportService{tracks: tracks}
}

const reportDateLayout = "02.01.2006"

var (
	trackHeader = []interface{}{
		"Track", "About", "Start date", "End date", "Type",
		"Min members", "Max members", "Max third course",
	}
	teamHeader = []interface{}{
		"Team", "About", "Project type", "Members", "Full", "Tags",
	}
	studentHeader = []interface{}{
		"Name", "Email", "Course", "Group", "About", "Tags", "Captain",
	}
)

// ExcelForTrack renders the roster workbook for a track
func (s *ReportService) ExcelForTrack(trackID int64) (*excelize.File, error) {
	track, err := s.tracks.GetWithTeams(trackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	trackStyle, err := headerStyle(f, "FF0000")
	if err != nil {
		return nil, err
	}
	teamStyle, err := headerStyle(f, "0000FF")
	if err != nil {
		return nil, err
	}
	studentStyle, err := headerStyle(f, "008000")
	if err != nil {
		return nil, err
	}

	row := 1
	if err := writeRow(f, sheet, row, trackHeader, trackStyle); err != nil {
		return nil, err
	}
	row++
	trackRow := []interface{}{
		track.Name, track.About,
		formatReportDate(track.StartDate), formatReportDate(track.EndDate),
		string(track.Type),
		track.MinConstraint, track.MaxConstraint, track.MaxThirdCourseConstraint,
	}
	if err := writeRow(f, sheet, row, trackRow, 0); err != nil {
		return nil, err
	}
	row += 2

	for i := range track.CurrentTeams {
		team := &track.CurrentTeams[i]

		if err := writeRow(f, sheet, row, teamHeader, teamStyle); err != nil {
			return nil, err
		}
		row++
		teamRow := []interface{}{
			team.Name, team.About, team.ProjectType,
			team.QuantityOfStudents, team.FullFlag, team.Tags,
		}
		if err := writeRow(f, sheet, row, teamRow, 0); err != nil {
			return nil, err
		}
		row++

		if err := writeRow(f, sheet, row, studentHeader, studentStyle); err != nil {
			return nil, err
		}
		row++
		for j := range team.Students {
			student := &team.Students[j]
			studentRow := []interface{}{
				student.Fio, student.Email, student.Course, student.GroupNumber,
				student.AboutSelf, student.Tags, student.Captain,
			}
			if err := writeRow(f, sheet, row, studentRow, 0); err != nil {
				return nil, err
			}
			row++
		}
		row++
	}

	return f, nil
}

func headerStyle(f *excelize.File, color string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Family: "Calibri",
			Color:  color,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	return style, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	if style != 0 {
		end, err := excelize.CoordinatesToCellName(len(values), row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellStyle(sheet, start, end, style); err != nil {
			return fmt.Errorf("failed to style row %d: %w", row, err)
		}
	}
	return nil
}

func formatReportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(reportDateLayout)
}
