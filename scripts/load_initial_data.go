package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sawwere/team-selection/internal/config"
	"github.com/sawwere/team-selection/internal/database"
	"github.com/sawwere/team-selection/internal/database/models"
	"github.com/sawwere/team-selection/internal/selection"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed file structures. Students and teams reference tracks and each other
// by name, so the file stays readable and ids stay out of it.
type TrackData struct {
	Name          string `yaml:"name"`
	About         string `yaml:"about"`
	Type          string `yaml:"type"`
	StartDate     string `yaml:"start_date"`
	EndDate       string `yaml:"end_date,omitempty"`
	MinConstraint int    `yaml:"min_constraint,omitempty"`
	MaxConstraint int    `yaml:"max_constraint,omitempty"`
}

type UserData struct {
	Fio   string `yaml:"fio"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type StudentData struct {
	Fio         string `yaml:"fio"`
	Email       string `yaml:"email"`
	Course      int    `yaml:"course"`
	GroupNumber int    `yaml:"group_number"`
	AboutSelf   string `yaml:"about_self,omitempty"`
	Tags        string `yaml:"tags,omitempty"`
	Contacts    string `yaml:"contacts,omitempty"`
	TrackName   string `yaml:"track_name"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	About        string   `yaml:"about,omitempty"`
	ProjectType  string   `yaml:"project_type,omitempty"`
	Tags         string   `yaml:"tags,omitempty"`
	TrackName    string   `yaml:"track_name"`
	CaptainEmail string   `yaml:"captain_email"`
	MemberEmails []string `yaml:"member_emails,omitempty"`
}

type SeedFile struct {
	Tracks   []TrackData   `yaml:"tracks"`
	Users    []UserData    `yaml:"users"`
	Students []StudentData `yaml:"students"`
	Teams    []TeamData    `yaml:"teams"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	seed, err := loadSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	if err := apply(db, seed); err != nil {
		log.Fatalf("Failed to apply seed data: %v", err)
	}
	log.Printf("Seed data loaded: %d tracks, %d users, %d students, %d teams",
		len(seed.Tracks), len(seed.Users), len(seed.Students), len(seed.Teams))
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// apply loads everything in one transaction so a bad seed file leaves the
// database untouched.
func apply(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		tracksByName := make(map[string]*models.Track)
		for _, data := range seed.Tracks {
			track, err := buildTrack(data)
			if err != nil {
				return err
			}
			if err := tx.Create(track).Error; err != nil {
				return fmt.Errorf("create track %q: %w", data.Name, err)
			}
			tracksByName[track.Name] = track
		}

		for _, data := range seed.Users {
			role, err := models.ParseRole(data.Role)
			if err != nil {
				return fmt.Errorf("user %q: %w", data.Email, err)
			}
			user := &models.User{Fio: data.Fio, Email: data.Email, Role: role}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user %q: %w", data.Email, err)
			}
		}

		studentsByEmail := make(map[string]*models.Student)
		for _, data := range seed.Students {
			track, ok := tracksByName[data.TrackName]
			if !ok {
				return fmt.Errorf("student %q references unknown track %q", data.Email, data.TrackName)
			}
			student := &models.Student{
				Fio:         data.Fio,
				Email:       data.Email,
				Course:      data.Course,
				GroupNumber: data.GroupNumber,
				AboutSelf:   data.AboutSelf,
				Tags:        data.Tags,
				Contacts:    data.Contacts,
				TrackID:     &track.ID,
			}
			if err := tx.Create(student).Error; err != nil {
				return fmt.Errorf("create student %q: %w", data.Email, err)
			}
			studentsByEmail[student.Email] = student
		}

		for _, data := range seed.Teams {
			track, ok := tracksByName[data.TrackName]
			if !ok {
				return fmt.Errorf("team %q references unknown track %q", data.Name, data.TrackName)
			}
			captain, ok := studentsByEmail[data.CaptainEmail]
			if !ok {
				return fmt.Errorf("team %q references unknown captain %q", data.Name, data.CaptainEmail)
			}

			team := &models.Team{
				Name:        data.Name,
				About:       data.About,
				ProjectType: data.ProjectType,
				Tags:        data.Tags,
			}
			if err := tx.Create(team).Error; err != nil {
				return fmt.Errorf("create team %q: %w", data.Name, err)
			}

			selection.InitTeam(team, captain, track)
			if err := tx.Save(team).Error; err != nil {
				return fmt.Errorf("save team %q: %w", data.Name, err)
			}
			if err := tx.Save(captain).Error; err != nil {
				return fmt.Errorf("save captain %q: %w", data.CaptainEmail, err)
			}

			for _, email := range data.MemberEmails {
				member, ok := studentsByEmail[email]
				if !ok {
					return fmt.Errorf("team %q references unknown member %q", data.Name, email)
				}
				selection.Subscribe(member, team)
				if err := selection.Approve(member, team, track.MaxConstraint); err != nil {
					return fmt.Errorf("team %q member %q: %w", data.Name, email, err)
				}
				if err := tx.Save(member).Error; err != nil {
					return fmt.Errorf("save member %q: %w", email, err)
				}
			}
			if err := tx.Save(team).Error; err != nil {
				return fmt.Errorf("save team %q: %w", data.Name, err)
			}
		}

		return nil
	})
}

func buildTrack(data TrackData) (*models.Track, error) {
	trackType, err := models.ParseTrackType(data.Type)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", data.Name, err)
	}

	track := &models.Track{
		Name:          data.Name,
		About:         data.About,
		Type:          trackType,
		MinConstraint: data.MinConstraint,
		MaxConstraint: data.MaxConstraint,
	}
	if track.MinConstraint == 0 {
		track.MinConstraint = 3
	}
	if track.MaxConstraint == 0 {
		track.MaxConstraint = 5
	}

	if data.StartDate != "" {
		start, err := time.Parse("2006-01-02", data.StartDate)
		if err != nil {
			return nil, fmt.Errorf("track %q start date: %w", data.Name, err)
		}
		track.StartDate = &start
	}
	if data.EndDate != "" {
		end, err := time.Parse("2006-01-02", data.EndDate)
		if err != nil {
			return nil, fmt.Errorf("track %q end date: %w", data.Name, err)
		}
		track.EndDate = &end
	}
	return track, nil
}
