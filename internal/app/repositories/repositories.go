package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	ProfessorRepository *ProfessorRepository
	CourseRepository    *CourseRepository
	ClassRepository     *ClassRepository
	UserRepository      *UserRepository
	RatingRepository    *RatingRepository
	ReportRepository    *ReportRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfessorRepository: NewProfessorRepository(db),
		CourseRepository:    NewCourseRepository(db),
		ClassRepository:     NewClassRepository(db),
		UserRepository:      NewUserRepository(db),
		RatingRepository:    NewRatingRepository(db),
		ReportRepository:    NewReportRepository(db),
	}
}
