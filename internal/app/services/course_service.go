package services

import (
	"context"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/repositories"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.CourseItem, error)
	GetCourse(ctx context.Context, id int64) (*models.CourseDetail, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// ListCourses retrieves all courses
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]models.CourseItem, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCourse retrieves a course with its professors
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.CourseDetail, error) {
	return s.courseRepo.GetDetail(ctx, id)
}
