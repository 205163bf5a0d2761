package models

// CourseItem is one entry of the courses listing
type CourseItem struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// CourseProfessor is a professor teaching a course, with rating totals
// accumulated over that professor's classes of the course.
type CourseProfessor struct {
	ID            int64  `json:"id"`
	Nome          string `json:"nome"`
	QtdAvaliacoes int64  `json:"qtd_avaliacoes"`
	SumAvaliacoes int64  `json:"sum_avaliacoes"`
}

// CourseDetail is the course page: the course plus every professor
// teaching it.
type CourseDetail struct {
	ID          int64             `json:"id"`
	Nome        string            `json:"nome"`
	Professores []CourseProfessor `json:"professores"`
}
