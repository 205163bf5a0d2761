package models

// ProfessorItem is one entry of the professors listing: rating totals
// accumulated over every class the professor teaches, plus the distinct
// course names taught.
type ProfessorItem struct {
	ID            int64    `json:"id"`
	Nome          string   `json:"nome"`
	Disciplinas   []string `json:"disciplinas"`
	QtdAvaliacoes int64    `json:"qtd_avaliacoes"`
	SumAvaliacoes int64    `json:"sum_avaliacoes"`
}

// ProfessorClass is a class taught by a professor as shown on the
// professor profile: course name plus section number.
type ProfessorClass struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Numero string `json:"numero"`
}

// ProfessorProfile is the full professor detail. Img carries the optional
// profile image as base64; nil when no image was seeded.
type ProfessorProfile struct {
	ID            int64            `json:"id"`
	Nome          string           `json:"nome"`
	Turmas        []ProfessorClass `json:"turmas"`
	QtdAvaliacoes int64            `json:"qtd_avaliacoes"`
	SumAvaliacoes int64            `json:"sum_avaliacoes"`
	Img           *string          `json:"img"`
	Avaliacoes    []Rating         `json:"avaliacoes"`
}
