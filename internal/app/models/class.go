package models

// ClassAggregateRow is one flat row of turmas_avaliacoes_view: a single
// class joined with its professor and course names and the rolled-up
// rating count/sum for that class.
type ClassAggregateRow struct {
	TurmaID        int64
	TurmaNumero    string
	ProfessorID    int64
	ProfessorNome  string
	DisciplinaID   int64
	DisciplinaNome string
	QtdAvaliacoes  int64
	SumAvaliacoes  int64
}

// ClassDetail is the class page: view row fields plus the ratings
// submitted against the class.
type ClassDetail struct {
	ID             int64    `json:"id"`
	Numero         string   `json:"numero"`
	ProfessorID    int64    `json:"professor_id"`
	ProfessorNome  string   `json:"professor_nome"`
	DisciplinaID   int64    `json:"disciplina_id"`
	DisciplinaNome string   `json:"disciplina_nome"`
	QtdAvaliacoes  int64    `json:"qtd_avaliacoes"`
	SumAvaliacoes  int64    `json:"sum_avaliacoes"`
	Avaliacoes     []Rating `json:"avaliacoes"`
}
