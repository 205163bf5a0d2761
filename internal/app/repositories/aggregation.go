package repositories

import (
	"github.com/emigue/backend/internal/app/models"
)

// The aggregation view yields one row per class. The listings need one
// record per professor, so flat rows are folded in memory: rows sharing a
// professor id accumulate rating counts and sums, name fields are taken
// from the first row seen for that id (all rows of one professor carry
// the same names). Output order follows first sight of each id and is not
// a contract.

// GroupProfessorItems collapses view rows into one listing entry per
// professor, collecting the distinct course names taught.
func GroupProfessorItems(rows []models.ClassAggregateRow) []models.ProfessorItem {
	items := make([]models.ProfessorItem, 0)
	index := make(map[int64]int)
	seen := make(map[int64]map[string]bool)

	for _, row := range rows {
		i, ok := index[row.ProfessorID]
		if !ok {
			index[row.ProfessorID] = len(items)
			seen[row.ProfessorID] = map[string]bool{row.DisciplinaNome: true}
			items = append(items, models.ProfessorItem{
				ID:            row.ProfessorID,
				Nome:          row.ProfessorNome,
				Disciplinas:   []string{row.DisciplinaNome},
				QtdAvaliacoes: row.QtdAvaliacoes,
				SumAvaliacoes: row.SumAvaliacoes,
			})
			continue
		}

		items[i].QtdAvaliacoes += row.QtdAvaliacoes
		items[i].SumAvaliacoes += row.SumAvaliacoes
		if !seen[row.ProfessorID][row.DisciplinaNome] {
			seen[row.ProfessorID][row.DisciplinaNome] = true
			items[i].Disciplinas = append(items[i].Disciplinas, row.DisciplinaNome)
		}
	}

	return items
}

// GroupCourseProfessors collapses the view rows of a single course into
// one entry per professor teaching it.
func GroupCourseProfessors(rows []models.ClassAggregateRow) []models.CourseProfessor {
	professors := make([]models.CourseProfessor, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.ProfessorID]
		if !ok {
			index[row.ProfessorID] = len(professors)
			professors = append(professors, models.CourseProfessor{
				ID:            row.ProfessorID,
				Nome:          row.ProfessorNome,
				QtdAvaliacoes: row.QtdAvaliacoes,
				SumAvaliacoes: row.SumAvaliacoes,
			})
			continue
		}

		professors[i].QtdAvaliacoes += row.QtdAvaliacoes
		professors[i].SumAvaliacoes += row.SumAvaliacoes
	}

	return professors
}
