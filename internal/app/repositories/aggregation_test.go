package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emigue/backend/internal/app/models"
)

func TestGroupProfessorItems(t *testing.T) {
	rows := []models.ClassAggregateRow{
		{TurmaID: 1, TurmaNumero: "01", ProfessorID: 1, ProfessorNome: "João Gomes", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 2, SumAvaliacoes: 8},
		{TurmaID: 2, TurmaNumero: "01", ProfessorID: 1, ProfessorNome: "João Gomes", DisciplinaID: 2, DisciplinaNome: "Linguagens de Programação", QtdAvaliacoes: 1, SumAvaliacoes: 4},
		{TurmaID: 4, TurmaNumero: "02", ProfessorID: 2, ProfessorNome: "Luan Lemos", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 2, SumAvaliacoes: 8},
	}

	items := GroupProfessorItems(rows)
	require.Len(t, items, 2)

	byID := make(map[int64]models.ProfessorItem)
	for _, it := range items {
		byID[it.ID] = it
	}

	joao := byID[1]
	assert.Equal(t, "João Gomes", joao.Nome)
	assert.Equal(t, int64(3), joao.QtdAvaliacoes)
	assert.Equal(t, int64(12), joao.SumAvaliacoes)
	assert.ElementsMatch(t, []string{"Programação Competitiva", "Linguagens de Programação"}, joao.Disciplinas)

	luan := byID[2]
	assert.Equal(t, int64(2), luan.QtdAvaliacoes)
	assert.Equal(t, int64(8), luan.SumAvaliacoes)
	assert.Equal(t, []string{"Programação Competitiva"}, luan.Disciplinas)
}

func TestGroupProfessorItemsDistinctCourses(t *testing.T) {
	// Two sections of the same course must yield the course name once.
	rows := []models.ClassAggregateRow{
		{TurmaID: 1, TurmaNumero: "01", ProfessorID: 3, ProfessorNome: "Rodrigo José", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 1, SumAvaliacoes: 5},
		{TurmaID: 2, TurmaNumero: "02", ProfessorID: 3, ProfessorNome: "Rodrigo José", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 1, SumAvaliacoes: 3},
	}

	items := GroupProfessorItems(rows)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"Programação Competitiva"}, items[0].Disciplinas)
	assert.Equal(t, int64(2), items[0].QtdAvaliacoes)
	assert.Equal(t, int64(8), items[0].SumAvaliacoes)
}

func TestGroupProfessorItemsNoRatings(t *testing.T) {
	rows := []models.ClassAggregateRow{
		{TurmaID: 9, TurmaNumero: "01", ProfessorID: 7, ProfessorNome: "Sem Avaliacao", DisciplinaID: 3, DisciplinaNome: "Organização e Arquitetura de Computadores"},
	}

	items := GroupProfessorItems(rows)
	require.Len(t, items, 1)
	assert.Zero(t, items[0].QtdAvaliacoes)
	assert.Zero(t, items[0].SumAvaliacoes)
}

func TestGroupProfessorItemsEmpty(t *testing.T) {
	items := GroupProfessorItems(nil)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGroupCourseProfessors(t *testing.T) {
	rows := []models.ClassAggregateRow{
		{TurmaID: 1, TurmaNumero: "01", ProfessorID: 1, ProfessorNome: "João Gomes", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 2, SumAvaliacoes: 8},
		{TurmaID: 4, TurmaNumero: "02", ProfessorID: 2, ProfessorNome: "Luan Lemos", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 1, SumAvaliacoes: 5},
		{TurmaID: 7, TurmaNumero: "03", ProfessorID: 2, ProfessorNome: "Luan Lemos", DisciplinaID: 1, DisciplinaNome: "Programação Competitiva", QtdAvaliacoes: 3, SumAvaliacoes: 10},
	}

	professors := GroupCourseProfessors(rows)
	require.Len(t, professors, 2)

	byID := make(map[int64]models.CourseProfessor)
	for _, p := range professors {
		byID[p.ID] = p
	}

	assert.Equal(t, int64(2), byID[1].QtdAvaliacoes)
	assert.Equal(t, int64(8), byID[1].SumAvaliacoes)
	assert.Equal(t, int64(4), byID[2].QtdAvaliacoes)
	assert.Equal(t, int64(15), byID[2].SumAvaliacoes)
}

func TestGroupCourseProfessorsEmpty(t *testing.T) {
	professors := GroupCourseProfessors([]models.ClassAggregateRow{})
	require.NotNil(t, professors)
	assert.Empty(t, professors)
}
