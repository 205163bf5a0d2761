package models

// Report is a moderation flag raised against a class rating. Comentario
// is the flagged rating's comment, joined in for display.
type Report struct {
	ID          int64  `json:"id"`
	AvaliacaoID int64  `json:"avaliacao_id"`
	Comentario  string `json:"comentario"`
}
