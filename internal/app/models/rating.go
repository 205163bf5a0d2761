package models

// Score bounds for a rating.
const (
	MinPontuacao = 1
	MaxPontuacao = 5
)

// Rating is a scored, commented review authored by a user against a class
// or a professor, with the author's display name joined in.
type Rating struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	UserNome   string `json:"user_nome"`
	Comentario string `json:"comentario"`
	Pontuacao  int    `json:"pontuacao"`
}
