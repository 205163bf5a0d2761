package dto

// RatingRequest is the payload for submitting a rating against a class
// or a professor
type RatingRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Comentario string `json:"comentario" binding:"required"`
	Pontuacao  int    `json:"pontuacao" binding:"required"`
}

// ReportRequest is the payload for flagging a rating
type ReportRequest struct {
	AvaliacaoID int64 `json:"avaliacao_id" binding:"required"`
}
