package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emigue/backend/internal/app/models/dto"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"professor not found", apperrors.ErrProfessorNotFound, http.StatusNotFound, "Professor not found"},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, "Disciplina not found"},
		{"class not found", apperrors.ErrClassNotFound, http.StatusNotFound, "Turma not found"},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"password mismatch", apperrors.ErrPasswordMismatch, http.StatusNotFound, "Password fail to update"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "fail to register user"},
		{"duplicate matricula", apperrors.ErrMatriculaAlreadyExists, http.StatusBadRequest, "fail to register user"},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusBadRequest, "email or password invalid"},
		{"invariant violation", apperrors.ErrInvariantViolation, http.StatusBadRequest, "Fail to add avaliacao"},
		{"wrapped sentinel", fmt.Errorf("query turma: %w", apperrors.ErrClassNotFound), http.StatusNotFound, "Turma not found"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
		{"unknown error", fmt.Errorf("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tc.err)

			require.Equal(t, tc.wantStatus, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantMessage, resp.Error.Message)
			assert.False(t, resp.Success)
		})
	}
}
