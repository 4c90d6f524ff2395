package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required,max=5"`
	Notes string `json:"notes" validate:"max=3"`
}

func TestValidateUsesJSONNames(t *testing.T) {
	issues := Validate(samplePayload{Notes: "too long"})
	require.Equal(t, []ValidationIssue{
		{Field: "name", Reason: "is required"},
		{Field: "notes", Reason: "must be at most 3 characters"},
	}, issues)
}

func TestValidatePasses(t *testing.T) {
	require.Empty(t, Validate(samplePayload{Name: "Ana"}))
}

func TestRejectWritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	require.False(t, Reject(rec, "req-1", nil))

	rejected := Reject(rec, "req-1", []ValidationIssue{{Field: "name", Reason: "is required"}})
	require.True(t, rejected)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"validation_error"`)
	require.Contains(t, rec.Body.String(), `"requestId":"req-1"`)
}
