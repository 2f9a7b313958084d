package assistant

import (
	"context"
	"testing"

	"hotel-booking/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandRejectsEmptyCommand(t *testing.T) {
	s := NewService()

	_, err := s.ParseCommand(context.Background(), "   ")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestExtractJSONFromMarkdown(t *testing.T) {
	jsonBody := `{"action": "check_in", "booking_ref": "abc"}`

	assert.Equal(t, jsonBody, extractJSONFromMarkdown(jsonBody))
	assert.Equal(t, jsonBody, extractJSONFromMarkdown("```json\n"+jsonBody+"\n```"))
	assert.Equal(t, jsonBody, extractJSONFromMarkdown("```\n"+jsonBody+"\n```"))
}
