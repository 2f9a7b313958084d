package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain error")))
	assert.Equal(t, Kind(""), KindOf(nil))

	// Wrapped domain errors are still classified.
	wrapped := fmt.Errorf("handling request: %w", Conflict("lost the race"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindConflict))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, HTTPStatus(Validation("bad")))
	assert.Equal(t, fiber.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, fiber.StatusConflict, HTTPStatus(InventoryExhausted("sold out")))
	assert.Equal(t, fiber.StatusConflict, HTTPStatus(InvalidState("wrong status")))
	assert.Equal(t, fiber.StatusConflict, HTTPStatus(Conflict("race lost")))
	assert.Equal(t, fiber.StatusInternalServerError, HTTPStatus(errors.New("db down")))
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindConflict, cause, "saving booking")

	assert.Equal(t, "saving booking: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("booking %d not found", 42)
	assert.Equal(t, "booking 42 not found", err.Error())
}
