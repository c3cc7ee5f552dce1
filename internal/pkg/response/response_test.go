package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, MessageOK, DefaultMessage(fiber.StatusOK))
	assert.Equal(t, MessageUnprocessableEntity, DefaultMessage(fiber.StatusUnprocessableEntity))
	assert.Equal(t, MessageInternalServerError, DefaultMessage(fiber.StatusBadGateway))
	assert.Equal(t, MessageError, DefaultMessage(fiber.StatusTeapot))
}

func TestSuccess_Envelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Success(c, 0, "", map[string]int{"n": 1})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, fiber.StatusInternalServerError, env.Status)
	assert.Equal(t, MessageInternalServerError, env.Message)
}
