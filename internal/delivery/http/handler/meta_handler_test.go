package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/delivery/http/handler"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase/dto"
)

func TestMetaHandler_Index(t *testing.T) {
	h := handler.NewMetaHandler(nil, zap.NewNop())

	app := fiber.New()
	app.Get("/", h.Index)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body dto.APIInfoResponse
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Equal(t, "WizardLightYearsCalculator", body.Service)
	assert.NotEmpty(t, body.Version)
	assert.Contains(t, body.Endpoints, "GET /calculate-distance")
	assert.Contains(t, body.Endpoints, "POST /calculate-distance")
	assert.Contains(t, body.Endpoints, "GET /health")
	assert.Equal(t, []string{"system_id_1", "system_id_2"}, body.Usage.Parameters)
	assert.Equal(t, "30000000-31000000", body.Usage.ValidRange)
}
