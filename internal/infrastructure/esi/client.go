package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/config"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain/repository"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
)

type client struct {
	httpClient        *http.Client
	baseURL           string
	compatibilityDate string
	userAgent         string
	logger            *zap.Logger
}

// NewESIClient создает новый клиент для EVE Swagger Interface
func NewESIClient(cfg *config.ESIConfig, logger *zap.Logger) repository.ESIRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:           cfg.BaseURL,
		compatibilityDate: cfg.CompatibilityDate,
		userAgent:         cfg.UserAgent,
		logger:            logger,
	}
}

// systemResponse - тело ответа ESI. Указатели отличают
// отсутствующее поле от нулевого значения.
type systemResponse struct {
	SystemID *int64          `json:"system_id"`
	Name     *string         `json:"name"`
	Position *systemPosition `json:"position"`
}

type systemPosition struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// GetSystem возвращает данные солнечной системы из ESI.
// Классификация ошибок происходит только здесь: 404 -> ErrSystemNotFound,
// сетевые сбои и прочие статусы -> ErrESIUnavailable, битое тело -> ErrESIInvalidResponse.
func (c *client) GetSystem(ctx context.Context, systemID int64) (*domain.SolarSystem, error) {
	url := fmt.Sprintf("%s/universe/systems/%d/", c.baseURL, systemID)

	c.logger.Debug("Calling ESI universe API",
		zap.String("url", url),
		zap.Int64("system_id", systemID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Compatibility-Date", c.compatibilityDate)

	// Один запрос без повторов: таймаут клиента ограничивает ожидание
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.Int64("system_id", systemID),
			zap.Error(err))
		return nil, errors.ErrESIUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn("System not found in ESI", zap.Int64("system_id", systemID))
		return nil, errors.ErrSystemNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("ESI returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrESIUnavailable
	}

	var sysResp systemResponse
	if err := json.NewDecoder(resp.Body).Decode(&sysResp); err != nil {
		c.logger.Error("Failed to decode ESI response",
			zap.Int64("system_id", systemID),
			zap.Error(err))
		return nil, errors.ErrESIInvalidResponse
	}

	if sysResp.SystemID == nil || sysResp.Name == nil || sysResp.Position == nil ||
		sysResp.Position.X == nil || sysResp.Position.Y == nil || sysResp.Position.Z == nil {
		c.logger.Error("ESI response missing required fields", zap.Int64("system_id", systemID))
		return nil, errors.ErrESIInvalidResponse
	}

	system := &domain.SolarSystem{
		SystemID: *sysResp.SystemID,
		Name:     *sysResp.Name,
		X:        *sysResp.Position.X,
		Y:        *sysResp.Position.Y,
		Z:        *sysResp.Position.Z,
	}

	c.logger.Debug("ESI system resolved",
		zap.Int64("system_id", system.SystemID),
		zap.String("name", system.Name))

	return system, nil
}
