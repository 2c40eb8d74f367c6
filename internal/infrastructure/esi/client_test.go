package esi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/config"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
)

func TestClient_GetSystem(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/universe/systems/30000142/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "2026-02-02", r.Header.Get("X-Compatibility-Date"))
			assert.Equal(t, "WizardLightYearsCalculator, Username=Dusty Meg", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"system_id": 30000142,
				"name": "Jita",
				"position": {
					"x": -129400292875304960.0,
					"y": 61596815791300400.0,
					"z": 1720986748719556600.0
				},
				"security_status": 0.9459,
				"constellation_id": 20000020
			}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL:           server.URL,
			Timeout:           5 * time.Second,
			CompatibilityDate: "2026-02-02",
			UserAgent:         "WizardLightYearsCalculator, Username=Dusty Meg",
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		require.NoError(t, err)
		require.NotNil(t, system)
		assert.Equal(t, int64(30000142), system.SystemID)
		assert.Equal(t, "Jita", system.Name)
		assert.Equal(t, -129400292875304960.0, system.X)
		assert.Equal(t, 61596815791300400.0, system.Y)
		assert.Equal(t, 1720986748719556600.0, system.Z)
	})

	t.Run("system not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Solar system not found"}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30999999)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrSystemNotFound, err)
	})

	t.Run("upstream server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "internal error"}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIUnavailable, err)
	})

	t.Run("network failure", func(t *testing.T) {
		// Server is stopped before the request goes out
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIUnavailable, err)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 50 * time.Millisecond,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIUnavailable, err)
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`not a json`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIInvalidResponse, err)
	})

	t.Run("response without position", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"system_id": 30000142, "name": "Jita"}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIInvalidResponse, err)
	})

	t.Run("response without name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"system_id": 30000142, "position": {"x": 1.0, "y": 2.0, "z": 3.0}}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIInvalidResponse, err)
	})

	t.Run("position with missing axis", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"system_id": 30000142, "name": "Jita", "position": {"x": 1.0, "y": 2.0}}`))
		}))
		defer server.Close()

		cfg := &config.ESIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		}

		client := NewESIClient(cfg, logger)

		system, err := client.GetSystem(context.Background(), 30000142)
		assert.Nil(t, system)
		assert.Equal(t, errors.ErrESIInvalidResponse, err)
	})
}
