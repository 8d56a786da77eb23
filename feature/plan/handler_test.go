package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"nomo-governance/core/governance"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, factory *stubFactory, store Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := newTestService(t, factory)
	if store != nil {
		svc.WithStore(store)
	}
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func decode(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleNetworks(t *testing.T) {
	app := setupTestApp(t, &stubFactory{}, nil)

	status, body := decode(t, app, "GET", "/plans")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{"bsctestnet"}, body["networks"])
}

func TestHandlePlan(t *testing.T) {
	app := setupTestApp(t, &stubFactory{}, nil)

	status, body := decode(t, app, "GET", "/plans/BSCTestnet")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "bsctestnet", body["network"])
	assert.Equal(t, true, body["live"])

	commands := body["commands"].([]any)
	require.Len(t, commands, pendingCommands)
	assert.Contains(t, commands[0], "giveCallPermission")

	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(pendingCommands), summary["total"])
}

func TestHandlePlan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		factory *stubFactory
		target  string
		want    int
	}{
		{"UnknownNetwork", &stubFactory{}, "/plans/polygon", fiber.StatusBadRequest},
		{"NotConfigured", &stubFactory{}, "/plans/bscmainnet", fiber.StatusNotFound},
		{"Configuration", &stubFactory{err: fmt.Errorf("%w: no feed", governance.ErrConfiguration)}, "/plans/bsctestnet", fiber.StatusUnprocessableEntity},
		{"Inspection", &stubFactory{hasRole: errors.New("rpc down")}, "/plans/bsctestnet", fiber.StatusBadGateway},
		{"Unexpected", &stubFactory{err: errors.New("boom")}, "/plans/bsctestnet", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := decode(t, setupTestApp(t, tt.factory, nil), "GET", tt.target)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandlePayload(t *testing.T) {
	app := setupTestApp(t, &stubFactory{}, nil)

	status, body := decode(t, app, "GET", "/plans/bsctestnet/payload")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["targets"], pendingCommands)
	assert.Len(t, body["calldatas"], pendingCommands)
}

func TestHandleHistoryAndRecord(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		app := setupTestApp(t, &stubFactory{}, nil)

		status, _ := decode(t, app, "GET", "/plans/bsctestnet/history")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)

		status, _ = decode(t, app, "POST", "/plans/bsctestnet/record")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run("RecordThenList", func(t *testing.T) {
		store := &memoryStore{}
		app := setupTestApp(t, &stubFactory{}, store)

		status, record := decode(t, app, "POST", "/plans/bsctestnet/record")
		require.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, float64(pendingCommands), record["total"])

		status, body := decode(t, app, "GET", "/plans/bsctestnet/history?limit=5")
		require.Equal(t, fiber.StatusOK, status)
		assert.Len(t, body["records"], 1)
		assert.Equal(t, 5, store.lastLimit)
	})

	t.Run("BadLimit", func(t *testing.T) {
		app := setupTestApp(t, &stubFactory{}, &memoryStore{})
		status, _ := decode(t, app, "GET", "/plans/bsctestnet/history?limit=many")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
