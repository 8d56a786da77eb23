package swagger_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	docs "nomo-governance/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "Nomo Governance API", parsed.Info.Title)
	for _, path := range []string{"/plans", "/plans/{network}", "/plans/{network}/payload", "/plans/{network}/history"} {
		assert.Contains(t, parsed.Paths[path], "get", path)
	}
	assert.Contains(t, parsed.Paths["/plans/{network}/record"], "post")
}

func TestSwaggerRoute(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", swagger.HandlerDefault)

	resp, err := app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, json.Valid(body))
	assert.Contains(t, string(body), "/plans/{network}/payload")
}
