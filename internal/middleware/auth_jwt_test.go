package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret"

func uidEchoApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(JWTUidOnly(secret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		if uid, ok := UIDObjectID(c); ok {
			return c.SendString(uid.Hex())
		}
		return c.SendString("anonymous")
	})
	return app
}

func TestTokenRoundTrip(t *testing.T) {
	uid := bson.NewObjectID()
	token, err := GenerateToken(testSecret, uid.Hex(), time.Hour)
	require.NoError(t, err)

	app := uidEchoApp(testSecret)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, uid.Hex(), string(body))
}

func TestMissingTokenPassesThrough(t *testing.T) {
	app := uidEchoApp(testSecret)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", string(body))
}

func TestInvalidTokenRejected(t *testing.T) {
	app := uidEchoApp(testSecret)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken("other-secret", bson.NewObjectID().Hex(), time.Hour)
	require.NoError(t, err)

	app := uidEchoApp(testSecret)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
