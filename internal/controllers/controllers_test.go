package controllers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/repository"
)

func TestUserFromCreateReq(t *testing.T) {
	instID := bson.NewObjectID()
	instHex := instID.Hex()

	u, err := userFromCreateReq(dto.CreateUserReq{
		Name:          dto.NameReq{FirstName: "John", LastName: "Doe"},
		Email:         "johndoe@example.com",
		Password:      "securepassword123",
		Role:          "student",
		InstitutionID: &instHex,
	})
	require.NoError(t, err)

	assert.Equal(t, "johndoe@example.com", u.Email)
	require.NotNil(t, u.InstitutionID)
	assert.Equal(t, instID, *u.InstitutionID)
	// the stored value is a hash, never the original
	assert.NotEqual(t, "securepassword123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("securepassword123")))
}

func TestUserFromCreateReqValidation(t *testing.T) {
	base := dto.CreateUserReq{
		Name:     dto.NameReq{FirstName: "John", LastName: "Doe"},
		Email:    "johndoe@example.com",
		Password: "pw",
		Role:     "student",
	}

	missingName := base
	missingName.Name.LastName = ""
	_, err := userFromCreateReq(missingName)
	assert.True(t, apperr.IsValidation(err))

	badEmail := base
	badEmail.Email = "not-an-email"
	_, err = userFromCreateReq(badEmail)
	assert.True(t, apperr.IsValidation(err))

	badRole := base
	badRole.Role = "principal"
	_, err = userFromCreateReq(badRole)
	assert.True(t, apperr.IsValidation(err))

	badInst := base
	bogus := "bogus"
	badInst.InstitutionID = &bogus
	_, err = userFromCreateReq(badInst)
	assert.True(t, apperr.IsInvalidID(err))
}

func TestRespondErrMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperr.NotFound(apperr.KindInstitution, "abc"), fiber.StatusNotFound},
		{"invalid id", apperr.InvalidID("zzz"), fiber.StatusBadRequest},
		{"validation", apperr.Validation("no update data provided"), fiber.StatusBadRequest},
		{"duplicate email", apperr.ErrDuplicateEmail, fiber.StatusBadRequest},
		{"bad credentials", apperr.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"store failure", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondErr(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:itemId", func(c *fiber.Ctx) error {
		id, err := paramID(c, "itemId")
		if err != nil {
			return respondErr(c, err)
		}
		return c.SendString(id.Hex())
	})

	valid := bson.NewObjectID()
	resp, err := app.Test(httptest.NewRequest("GET", "/items/"+valid.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/not-hex", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// An empty patch is rejected before any store access, for every entity type,
// so the handlers run here with zero-value repositories.
func TestUpdateRejectsEmptyPatch(t *testing.T) {
	id := bson.NewObjectID().Hex()

	cases := []struct {
		name  string
		mount func(app *fiber.App)
		path  string
	}{
		{
			"institution",
			func(a *fiber.App) {
				h := &InstitutionHandler{}
				a.Put("/institutions/:institutionId", h.Update)
			},
			"/institutions/" + id,
		},
		{
			"class",
			func(a *fiber.App) {
				h := &ClassHandler{}
				a.Put("/institutions/:institutionId/classes/:classId", h.Update)
			},
			"/institutions/" + id + "/classes/" + id,
		},
		{
			"resource",
			func(a *fiber.App) {
				h := &ResourceHandler{}
				a.Put("/institutions/:institutionId/classes/:classId/resources/:resourceId", h.Update)
			},
			"/institutions/" + id + "/classes/" + id + "/resources/" + id,
		},
		{
			"comment",
			func(a *fiber.App) {
				h := &CommentHandler{}
				a.Put("/institutions/:institutionId/classes/:classId/resources/:resourceId/comments/:commentId", h.Update)
			},
			"/institutions/" + id + "/classes/" + id + "/resources/" + id + "/comments/" + id,
		},
		{
			"user",
			func(a *fiber.App) {
				h := &UserHandler{}
				a.Put("/users/:id", h.Update)
			},
			"/users/" + id,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			tc.mount(app)

			req := httptest.NewRequest("PUT", tc.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "no update data provided")
		})
	}
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (r *closeRecorder) Close() error {
	r.closed = true
	return nil
}

func TestSendBlobStreamsInline(t *testing.T) {
	const content = "blob-bytes"
	src := &closeRecorder{Reader: strings.NewReader(content)}
	info := &repository.FileInfo{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Length:      int64(len(content)),
	}

	app := fiber.New()
	app.Get("/blob", func(c *fiber.Ctx) error { return sendBlob(c, src, info) })

	resp, err := app.Test(httptest.NewRequest("GET", "/blob", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `inline; filename="notes.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, string(body))
	assert.True(t, src.closed)
}
