package cheats_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cheatvault/feature/cheats"
	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, fx *serviceFixture) *fiber.App {
	t.Helper()
	app := fiber.New()
	cheats.NewHandler(fx.svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandlerAddAndListCodes(t *testing.T) {
	owner := &sync.Owner{ID: 1, ResourcesPath: "roms/zelda"}
	fx := newServiceFixture(t, staticResolver{1: owner})
	app := newTestApp(t, fx)

	resp := doJSON(t, app, http.MethodPost, "/roms/1/cheats", models.Input{
		Name: "Infinite Lives",
		Code: "ABCD-1234",
		Type: "game_genie",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody[models.CheatCode](t, resp)
	assert.NotZero(t, created.ID)

	resp = doJSON(t, app, http.MethodGet, "/roms/1/cheats", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	codes := decodeBody[[]models.CheatCode](t, resp)
	require.Len(t, codes, 1)
	assert.Equal(t, "Infinite Lives", codes[0].Name)
}

func TestHandlerAddCodeValidationError(t *testing.T) {
	owner := &sync.Owner{ID: 1, ResourcesPath: "roms/zelda"}
	fx := newServiceFixture(t, staticResolver{1: owner})
	app := newTestApp(t, fx)

	resp := doJSON(t, app, http.MethodPost, "/roms/1/cheats", models.Input{
		Code: "ZZZ",
		Type: "game_genie",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody[map[string]map[string]string](t, resp)
	assert.Equal(t, "Cheat code name is required", body["errors"]["name"])
	assert.Equal(t, "Game Genie codes must be 6-8 alphanumeric characters (A-Z, 0-9)", body["errors"]["code"])
}

func TestHandlerUnknownRomIs404(t *testing.T) {
	fx := newServiceFixture(t, staticResolver{})
	app := newTestApp(t, fx)

	resp := doJSON(t, app, http.MethodGet, "/roms/42/cheats", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/roms/42/cheats", models.Input{
		Name: "X", Code: "ABCD-1234", Type: "game_genie",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlerTypeLifecycle(t *testing.T) {
	fx := newServiceFixture(t, staticResolver{})
	app := newTestApp(t, fx)

	body := map[string]string{
		"id":      "wiird",
		"name":    "WiiRd",
		"pattern": "^[0-9A-Fa-f]{16}$",
	}
	resp := doJSON(t, app, http.MethodPost, "/cheats/types", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate registration is rejected.
	resp = doJSON(t, app, http.MethodPost, "/cheats/types", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/cheats/types/wiird", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[models.CheatType](t, resp)
	assert.Equal(t, "WiiRd", got.Name)

	resp = doJSON(t, app, http.MethodPut, "/cheats/types/wiird", map[string]string{"name": "WiiRD"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/cheats/types/wiird", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/cheats/types/wiird", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlerCreateTypeRequiresID(t *testing.T) {
	fx := newServiceFixture(t, staticResolver{})
	app := newTestApp(t, fx)

	resp := doJSON(t, app, http.MethodPost, "/cheats/types", map[string]string{"name": "No ID"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandlerFileUploadLifecycle(t *testing.T) {
	owner := &sync.Owner{ID: 1, ResourcesPath: "roms/zelda"}
	fx := newServiceFixture(t, staticResolver{1: owner})
	app := newTestApp(t, fx)

	fx.mirror.On("PutObject", mock.Anything, "cheats", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
	fx.mirror.On("RemoveObject", mock.Anything, "cheats", mock.Anything,
		mock.Anything).Return(nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "codes.cht")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("# Name: Test\nABCD1234\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/roms/1/cheats/files", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	uploaded := decodeBody[models.CheatFile](t, resp)
	assert.Equal(t, "codes.cht", uploaded.FileName)

	resp = doJSON(t, app, http.MethodGet, "/roms/1/cheats/files", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	files := decodeBody[[]models.CheatFile](t, resp)
	require.Len(t, files, 1)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/cheats/files/%d", uploaded.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/cheats/files/%d", uploaded.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
