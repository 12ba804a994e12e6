package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	apitesting "github.com/Dailong90/fanta-claus/api/controllers/testing"
	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryTestEnv struct {
	players  *storage.DynamoPlayerStorage
	gifts    *storage.DynamoGiftStorage
	sessions *session.Manager
	router   *gin.Engine
}

func setupTestCategoryController(t *testing.T) *categoryTestEnv {
	t.Helper()

	db := newLocalstackClient(t)
	categories := &storage.DynamoGiftCategoryStorage{
		Client:    db,
		TableName: testTableCategories,
	}
	gifts := &storage.DynamoGiftStorage{
		Client:    db,
		TableName: testTableGifts,
	}
	players := &storage.DynamoPlayerStorage{
		Client:    db,
		TableName: testTablePlayers,
	}

	// teardown
	t.Cleanup(func() {
		cleanupTable(t, db, testTableCategories)
		cleanupTable(t, db, testTableGifts)
		cleanupTable(t, db, testTablePlayers)
	})

	sessions := newTestSessions()
	r := newTestRouter()
	NewCategoryController(categories, gifts, players, sessions).RegisterRoutes(r)

	env := &categoryTestEnv{players: players, gifts: gifts, sessions: sessions, router: r}
	seedPlayer(t, players, "boss", "Boss", "BOSSS", true)
	seedPlayer(t, players, "pleb", "Pleb", "PLEBS", false)
	return env
}

func TestCategoryCRUD(t *testing.T) {
	env := setupTestCategoryController(t)
	admin := loginCookie(t, env.sessions, "boss")

	t.Run("Happy path - create, list, update, delete", func(t *testing.T) {
		createRes := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories",
			models.CategoryCreateRequest{ID: "goliardico", Code: "goliardico", Label: "Regalo goliardico", Points: 10}, admin)
		require.Equal(t, http.StatusOK, createRes.Code)

		listRes := apitesting.PerformRequest(env.router, http.MethodGet, "/api/categories", nil)
		require.Equal(t, http.StatusOK, listRes.Code)
		var categories []models.CategoryResponse
		require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &categories))
		require.Len(t, categories, 1)
		assert.Equal(t, "Regalo goliardico", categories[0].Label)

		updateRes := apitesting.PerformRequest(env.router, http.MethodPut, "/api/categories/goliardico",
			models.CategoryUpdateRequest{Code: "goliardico", Label: "Regalo assurdo", Points: 12}, admin)
		require.Equal(t, http.StatusOK, updateRes.Code)
		var updated models.CategoryResponse
		require.NoError(t, json.Unmarshal(updateRes.Body.Bytes(), &updated))
		assert.Equal(t, "Regalo assurdo", updated.Label)
		assert.Equal(t, 12, updated.Points)

		deleteRes := apitesting.PerformRequest(env.router, http.MethodDelete, "/api/categories/goliardico", nil, admin)
		assert.Equal(t, http.StatusOK, deleteRes.Code)
	})

	t.Run("Happy path - empty id gets a generated one", func(t *testing.T) {
		createRes := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories",
			models.CategoryCreateRequest{Code: "tech", Label: "Regalo tech", Points: 5}, admin)
		require.Equal(t, http.StatusOK, createRes.Code)

		var created models.CategoryResponse
		require.NoError(t, json.Unmarshal(createRes.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Unhappy path - duplicate id", func(t *testing.T) {
		payload := models.CategoryCreateRequest{ID: "dup", Code: "dup", Label: "Dup", Points: 1}
		first := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories", payload, admin)
		require.Equal(t, http.StatusOK, first.Code)

		second := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories", payload, admin)
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("Unhappy path - empty label", func(t *testing.T) {
		res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories",
			models.CategoryCreateRequest{ID: "x", Code: "x", Points: 1}, admin)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - non-admin cannot write", func(t *testing.T) {
		res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories",
			models.CategoryCreateRequest{ID: "y", Code: "y", Label: "Y", Points: 1},
			loginCookie(t, env.sessions, "pleb"))
		assert.Equal(t, http.StatusForbidden, res.Code)
	})
}

func TestCategoryListIsPublicAndSorted(t *testing.T) {
	env := setupTestCategoryController(t)
	admin := loginCookie(t, env.sessions, "boss")

	for _, c := range []models.CategoryCreateRequest{
		{ID: "tech", Code: "tech", Label: "Regalo tech", Points: 5},
		{ID: "goliardico", Code: "goliardico", Label: "Regalo goliardico", Points: 10},
		{ID: "handmade", Code: "handmade", Label: "Fatto a mano", Points: 5},
	} {
		res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories", c, admin)
		require.Equal(t, http.StatusOK, res.Code)
	}

	// no session at all
	res := apitesting.PerformRequest(env.router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var categories []models.CategoryResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &categories))
	require.Len(t, categories, 3)
	assert.Equal(t, "goliardico", categories[0].ID, "highest points first")
	assert.Equal(t, "handmade", categories[1].ID, "label breaks the points tie")
	assert.Equal(t, "tech", categories[2].ID)
}

func TestCategoryDeleteGuard(t *testing.T) {
	env := setupTestCategoryController(t)
	admin := loginCookie(t, env.sessions, "boss")

	createRes := apitesting.PerformRequest(env.router, http.MethodPost, "/api/categories",
		models.CategoryCreateRequest{ID: "tech", Code: "tech", Label: "Regalo tech", Points: 5}, admin)
	require.Equal(t, http.StatusOK, createRes.Code)

	require.NoError(t, env.gifts.Put(context.TODO(), &storage.Gift{
		SantaOwnerID: "boss",
		CategoryID:   "tech",
	}))

	res := apitesting.PerformRequest(env.router, http.MethodDelete, "/api/categories/tech", nil, admin)
	assert.Equal(t, http.StatusConflict, res.Code, "a referenced category must not be deletable")
}
