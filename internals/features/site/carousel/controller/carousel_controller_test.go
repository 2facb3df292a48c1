package controller_test

import (
	"strconv"
	"testing"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/site/carousel/model"
	"inovasi_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*testutil.Env, string) {
	env := testutil.NewEnv(t)
	admin := testutil.CreateUser(t, env.DB, "admin", "Admin@123", constants.RoleAdmin, constants.StatusAktif)
	return env, env.Token(t, admin)
}

func createImage(t *testing.T, env *testutil.Env, tok, title string, order int, active bool) map[string]any {
	res := env.Do(t, testutil.MultipartRequest(t, "POST", "/api/carousel", tok,
		map[string]string{"title": title, "sortOrder": strconv.Itoa(order), "isActive": strconv.FormatBool(active)},
		map[string]testutil.File{"image": {Name: "banner.png", Content: testutil.PNG(t, 64, 32)}},
	))
	require.Equal(t, 201, res.Status, res.Message)
	return res.DataMap()
}

func TestCarouselCreateAndActive(t *testing.T) {
	env, tok := setup(t)

	second := createImage(t, env, tok, "Kedua", 2, true)
	first := createImage(t, env, tok, "Pertama", 1, true)
	createImage(t, env, tok, "Draft", 0, false)
	assert.Equal(t, 3, testutil.CountFiles(t, env.UploadRoot))
	assert.Equal(t, "/uploads/"+first["path"].(string), first["url"])

	// publik, tanpa token
	res := env.Do(t, testutil.JSONRequest(t, "GET", "/api/carousel/active", "", nil))
	require.Equal(t, 200, res.Status)
	items := res.Data.([]any)
	require.Len(t, items, 2)
	assert.Equal(t, first["id"], items[0].(map[string]any)["id"])
	assert.Equal(t, second["id"], items[1].(map[string]any)["id"])

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/carousel?isActive=false", tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Len(t, res.DataMap()["items"], 1)
}

func TestCarouselRejectsBadUploads(t *testing.T) {
	env, tok := setup(t)

	res := env.Do(t, testutil.MultipartRequest(t, "POST", "/api/carousel", tok, map[string]string{"title": "x"}, nil))
	assert.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError("image"))

	res = env.Do(t, testutil.MultipartRequest(t, "POST", "/api/carousel", tok, nil,
		map[string]testutil.File{"image": {Name: "doc.png", Content: testutil.PDF()}},
	))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.MultipartRequest(t, "POST", "/api/carousel", tok, map[string]string{"sortOrder": "-1"},
		map[string]testutil.File{"image": {Name: "a.png", Content: testutil.PNG(t, 8, 8)}},
	))
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, 0, testutil.CountFiles(t, env.UploadRoot))
}

func TestCarouselAdminOnly(t *testing.T) {
	env, _ := setup(t)
	opd := testutil.CreateUser(t, env.DB, "opd1", "Opd1@123", constants.RoleOPD, constants.StatusAktif)

	res := env.Do(t, testutil.JSONRequest(t, "GET", "/api/carousel", env.Token(t, opd), nil))
	assert.Equal(t, 403, res.Status)
	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/carousel", "", nil))
	assert.Equal(t, 401, res.Status)
}

func TestCarouselUpdateSortOrder(t *testing.T) {
	env, tok := setup(t)
	a := createImage(t, env, tok, "A", 0, true)
	b := createImage(t, env, tok, "B", 1, true)

	res := env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/carousel/sort-order/update", tok, map[string]any{
		"imageOrders": []map[string]any{
			{"id": a["id"], "sortOrder": 5},
			{"id": "1b4e28ba-2fa1-11d2-883f-0016d3cca427", "sortOrder": 1},
		},
	}))
	assert.Equal(t, 404, res.Status)

	var got model.CarouselImageModel
	require.NoError(t, env.DB.First(&got, "id = ?", a["id"]).Error)
	assert.Equal(t, 0, got.SortOrder, "transaksi dibatalkan")

	res = env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/carousel/sort-order/update", tok, map[string]any{
		"imageOrders": []map[string]any{{"id": a["id"], "sortOrder": 2}, {"id": b["id"], "sortOrder": 0}},
	}))
	require.Equal(t, 200, res.Status)
	require.NoError(t, env.DB.First(&got, "id = ?", a["id"]).Error)
	assert.Equal(t, 2, got.SortOrder)

	res = env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/carousel/sort-order/update", tok, map[string]any{"imageOrders": []any{}}))
	assert.Equal(t, 400, res.Status)

	// id bukan UUID: 400, urutan lain tidak ikut berubah
	res = env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/carousel/sort-order/update", tok, map[string]any{
		"imageOrders": []map[string]any{{"id": a["id"], "sortOrder": 9}, {"id": "bukan-uuid", "sortOrder": 1}},
	}))
	assert.Equal(t, 400, res.Status)
	require.NoError(t, env.DB.First(&got, "id = ?", a["id"]).Error)
	assert.Equal(t, 2, got.SortOrder)
}

func TestCarouselUpdateToggleDelete(t *testing.T) {
	env, tok := setup(t)
	a := createImage(t, env, tok, "A", 0, true)
	path := "/api/carousel/" + a["id"].(string)

	res := env.Do(t, testutil.MultipartRequest(t, "PATCH", path, tok, nil, nil))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.MultipartRequest(t, "PATCH", path, tok, map[string]string{"title": "A baru"},
		map[string]testutil.File{"image": {Name: "b.png", Content: testutil.PNG(t, 16, 16)}},
	))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "A baru", res.DataMap()["title"])
	assert.NotEqual(t, a["path"], res.DataMap()["path"])
	assert.Equal(t, 1, testutil.CountFiles(t, env.UploadRoot), "gambar lama dihapus")

	res = env.Do(t, testutil.JSONRequest(t, "PATCH", path+"/toggle-active", tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, false, res.DataMap()["isActive"])

	res = env.Do(t, testutil.JSONRequest(t, "DELETE", path, tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, 0, testutil.CountFiles(t, env.UploadRoot))

	res = env.Do(t, testutil.JSONRequest(t, "GET", path, tok, nil))
	assert.Equal(t, 404, res.Status)
}
