package controller_test

import (
	"strings"
	"testing"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemTitleLifecycle(t *testing.T) {
	env := testutil.NewEnv(t)
	admin := testutil.CreateUser(t, env.DB, "admin", "Admin@123", constants.RoleAdmin, constants.StatusAktif)
	opd := testutil.CreateUser(t, env.DB, "opd1", "Opd1@123", constants.RoleOPD, constants.StatusAktif)
	tok := env.Token(t, admin)

	res := env.Do(t, testutil.JSONRequest(t, "POST", "/api/system-title", env.Token(t, opd), map[string]any{"title": "X"}))
	assert.Equal(t, 403, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/system-title", tok, map[string]any{"title": "   "}))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/system-title", tok, map[string]any{"title": strings.Repeat("j", 1001)}))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/system-title", tok, map[string]any{"title": "Sistem Inovasi Daerah"}))
	require.Equal(t, 201, res.Status)
	assert.Equal(t, true, res.DataMap()["isActive"])
	id := res.DataMap()["id"].(string)

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/system-title", tok, map[string]any{"title": "Arsip", "isActive": false}))
	require.Equal(t, 201, res.Status)
	assert.Equal(t, false, res.DataMap()["isActive"])

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/system-title/active", "", nil))
	require.Equal(t, 200, res.Status)
	active := res.Data.([]any)
	require.Len(t, active, 1)
	assert.Equal(t, "Sistem Inovasi Daerah", active[0].(map[string]any)["title"])

	res = env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/system-title/"+id, tok, map[string]any{}))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/system-title/"+id, tok, map[string]any{"title": "Judul Baru"}))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Judul Baru", res.DataMap()["title"])

	res = env.Do(t, testutil.JSONRequest(t, "PATCH", "/api/system-title/"+id+"/toggle-active", tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, false, res.DataMap()["isActive"])

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/system-title/active", "", nil))
	require.Equal(t, 200, res.Status)
	assert.Empty(t, res.Data)

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/system-title", tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Len(t, res.DataMap()["items"], 2)

	res = env.Do(t, testutil.JSONRequest(t, "DELETE", "/api/system-title/"+id, tok, nil))
	require.Equal(t, 200, res.Status)
	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/system-title/"+id, tok, nil))
	assert.Equal(t, 404, res.Status)
}
