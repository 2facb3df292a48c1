package controller_test

import (
	"testing"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKontak() map[string]any {
	return map[string]any{
		"namaDinas": "Balitbang Daerah",
		"alamat":    "Jl. Jenderal Sudirman No. 1",
		"telepon":   "(0761) 123-456",
		"email":     "Balitbang@Example.go.id",
		"kodePos":   "28111",
		"latitude":  "0.507068",
		"longitude": "101.447777",
	}
}

func TestKontak(t *testing.T) {
	env := testutil.NewEnv(t)
	admin := testutil.CreateUser(t, env.DB, "admin", "Admin@123", constants.RoleAdmin, constants.StatusAktif)
	tok := env.Token(t, admin)

	res := env.Do(t, testutil.JSONRequest(t, "POST", "/api/kontak", "", validKontak()))
	assert.Equal(t, 401, res.Status)

	bad := validKontak()
	bad["latitude"] = "91"
	bad["kodePos"] = "28-111"
	bad["telepon"] = "telp kantor"
	bad["email"] = "bukan-email"
	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/kontak", tok, bad))
	assert.Equal(t, 400, res.Status)
	for _, f := range []string{"latitude", "kodePos", "telepon", "email"} {
		assert.True(t, res.HasFieldError(f), f)
	}

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/kontak", tok, validKontak()))
	require.Equal(t, 201, res.Status)
	assert.Equal(t, "balitbang@example.go.id", res.DataMap()["email"])
	id := res.DataMap()["id"].(string)

	// baca publik
	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/kontak?search=sudirman", "", nil))
	require.Equal(t, 200, res.Status)
	assert.Len(t, res.DataMap()["items"], 1)

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/kontak/"+id, "", nil))
	assert.Equal(t, 200, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "PUT", "/api/kontak/"+id, tok, map[string]any{"longitude": "181"}))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "PUT", "/api/kontak/"+id, tok, map[string]any{"telepon": "0761-999"}))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "0761-999", res.DataMap()["telepon"])
	assert.Equal(t, "Balitbang Daerah", res.DataMap()["namaDinas"])

	res = env.Do(t, testutil.JSONRequest(t, "DELETE", "/api/kontak/"+id, tok, nil))
	require.Equal(t, 200, res.Status)
	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/kontak/"+id, "", nil))
	assert.Equal(t, 404, res.Status)
}
