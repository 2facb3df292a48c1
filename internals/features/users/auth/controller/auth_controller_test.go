package controller_test

import (
	"testing"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := testutil.NewEnv(t)

	res := env.Do(t, testutil.JSONRequest(t, "POST", "/api/auth/register", "", map[string]any{
		"username": "opd_baru",
		"password": "Rahasia@1",
		"nama":     "OPD Baru",
		"role":     "ADMIN",
	}))
	require.Equal(t, 201, res.Status)
	assert.True(t, res.Success)
	data := res.DataMap()
	assert.Equal(t, "opd_baru", data["username"])
	assert.Equal(t, constants.RoleOPD, data["role"], "role dari request diabaikan")
	assert.Equal(t, constants.StatusAktif, data["status"])
	assert.NotContains(t, data, "password")

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/auth/register", "", map[string]any{
		"username": "opd_baru",
		"password": "Rahasia@1",
		"nama":     "Lagi",
	}))
	assert.Equal(t, 409, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/auth/register", "", map[string]any{
		"username": "ab",
		"password": "lemah",
		"nama":     "X",
	}))
	assert.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError("username"))
	assert.True(t, res.HasFieldError("password"))
	assert.True(t, res.HasFieldError("nama"))
}

func TestLogin(t *testing.T) {
	env := testutil.NewEnv(t)
	testutil.CreateUser(t, env.DB, "opd1", "Opd1@123", constants.RoleOPD, constants.StatusAktif)
	testutil.CreateUser(t, env.DB, "opd2", "Opd2@456", constants.RoleOPD, constants.StatusTidakAktif)

	login := func(u, p string) *testutil.Response {
		return env.Do(t, testutil.JSONRequest(t, "POST", "/api/auth/login", "", map[string]string{"username": u, "password": p}))
	}

	res := login("opd1", "Opd1@123")
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Login berhasil", res.Message)
	data := res.DataMap()
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "opd1", data["user"].(map[string]any)["username"])

	res = login("opd1", "salah")
	assert.Equal(t, 401, res.Status)
	assert.Equal(t, "Username atau password salah", res.Message)

	res = login("tidakada", "Opd1@123")
	assert.Equal(t, 401, res.Status)
	assert.Equal(t, "Username atau password salah", res.Message)

	res = login("opd2", "Opd2@456")
	assert.Equal(t, 403, res.Status)
	assert.Equal(t, "Akun Anda tidak aktif", res.Message)

	// akun nonaktif dengan password salah tetap 401
	res = login("opd2", "salah")
	assert.Equal(t, 401, res.Status)
}

func TestProfile(t *testing.T) {
	env := testutil.NewEnv(t)
	u := testutil.CreateUser(t, env.DB, "opd1", "Opd1@123", constants.RoleOPD, constants.StatusAktif)
	tok := env.Token(t, u)

	res := env.Do(t, testutil.JSONRequest(t, "GET", "/api/auth/profile", "", nil))
	assert.Equal(t, 401, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/auth/profile", tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "opd1", res.DataMap()["username"])

	res = env.Do(t, testutil.JSONRequest(t, "PUT", "/api/auth/profile", tok, map[string]any{}))
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "PUT", "/api/auth/profile", tok, map[string]any{
		"nama":     "Dinas Kesehatan Baru",
		"password": "Baru@1234",
	}))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Dinas Kesehatan Baru", res.DataMap()["nama"])

	res = env.Do(t, testutil.JSONRequest(t, "POST", "/api/auth/login", "", map[string]string{"username": "opd1", "password": "Baru@1234"}))
	assert.Equal(t, 200, res.Status)
}
