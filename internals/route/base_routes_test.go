package routes_test

import (
	"testing"

	"inovasi_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRoutes(t *testing.T) {
	env := testutil.NewEnv(t)

	res := env.Do(t, testutil.JSONRequest(t, "GET", "/", "", nil))
	assert.Equal(t, 200, res.Status)
	assert.True(t, res.Success)

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/api/test", "", nil))
	assert.Equal(t, 200, res.Status)

	res = env.Do(t, testutil.JSONRequest(t, "GET", "/health", "", nil))
	assert.Equal(t, 200, res.Status)
	assert.True(t, res.Success)
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	env := testutil.NewEnv(t)
	sqlDB, err := env.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	res := env.Do(t, testutil.JSONRequest(t, "GET", "/health", "", nil))
	assert.Equal(t, 503, res.Status)
	assert.False(t, res.Success)
}

func TestUnknownRouteIs404(t *testing.T) {
	env := testutil.NewEnv(t)
	res := env.Do(t, testutil.JSONRequest(t, "GET", "/api/tidak-ada", "", nil))
	assert.Equal(t, 404, res.Status)
}
