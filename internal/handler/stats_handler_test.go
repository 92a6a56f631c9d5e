package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/edudesk-api/internal/models"
)

func TestDashboardStatsCounts(t *testing.T) {
	api := newTestAPI(t)

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/students", `{"name":"One"}`).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/students", `{"name":"Two"}`).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/teachers", `{"name":"T1"}`).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/notices", `{"title":"N1"}`).Code)

	rec := api.do(http.MethodGet, "/api/dashboard/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalStudents)
	assert.Equal(t, int64(1), stats.TotalTeachers)
	assert.Equal(t, int64(1), stats.TotalNotices)
}
