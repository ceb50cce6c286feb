package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestReportingFlow(t *testing.T) {
	srv := startServer(t)

	reporter := registerAndLogin(t, srv, "watcher@example.com")
	admin := seedStaff(t, srv, "admin@example.com", domain.RoleAdmin)

	// Report types are admin territory.
	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/report-type/create", reporter.AccessToken, map[string]string{
		"name": "spam",
	})
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "insufficient permissions", env.Errors.Detail)

	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/report-type/create", admin.AccessToken, map[string]string{
		"name":        "spam",
		"description": "unsolicited advertising",
	})
	require.Equal(t, http.StatusOK, code)

	var rt domain.ReportType
	require.NoError(t, json.Unmarshal(env.Data, &rt))
	require.Equal(t, domain.ReportTypeActive, rt.Status)

	// Something to report.
	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/post/create", reporter.AccessToken, map[string]any{
		"food_name": "Mystery meat",
		"province":  "Can Tho",
	})
	require.Equal(t, http.StatusOK, code)
	var post domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))

	code, _ = doJSON(t, srv, http.MethodPost, "/api/v1/report/create", reporter.AccessToken, map[string]string{
		"post_id":        string(post.ID),
		"report_type_id": string(rt.ID),
		"note":           "definitely spam",
	})
	require.Equal(t, http.StatusOK, code)

	// The moderation queue joins in names, not just ids.
	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/report", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)

	var reports []domain.ReportDetail
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	require.Len(t, reports, 1)
	require.Equal(t, "spam", reports[0].ReportTypeName)
	require.Equal(t, "Mystery meat", reports[0].PostFoodName)
	require.Equal(t, "watcher", reports[0].ReporterName)

	// Regular users never see the queue.
	code, _ = doJSON(t, srv, http.MethodGet, "/api/v1/report", reporter.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, code)

	// Retiring the type stops new reports against it.
	inactive := domain.ReportTypeInactive
	code, _ = doJSON(t, srv, http.MethodPatch, "/api/v1/report-type/update/"+string(rt.ID), admin.AccessToken, map[string]*string{
		"status": &inactive,
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/report/create", reporter.AccessToken, map[string]string{
		"post_id":        string(post.ID),
		"report_type_id": string(rt.ID),
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "report type is inactive", env.Errors.Detail)
}
