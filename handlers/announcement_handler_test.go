package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patiponrmutl/SchoolMS/models"
)

func TestAnnouncementsNewestFirst(t *testing.T) {
	e, db := newAPI(t)
	token := seedAndLogin(t, e, "admin@example.com", models.RoleAdmin)

	for _, title := range []string{"First", "Second", "Third"} {
		rec := do(t, e, http.MethodPost, "/announcements", token, map[string]any{
			"title": title, "message": "body of " + title,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", "admin@example.com").Error)

	var resp struct {
		Items []models.Announcement `json:"items"`
	}
	rec := do(t, e, http.MethodGet, "/announcements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Third", resp.Items[0].Title)
	assert.Equal(t, "First", resp.Items[2].Title)
	assert.Equal(t, admin.ID, resp.Items[0].CreatedBy)

	rec = do(t, e, http.MethodGet, "/announcements?limit=1", token, nil)
	decode(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Third", resp.Items[0].Title)
}

func TestAnnouncementValidation(t *testing.T) {
	e, _ := newAPI(t)
	token := seedAndLogin(t, e, "teacher@example.com", models.RoleTeacher)

	rec := do(t, e, http.MethodPost, "/announcements", token, map[string]any{"title": "No body"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/announcements", token, map[string]any{"message": "No title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnnouncementAuthz(t *testing.T) {
	e, _ := newAPI(t)
	parentTok := seedAndLogin(t, e, "parent@example.com", models.RoleParent)

	rec := do(t, e, http.MethodPost, "/announcements", parentTok, map[string]any{
		"title": "Hi", "message": "there",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, e, http.MethodGet, "/announcements", parentTok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
