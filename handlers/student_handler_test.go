package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patiponrmutl/SchoolMS/models"
)

func TestStudentLifecycle(t *testing.T) {
	e, _ := newAPI(t)
	token := seedAndLogin(t, e, "teacher@example.com", models.RoleTeacher)

	rec := do(t, e, http.MethodPost, "/students", token, map[string]any{
		"first_name": "Bobby", "last_name": "Tables",
		"email": "bobby@example.com", "gender": "male", "dob": "2012-09-01",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created models.Student
	decode(t, rec, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Bobby", created.FirstName)

	path := "/students/1"
	rec = do(t, e, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// partial update: only grade, everything else untouched
	rec = do(t, e, http.MethodPut, path, token, map[string]any{"grade": "7"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "ok")

	rec = do(t, e, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Student
	decode(t, rec, &got)
	require.NotNil(t, got.Grade)
	assert.Equal(t, "7", *got.Grade)
	assert.Equal(t, "Bobby", got.FirstName)
	assert.Equal(t, "Tables", got.LastName)

	rec = do(t, e, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")

	rec = do(t, e, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentWriteRequiresTeacherOrAdmin(t *testing.T) {
	e, _ := newAPI(t)
	teacherTok := seedAndLogin(t, e, "teacher@example.com", models.RoleTeacher)
	studentTok := seedAndLogin(t, e, "student@example.com", models.RoleStudent)

	body := map[string]any{"first_name": "Eve", "last_name": "Adams"}

	// no token at all
	rec := do(t, e, http.MethodPost, "/students", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// read-only role
	rec = do(t, e, http.MethodPost, "/students", studentTok, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	// teacher succeeds
	rec = do(t, e, http.MethodPost, "/students", teacherTok, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	// reads are open to any resolved identity
	rec = do(t, e, http.MethodGet, "/students", studentTok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStudentGetBadAndAbsentID(t *testing.T) {
	e, _ := newAPI(t)
	token := seedAndLogin(t, e, "teacher@example.com", models.RoleTeacher)

	rec := do(t, e, http.MethodGet, "/students/not-a-number", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")

	rec = do(t, e, http.MethodGet, "/students/4242", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodPut, "/students/not-a-number", token, map[string]any{"grade": "7"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodDelete, "/students/not-a-number", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentSearch(t *testing.T) {
	e, _ := newAPI(t)
	token := seedAndLogin(t, e, "teacher@example.com", models.RoleTeacher)

	seed := []map[string]any{
		{"first_name": "Alice", "last_name": "Smith", "email": "alice.s@school.example"},
		{"first_name": "Bob", "last_name": "Jones"},
		{"first_name": "Charlie", "last_name": "Smithson"},
	}
	for _, s := range seed {
		rec := do(t, e, http.MethodPost, "/students", token, s)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var resp struct {
		Items []models.Student `json:"items"`
	}

	rec := do(t, e, http.MethodGet, "/students", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Len(t, resp.Items, 3)

	// case-insensitive substring over first/last/email
	rec = do(t, e, http.MethodGet, "/students?q=SMITH", token, nil)
	decode(t, rec, &resp)
	assert.Len(t, resp.Items, 2)

	rec = do(t, e, http.MethodGet, "/students?q=alice.s%40school", token, nil)
	decode(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Alice", resp.Items[0].FirstName)

	rec = do(t, e, http.MethodGet, "/students?q=zzz", token, nil)
	decode(t, rec, &resp)
	assert.Len(t, resp.Items, 0)

	rec = do(t, e, http.MethodGet, "/students?limit=1", token, nil)
	decode(t, rec, &resp)
	assert.Len(t, resp.Items, 1)
}

func TestStudentCreateValidation(t *testing.T) {
	e, _ := newAPI(t)
	token := seedAndLogin(t, e, "teacher@example.com", models.RoleTeacher)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing last name", map[string]any{"first_name": "Eve"}},
		{"blank first name", map[string]any{"first_name": "  ", "last_name": "Adams"}},
		{"bad gender", map[string]any{"first_name": "Eve", "last_name": "Adams", "gender": "robot"}},
		{"bad dob", map[string]any{"first_name": "Eve", "last_name": "Adams", "dob": "01/02/2012"}},
		{"bad admission date", map[string]any{"first_name": "Eve", "last_name": "Adams", "admission_date": "yesterday"}},
		{"bad email", map[string]any{"first_name": "Eve", "last_name": "Adams", "email": "nope"}},
	}
	for _, tc := range cases {
		rec := do(t, e, http.MethodPost, "/students", token, tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
	}
}
