package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"student_portal_backend/internal/model"
	"student_portal_backend/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

type fakeDashboardService struct {
	overview *model.Dashboard
	err      error

	gotEmail string
}

func (f *fakeDashboardService) Overview(ctx context.Context, email string) (*model.Dashboard, error) {
	f.gotEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.overview, nil
}

type fakeJWTConfig struct{}

func (fakeJWTConfig) SecretKey() []byte            { return []byte("dash-secret") }
func (fakeJWTConfig) TokenDuration() time.Duration { return time.Hour }

func newTestHandler(serv *fakeDashboardService) *Handler {
	return NewHandler(HandlerDeps{
		Serv:   serv,
		JWTCfg: fakeJWTConfig{},
	})
}

func testOverview() *model.Dashboard {
	return &model.Dashboard{
		Student: model.Student{
			ID:          uuid.New(),
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			Program:     "Computer Engineering",
			YearOfStudy: 2,
		},
		Fees:            []model.Fee{},
		Enrollments:     []model.Enrollment{{ID: 1, CourseCode: "CE101", CourseName: "Intro"}},
		LecturerCourses: []model.LecturerCourse{},
		LecturerTAs:     []model.LecturerTA{},
	}
}

func signedCookie(t *testing.T, secret string) *http.Cookie {
	t.Helper()
	tok, err := token.Sign("u1", "ada@example.com", []byte(secret), time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: tok}
}

// --- tests ---

func TestOverview_RedirectsWithoutCookie(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeDashboardService{overview: testOverview()})

	rec := httptest.NewRecorder()
	h.Overview(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestOverview_RedirectsOnForeignToken(t *testing.T) {
	t.Parallel()

	// Re-verification is independent of the gate: a token signed with a
	// different secret must not reach the service.
	serv := &fakeDashboardService{overview: testOverview()}
	h := newTestHandler(serv)

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	r.AddCookie(signedCookie(t, "other-secret"))

	rec := httptest.NewRecorder()
	h.Overview(rec, r)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Empty(t, serv.gotEmail)
}

func TestOverview_RedirectsWhenAccountGone(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeDashboardService{err: model.ErrStudentNotFound})

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	r.AddCookie(signedCookie(t, "dash-secret"))

	rec := httptest.NewRecorder()
	h.Overview(rec, r)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestOverview_OK(t *testing.T) {
	t.Parallel()

	serv := &fakeDashboardService{overview: testOverview()}
	h := newTestHandler(serv)

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	r.AddCookie(signedCookie(t, "dash-secret"))

	rec := httptest.NewRecorder()
	h.Overview(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ada@example.com", serv.gotEmail)

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		Fees        []json.RawMessage `json:"fees"`
		Enrollments []struct {
			CourseCode string `json:"course_code"`
		} `json:"enrollments"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ada@example.com", body.User.Email)
	require.NotNil(t, body.Fees)
	require.Empty(t, body.Fees)
	require.Len(t, body.Enrollments, 1)
	require.Equal(t, "CE101", body.Enrollments[0].CourseCode)
}
