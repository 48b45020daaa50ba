package bootstrap

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/marksportal/internal/db/dbtest"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := dbtest.Config(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.PublicDir, "index.html"), []byte("<html>marks portal</html>"), 0o644))

	database := dbtest.OpenWithConfig(t, cfg)
	deps := BuildDependencies(cfg, database, zerolog.Nop())
	return SetupRouter(cfg, deps, zerolog.Nop())
}

func call(t *testing.T, router *gin.Engine, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	return w.Code, decoded
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body["message"])
}

func TestEndToEnd_MarksWorkflow(t *testing.T) {
	router := newTestRouter(t)

	var studentIDs []float64
	for i, category := range []string{"GEN", "GEN", "SC", "GEN"} {
		section := "A"
		if i == 3 {
			section = "B"
		}
		status, body := call(t, router, http.MethodPost, "/api/students", fmt.Sprintf(
			`{"reg_number":"REG%02d","full_name":"Student %d","year":"2","department":"CSE","section":"%s","category":"%s"}`,
			i, i, section, category))
		require.Equal(t, http.StatusCreated, status, body)
		assert.Equal(t, "Student added successfully", body["message"])
		studentIDs = append(studentIDs, body["data"].(map[string]any)["id"].(float64))
	}

	status, body := call(t, router, http.MethodPost, "/api/students",
		`{"reg_number":"REG00","full_name":"Dup","year":"2","department":"CSE","section":"A","category":"GEN"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body["error"], "UNIQUE")

	status, _ = call(t, router, http.MethodPost, "/api/subjects",
		`{"year":"2","department":"CSE","semester":"3","subject_code":"CS201","subject_name":"Data Structures"}`)
	require.Equal(t, http.StatusCreated, status)

	marks := make([]string, 0, len(studentIDs))
	for i, id := range studentIDs {
		marks = append(marks, fmt.Sprintf(
			`{"student_id":%d,"subject_code":"CS201","subject_name":"Data Structures","assessment_type":"midterm","marks":%d,"academic_year":"2024-25"}`,
			int64(id), 25+i*10))
	}
	status, body = call(t, router, http.MethodPost, "/api/marks/bulk", `{"marks":[`+strings.Join(marks, ",")+`]}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "All marks saved successfully", body["message"])
	assert.EqualValues(t, 4, body["saved"])

	// A batch referencing an unknown student leaves nothing behind
	status, body = call(t, router, http.MethodPost, "/api/marks/bulk", `{"marks":[
		{"student_id":999,"subject_code":"CS202","subject_name":"OS","assessment_type":"midterm","marks":70,"academic_year":"2024-25"}
	]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "mark 0: ")

	status, body = call(t, router, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 4, body["totalStudents"])
	assert.EqualValues(t, 1, body["totalSubjects"])
	assert.EqualValues(t, 4, body["totalMarksEntries"])

	status, body = call(t, router, http.MethodGet,
		"/api/marks?assessment_type=midterm&academic_year=2024-25&department=CSE&section=A&subject_code=CS201", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["marks"], 3)

	status, body = call(t, router, http.MethodGet, "/api/marks?assessment_type=midterm&department=CSE", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing required filters: academic_year, section, subject_code", body["error"])

	// Scores 25, 35, 45 in section A and 55 in section B
	status, body = call(t, router, http.MethodGet,
		"/api/reports/performance?assessment_type=midterm&academic_year=2024-25&department=CSE&section=A&subject_code=CS201", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"total": float64(3), "pass": float64(1), "fail": float64(2)}, body["totals"])
	assert.Equal(t, "33.33", body["passPercentage"])

	status, body = call(t, router, http.MethodGet,
		"/api/reports/performance?assessment_type=midterm&year=2024-25&department=CSE&section=all&subject_code=CS201", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"total": float64(4), "pass": float64(2), "fail": float64(2)}, body["totals"])
	assert.Equal(t, "50.00", body["passPercentage"])

	status, body = call(t, router, http.MethodGet,
		"/api/reports/performance?assessment_type=final&academic_year=2024-25&department=CSE&section=all&subject_code=CS201", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["passPercentage"])

	status, _ = call(t, router, http.MethodDelete, fmt.Sprintf("/api/students/%d", int64(studentIDs[0])), "")
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, router, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["totalStudents"])
	assert.EqualValues(t, 3, body["totalMarksEntries"])
}

func TestEndToEnd_ClassRosterRequiresAllFields(t *testing.T) {
	router := newTestRouter(t)

	for _, query := range []string{"", "?year=2", "?year=2&department=CSE", "?department=CSE&section=A"} {
		status, body := call(t, router, http.MethodGet, "/api/students/class"+query, "")
		assert.Equal(t, http.StatusBadRequest, status, query)
		assert.Equal(t, "Year, department, and section are required", body["error"])
	}

	status, body := call(t, router, http.MethodGet, "/api/students/class?year=2&department=CSE&section=A", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["students"])
}

func TestEndToEnd_DeleteMissingIDs(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodDelete, "/api/students/12345", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Student deleted successfully", body["message"])

	status, body = call(t, router, http.MethodDelete, "/api/subjects/12345", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Subject deleted successfully", body["message"])

	// Ids below the first generated one can never exist and behave like any missing id
	for _, path := range []string{"/api/students/0", "/api/students/-1", "/api/subjects/0", "/api/subjects/-1"} {
		status, body = call(t, router, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusOK, status, path)
		assert.Contains(t, body["message"], "deleted successfully", path)
	}

	status, body = call(t, router, http.MethodDelete, "/api/students/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid student ID", body["error"])
}

func TestEndToEnd_Fallbacks(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "marks portal")

	status, body := call(t, router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", body["error"])
}

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/students", nil)
	req.Header.Set("Origin", "http://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
