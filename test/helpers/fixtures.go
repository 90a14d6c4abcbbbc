package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

var emailCounter int64

// UniqueEmail produces an email no other test in this run has used.
func UniqueEmail(prefix string) string {
	n := atomic.AddInt64(&emailCounter, 1)
	return fmt.Sprintf("%s_%d_%d@test.local", prefix, time.Now().UnixNano(), n)
}

// AuthUser is the decoded response of a registration call plus credentials.
type AuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// RegisterAndLoginHr registers a fresh HR account and returns its token.
func RegisterAndLoginHr(t *testing.T, ts *TestServer) (string, *AuthUser) {
	return registerAndLogin(t, ts, "/api/auth/hr/register", "hr")
}

// RegisterAndLoginCandidate registers a fresh candidate account and returns its token.
func RegisterAndLoginCandidate(t *testing.T, ts *TestServer) (string, *AuthUser) {
	return registerAndLogin(t, ts, "/api/auth/candidate/register", "candidate")
}

func registerAndLogin(t *testing.T, ts *TestServer, registerPath, prefix string) (string, *AuthUser) {
	email := UniqueEmail(prefix)
	password := "super_password123"

	regRes, regBody := ts.SendRequest(t, "POST", registerPath, "", map[string]interface{}{
		"email":      email,
		"password":   password,
		"first_name": "Test",
		"last_name":  "User",
	})
	if regRes.StatusCode != http.StatusCreated {
		t.Fatalf("Registration failed (%d): %s", regRes.StatusCode, regBody)
	}

	var user AuthUser
	if err := json.Unmarshal([]byte(regBody), &user); err != nil {
		t.Fatalf("Failed to decode registration response: %v", err)
	}
	user.Password = password

	logRes, logBody := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if logRes.StatusCode != http.StatusOK {
		t.Fatalf("Login failed (%d): %s", logRes.StatusCode, logBody)
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(logBody), &login); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if login.AccessToken == "" {
		t.Fatalf("Login returned an empty token: %s", logBody)
	}

	return login.AccessToken, &user
}

// JobFixture is a created job plus its task template ids in order.
type JobFixture struct {
	ID      string
	TaskIDs []string
}

// CreateJobWithTasks builds a job and appends task templates through the API.
// Each entry of taskDescriptions becomes one template, in order.
func CreateJobWithTasks(t *testing.T, ts *TestServer, hrToken, title string, taskDescriptions []string) *JobFixture {
	jobRes, jobBody := ts.SendRequest(t, "POST", "/api/hr/jobs", hrToken, map[string]interface{}{
		"title":       title,
		"description": "fixture job",
	})
	if jobRes.StatusCode != http.StatusCreated {
		t.Fatalf("Job creation failed (%d): %s", jobRes.StatusCode, jobBody)
	}

	var job struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(jobBody), &job); err != nil {
		t.Fatalf("Failed to decode job response: %v", err)
	}

	fixture := &JobFixture{ID: job.ID}
	for _, desc := range taskDescriptions {
		taskRes, taskBody := ts.SendRequest(t, "POST", "/api/hr/jobs/"+job.ID+"/tasks", hrToken, map[string]interface{}{
			"description": desc,
		})
		if taskRes.StatusCode != http.StatusCreated {
			t.Fatalf("Task creation failed (%d): %s", taskRes.StatusCode, taskBody)
		}

		var task struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal([]byte(taskBody), &task); err != nil {
			t.Fatalf("Failed to decode task response: %v", err)
		}
		fixture.TaskIDs = append(fixture.TaskIDs, task.ID)
	}

	return fixture
}

// CandidateTaskRow mirrors the progress list response shape.
type CandidateTaskRow struct {
	ID             string  `json:"id"`
	Order          int     `json:"order"`
	Description    string  `json:"description"`
	RequiresFile   bool    `json:"requires_file"`
	IsVerifiedByHr bool    `json:"is_verified_by_hr"`
	FilePath       string  `json:"file_path"`
	Status         string  `json:"status"`
	CompletedAt    *string `json:"completed_at"`
}

// GetCandidateTasks fetches the candidate's own progress list.
func GetCandidateTasks(t *testing.T, ts *TestServer, candidateToken string) []CandidateTaskRow {
	res, body := ts.SendRequest(t, "GET", "/api/candidate/tasks", candidateToken, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Fetching candidate tasks failed (%d): %s", res.StatusCode, body)
	}

	var rows []CandidateTaskRow
	if err := json.Unmarshal([]byte(body), &rows); err != nil {
		t.Fatalf("Failed to decode candidate tasks: %v", err)
	}
	return rows
}
