package integration_test

import (
	"net/http"
	"testing"

	"jobtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestAssignToJob_SeedsProgress(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Onboarding", []string{
		"Sign contract", "Security training", "First ticket",
	})

	assignRes, _ := ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)
	assert.Equal(t, http.StatusOK, assignRes.StatusCode)

	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	if assert.Len(t, tasks, 3) {
		// Assignment seeds every row untouched; nothing is activated yet.
		for _, task := range tasks {
			assert.Equal(t, "not_started", task.Status)
			assert.Nil(t, task.CompletedAt)
		}
		assert.Equal(t, 1, tasks[0].Order)
		assert.Equal(t, 2, tasks[1].Order)
		assert.Equal(t, 3, tasks[2].Order)
	}
}

func TestAssignToJob_UnknownJob(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/candidate/jobs/00000000-0000-0000-0000-000000000000/assign", candToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCompleteTask_ActivatesNext(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Chain Job", []string{"One", "Two", "Three"})
	assignRes, _ := ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)
	assert.Equal(t, http.StatusOK, assignRes.StatusCode)

	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	assert.Len(t, tasks, 3)

	compRes, _ := ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", candToken, nil)
	assert.Equal(t, http.StatusOK, compRes.StatusCode)

	after := helpers.GetCandidateTasks(t, ts, candToken)
	if assert.Len(t, after, 3) {
		assert.Equal(t, "completed", after[0].Status)
		assert.NotNil(t, after[0].CompletedAt)
		assert.Equal(t, "in_progress", after[1].Status)
		assert.Equal(t, "not_started", after[2].Status)
	}

	// Completing out of order works the same; the last one has no successor.
	comp3Res, _ := ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[2].ID+"/complete", candToken, nil)
	assert.Equal(t, http.StatusOK, comp3Res.StatusCode)

	final := helpers.GetCandidateTasks(t, ts, candToken)
	if assert.Len(t, final, 3) {
		assert.Equal(t, "completed", final[0].Status)
		assert.Equal(t, "in_progress", final[1].Status)
		assert.Equal(t, "completed", final[2].Status)
	}
}

func TestCompleteTask_Idempotent(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Idem Job", []string{"Only"})
	ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)

	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	assert.Len(t, tasks, 1)

	first, _ := ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", candToken, nil)
	assert.Equal(t, http.StatusOK, first.StatusCode)

	afterFirst := helpers.GetCandidateTasks(t, ts, candToken)
	stamp := afterFirst[0].CompletedAt
	assert.NotNil(t, stamp)

	second, _ := ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", candToken, nil)
	assert.Equal(t, http.StatusOK, second.StatusCode)

	afterSecond := helpers.GetCandidateTasks(t, ts, candToken)
	// The original completion timestamp survives the repeat call.
	assert.Equal(t, stamp, afterSecond[0].CompletedAt)
}

func TestCompleteTask_OtherCandidatesTask(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	ownerToken, _ := helpers.RegisterAndLoginCandidate(t, ts)
	strangerToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Private Job", []string{"Mine"})
	ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", ownerToken, nil)

	tasks := helpers.GetCandidateTasks(t, ts, ownerToken)
	assert.Len(t, tasks, 1)

	res, _ := ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestReassign_WipesPreviousProgress(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	first := helpers.CreateJobWithTasks(t, ts, hrToken, "First Job", []string{"A", "B"})
	second := helpers.CreateJobWithTasks(t, ts, hrToken, "Second Job", []string{"X"})

	ts.SendRequest(t, "POST", "/api/candidate/jobs/"+first.ID+"/assign", candToken, nil)
	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	assert.Len(t, tasks, 2)
	ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", candToken, nil)

	reassignRes, _ := ts.SendRequest(t, "POST", "/api/candidate/jobs/"+second.ID+"/assign", candToken, nil)
	assert.Equal(t, http.StatusOK, reassignRes.StatusCode)

	after := helpers.GetCandidateTasks(t, ts, candToken)
	if assert.Len(t, after, 1) {
		assert.Equal(t, "X", after[0].Description)
		assert.Equal(t, "not_started", after[0].Status)
	}

	// The old progress row is gone entirely.
	oldRes, _ := ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", candToken, nil)
	assert.Equal(t, http.StatusNotFound, oldRes.StatusCode)
}

func TestCompletionTimestamp(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Stamp Job", []string{"Dated"})
	ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)

	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	assert.Len(t, tasks, 1)

	beforeRes, beforeBody := ts.SendRequest(t, "GET", "/api/candidate/tasks/"+tasks[0].ID+"/completion-timestamp", candToken, nil)
	assert.Equal(t, http.StatusOK, beforeRes.StatusCode)
	assert.Contains(t, beforeBody, "null")

	ts.SendRequest(t, "POST", "/api/candidate/tasks/"+tasks[0].ID+"/complete", candToken, nil)

	afterRes, afterBody := ts.SendRequest(t, "GET", "/api/candidate/tasks/"+tasks[0].ID+"/completion-timestamp", candToken, nil)
	assert.Equal(t, http.StatusOK, afterRes.StatusCode)
	assert.NotContains(t, afterBody, "null")
}

func TestVerifyTask(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Verified Job", []string{"Check me"})
	ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)

	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	assert.Len(t, tasks, 1)
	assert.False(t, tasks[0].IsVerifiedByHr)

	// Verification does not wait for completion.
	verifRes, _ := ts.SendRequest(t, "PUT", "/api/hr/candidates/tasks/"+tasks[0].ID+"/verify", hrToken, nil)
	assert.Equal(t, http.StatusOK, verifRes.StatusCode)

	// Repeat verification stays OK.
	againRes, _ := ts.SendRequest(t, "PUT", "/api/hr/candidates/tasks/"+tasks[0].ID+"/verify", hrToken, nil)
	assert.Equal(t, http.StatusOK, againRes.StatusCode)

	after := helpers.GetCandidateTasks(t, ts, candToken)
	assert.True(t, after[0].IsVerifiedByHr)

	missingRes, _ := ts.SendRequest(t, "PUT", "/api/hr/candidates/tasks/00000000-0000-0000-0000-000000000000/verify", hrToken, nil)
	assert.Equal(t, http.StatusNotFound, missingRes.StatusCode)
}

func TestHrViewsCandidateProgress(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, cand := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Watched Job", []string{"Watched"})
	ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)

	res, body := ts.SendRequest(t, "GET", "/api/hr/candidates/"+cand.ID+"/tasks", hrToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Watched")
	assert.Contains(t, body, "not_started")
}

func TestHrViewsCandidateProgress_UnknownCandidate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, hr := helpers.RegisterAndLoginHr(t, ts)

	res, _ := ts.SendRequest(t, "GET", "/api/hr/candidates/00000000-0000-0000-0000-000000000000/tasks", hrToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// An existing non-candidate account is just as missing here.
	hrRes, _ := ts.SendRequest(t, "GET", "/api/hr/candidates/"+hr.ID+"/tasks", hrToken, nil)
	assert.Equal(t, http.StatusNotFound, hrRes.StatusCode)
}
