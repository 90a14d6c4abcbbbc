package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestJobCrud(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)

	createRes, createBody := ts.SendRequest(t, "POST", "/api/hr/jobs", hrToken, map[string]interface{}{
		"title":       "Backend Engineer",
		"description": "Go position",
	})
	assert.Equal(t, http.StatusCreated, createRes.StatusCode)

	var job struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(createBody), &job))
	assert.NotEmpty(t, job.ID)

	getRes, getBody := ts.SendRequest(t, "GET", "/api/hr/jobs/"+job.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBody, "Backend Engineer")

	editRes, _ := ts.SendRequest(t, "PUT", "/api/hr/jobs/"+job.ID, hrToken, map[string]interface{}{
		"title":       "Senior Backend Engineer",
		"description": "Go position, senior",
	})
	assert.Equal(t, http.StatusOK, editRes.StatusCode)

	getRes2, getBody2 := ts.SendRequest(t, "GET", "/api/hr/jobs/"+job.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, getRes2.StatusCode)
	assert.Contains(t, getBody2, "Senior Backend Engineer")

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/hr/jobs/"+job.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	goneRes, _ := ts.SendRequest(t, "GET", "/api/hr/jobs/"+job.ID, hrToken, nil)
	assert.Equal(t, http.StatusNotFound, goneRes.StatusCode)
}

func TestJob_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)

	missingID := "00000000-0000-0000-0000-000000000000"

	getRes, _ := ts.SendRequest(t, "GET", "/api/hr/jobs/"+missingID, hrToken, nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode)

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/hr/jobs/"+missingID, hrToken, nil)
	assert.Equal(t, http.StatusNotFound, delRes.StatusCode)
}

func TestJobTask_OrderAssignment(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Ordered Job", []string{
		"Sign the NDA",
		"Set up the laptop",
		"Meet the team",
	})

	getRes, getBody := ts.SendRequest(t, "GET", "/api/hr/jobs/"+fixture.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)

	var job struct {
		JobTasks []struct {
			ID          string `json:"id"`
			Order       int    `json:"order"`
			Description string `json:"description"`
		} `json:"job_tasks"`
	}
	assert.NoError(t, json.Unmarshal([]byte(getBody), &job))
	if assert.Len(t, job.JobTasks, 3) {
		// Positions are assigned sequentially from 1 in creation order.
		assert.Equal(t, 1, job.JobTasks[0].Order)
		assert.Equal(t, "Sign the NDA", job.JobTasks[0].Description)
		assert.Equal(t, 2, job.JobTasks[1].Order)
		assert.Equal(t, 3, job.JobTasks[2].Order)
	}
}

func TestJobTask_Reorder(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Reorder Job", []string{
		"First", "Second", "Third",
	})

	reorderRes, _ := ts.SendRequest(t, "PUT", "/api/hr/jobs/"+fixture.ID+"/tasks/reorder", hrToken, []map[string]interface{}{
		{"task_id": fixture.TaskIDs[0], "order": 3},
		{"task_id": fixture.TaskIDs[2], "order": 1},
	})
	assert.Equal(t, http.StatusOK, reorderRes.StatusCode)

	getRes, getBody := ts.SendRequest(t, "GET", "/api/hr/jobs/"+fixture.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)

	var job struct {
		JobTasks []struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"job_tasks"`
	}
	assert.NoError(t, json.Unmarshal([]byte(getBody), &job))
	if assert.Len(t, job.JobTasks, 3) {
		// "Third" moved to the front, "First" to the back; "Second" untouched.
		assert.Equal(t, fixture.TaskIDs[2], job.JobTasks[0].ID)
		assert.Equal(t, fixture.TaskIDs[1], job.JobTasks[1].ID)
		assert.Equal(t, fixture.TaskIDs[0], job.JobTasks[2].ID)
	}
}

func TestJobTask_Flags(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Flags Job", []string{"Upload your ID"})
	taskID := fixture.TaskIDs[0]

	fileRes, _ := ts.SendRequest(t, "PUT", "/api/hr/tasks/"+taskID+"/set-file-requirement", hrToken, nil)
	assert.Equal(t, http.StatusOK, fileRes.StatusCode)

	verifRes, _ := ts.SendRequest(t, "PUT", "/api/hr/tasks/"+taskID+"/set-verification-requirement", hrToken, nil)
	assert.Equal(t, http.StatusOK, verifRes.StatusCode)

	getRes, getBody := ts.SendRequest(t, "GET", "/api/hr/tasks/"+taskID, hrToken, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)

	var task struct {
		RequiresFile         bool `json:"requires_file"`
		RequiresVerification bool `json:"requires_verification"`
	}
	assert.NoError(t, json.Unmarshal([]byte(getBody), &task))
	assert.True(t, task.RequiresFile)
	assert.True(t, task.RequiresVerification)
}

func TestJobTask_DeleteRenumbersNothing(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Sparse Job", []string{"A", "B", "C"})

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/hr/tasks/"+fixture.TaskIDs[1], hrToken, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	getRes, getBody := ts.SendRequest(t, "GET", "/api/hr/jobs/"+fixture.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)

	var job struct {
		JobTasks []struct {
			Order int `json:"order"`
		} `json:"job_tasks"`
	}
	assert.NoError(t, json.Unmarshal([]byte(getBody), &job))
	if assert.Len(t, job.JobTasks, 2) {
		// Remaining positions keep their values; gaps are fine.
		assert.Equal(t, 1, job.JobTasks[0].Order)
		assert.Equal(t, 3, job.JobTasks[1].Order)
	}

	// A new task lands after the highest surviving position.
	newRes, newBody := ts.SendRequest(t, "POST", "/api/hr/jobs/"+fixture.ID+"/tasks", hrToken, map[string]interface{}{
		"description": "D",
	})
	assert.Equal(t, http.StatusCreated, newRes.StatusCode)

	var newTask struct {
		Order int `json:"order"`
	}
	assert.NoError(t, json.Unmarshal([]byte(newBody), &newTask))
	assert.Equal(t, 4, newTask.Order)
}

func TestDeleteJob_Cascades(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)

	fixture := helpers.CreateJobWithTasks(t, ts, hrToken, "Doomed Job", []string{"One", "Two"})

	assignRes, _ := ts.SendRequest(t, "POST", "/api/candidate/jobs/"+fixture.ID+"/assign", candToken, nil)
	assert.Equal(t, http.StatusOK, assignRes.StatusCode)

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/hr/jobs/"+fixture.ID, hrToken, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	// The candidate is detached and its progress rows are gone.
	tasks := helpers.GetCandidateTasks(t, ts, candToken)
	assert.Empty(t, tasks)

	profRes, profBody := ts.SendRequest(t, "GET", "/api/candidate/view-profile", candToken, nil)
	assert.Equal(t, http.StatusOK, profRes.StatusCode)

	var profile struct {
		AssignedJobID    *string `json:"assigned_job_id"`
		AssignedJobTitle string  `json:"assigned_job_title"`
	}
	assert.NoError(t, json.Unmarshal([]byte(profBody), &profile))
	assert.Nil(t, profile.AssignedJobID)
	assert.Equal(t, "None", profile.AssignedJobTitle)
}
