package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestAuthFlow_HrRegisterAndLogin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("hr_flow")

	regRes, regBody := ts.SendRequest(t, "POST", "/api/auth/hr/register", "", map[string]interface{}{
		"email":      email,
		"password":   "super_password123",
		"first_name": "Dana",
		"last_name":  "Serik",
	})
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.NotContains(t, regBody, "password")

	// The response is the created account itself, not an envelope.
	var created struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		Role      string `json:"role"`
	}
	assert.NoError(t, json.Unmarshal([]byte(regBody), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, email, created.Email)
	assert.Equal(t, "Dana", created.FirstName)
	assert.Equal(t, "Hr", created.Role)

	logRes, logBody := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBody, "access_token")
}

func TestAuthFlow_CandidateRegisterAndLogin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.RegisterAndLoginCandidate(t, ts)

	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("dup")

	body := map[string]interface{}{
		"email":      email,
		"password":   "super_password123",
		"first_name": "First",
		"last_name":  "User",
	}

	regRes, _ := ts.SendRequest(t, "POST", "/api/auth/candidate/register", "", body)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)

	// The same email is rejected even for the other account kind.
	dupRes, dupBody := ts.SendRequest(t, "POST", "/api/auth/hr/register", "", body)
	assert.Equal(t, http.StatusBadRequest, dupRes.StatusCode)
	assert.Contains(t, dupBody, "Email already in use")
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, user := helpers.RegisterAndLoginCandidate(t, ts)

	logRes, logBody := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "definitely_not_it_123",
	})
	assert.Equal(t, http.StatusBadRequest, logRes.StatusCode)
	assert.NotContains(t, logBody, "access_token")
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	logRes, _ := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    helpers.UniqueEmail("ghost"),
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusBadRequest, logRes.StatusCode)
}

func TestRegister_ShortPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	regRes, _ := ts.SendRequest(t, "POST", "/api/auth/candidate/register", "", map[string]interface{}{
		"email":      helpers.UniqueEmail("short"),
		"password":   "short",
		"first_name": "Too",
		"last_name":  "Short",
	})
	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode)
}

func TestProtectedRoute_TokenChecks(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	// No token at all.
	noTokRes, _ := ts.SendRequest(t, "GET", "/api/hr/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noTokRes.StatusCode)

	// Garbage token.
	badTokRes, _ := ts.SendRequest(t, "GET", "/api/hr/jobs", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, badTokRes.StatusCode)

	// Valid token but wrong role.
	candToken, _ := helpers.RegisterAndLoginCandidate(t, ts)
	roleRes, _ := ts.SendRequest(t, "GET", "/api/hr/jobs", candToken, nil)
	assert.Equal(t, http.StatusUnauthorized, roleRes.StatusCode)

	hrToken, _ := helpers.RegisterAndLoginHr(t, ts)
	candRouteRes, _ := ts.SendRequest(t, "GET", "/api/candidate/tasks", hrToken, nil)
	assert.Equal(t, http.StatusUnauthorized, candRouteRes.StatusCode)
}
