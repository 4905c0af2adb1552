package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/voltkart/voltkart-api/models"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.InitLogger("error")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func performJSON(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	mockStore := new(MockStore)
	router := newTestRouter()
	router.POST("/signup", Signup(mockStore))

	mockStore.On("GetUserByUsername", mock.Anything, "alice").Return(nil, store.ErrNotFound)
	mockStore.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	w := performJSON(router, "POST", "/signup", []byte(`{"username":"alice","password":"secret","is_admin":true}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, true, user["is_admin"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, w.Body.String(), "password")
	mockStore.AssertExpectations(t)
}

func TestSignupDuplicateUsername(t *testing.T) {
	mockStore := new(MockStore)
	router := newTestRouter()
	router.POST("/signup", Signup(mockStore))

	existing := &models.User{ID: "u1", Username: "alice"}
	mockStore.On("GetUserByUsername", mock.Anything, "alice").Return(existing, nil)

	// A second signup with the same username is rejected regardless of the
	// submitted password.
	w := performJSON(router, "POST", "/signup", []byte(`{"username":"alice","password":"different"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
	mockStore.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestSignupInvalidBody(t *testing.T) {
	mockStore := new(MockStore)
	router := newTestRouter()
	router.POST("/signup", Signup(mockStore))

	w := performJSON(router, "POST", "/signup", []byte(`{"username":"alice"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{ID: "u1", Username: "alice", Password: string(hash), IsAdmin: false}

	mockStore := new(MockStore)
	router := newTestRouter()
	router.POST("/login", Login(mockStore))

	mockStore.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil)

	w := performJSON(router, "POST", "/login", []byte(`{"username":"alice","password":"password123"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.NotEmpty(t, response["token"])
	mockStore.AssertExpectations(t)
}

func TestLoginUnknownUser(t *testing.T) {
	mockStore := new(MockStore)
	router := newTestRouter()
	router.POST("/login", Login(mockStore))

	mockStore.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, store.ErrNotFound)

	w := performJSON(router, "POST", "/login", []byte(`{"username":"ghost","password":"whatever"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{ID: "u1", Username: "alice", Password: string(hash)}

	mockStore := new(MockStore)
	router := newTestRouter()
	router.POST("/login", Login(mockStore))

	mockStore.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil)

	w := performJSON(router, "POST", "/login", []byte(`{"username":"alice","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
