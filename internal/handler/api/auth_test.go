//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/handler/api"
	resdto "projector-reservation/internal/handler/dto/response"
	"projector-reservation/internal/pkg/config"
	"projector-reservation/internal/usecase/commands"
	"projector-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeAuthCommands struct {
	registerUser *user.User
	registerErr  error
	loginToken   string
	loginUser    *user.User
	loginErr     error
	profileErr   error
}

func (f *fakeAuthCommands) Register(context.Context, commands.RegisterParams) (*user.User, error) {
	return f.registerUser, f.registerErr
}

func (f *fakeAuthCommands) Login(context.Context, user.Credentials) (string, *user.User, error) {
	return f.loginToken, f.loginUser, f.loginErr
}

func (f *fakeAuthCommands) UpdateProfile(context.Context, uuid.UUID, commands.UpdateProfileParams) error {
	return f.profileErr
}

type fakeUserQueries struct {
	view    *queries.UserView
	views   []queries.UserView
	getErr  error
	listErr error
}

func (f *fakeUserQueries) GetUser(context.Context, uuid.UUID) (*queries.UserView, error) {
	return f.view, f.getErr
}

func (f *fakeUserQueries) ListUsers(context.Context) ([]queries.UserView, error) {
	return f.views, f.listErr
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeAuthCommands
	queries  *fakeUserQueries
	userID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &fakeAuthCommands{}
	s.queries = &fakeUserQueries{}
	s.userID = uuid.New()

	handler := api.NewAuthHandler(s.commands, s.queries, config.NewTestConfig())

	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		handler.Me(c)
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) testUser() *user.User {
	email, err := user.NewEmail("maria@school.edu.br")
	s.Require().NoError(err)
	u, err := user.NewUser("Maria Silva", email, "hashed", "Mathematics")
	s.Require().NoError(err)
	return u
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	body := map[string]any{
		"name":     "Maria Silva",
		"email":    "maria@school.edu.br",
		"password": "password123",
		"area":     "Mathematics",
	}

	s.Run("201 with the created user", func() {
		s.commands.registerErr = nil
		s.commands.registerUser = s.testUser()

		rec := s.perform(http.MethodPost, url, body)
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.RegisterResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("maria@school.edu.br", resp.User.Email)
		s.Equal("professor", resp.User.Role)
	})

	s.Run("400 on binding failures", func() {
		cases := []map[string]any{
			{"email": "maria@school.edu.br", "password": "password123"}, // missing name
			{"name": "Maria", "email": "not-an-email", "password": "password123"},
			{"name": "Maria", "email": "maria@school.edu.br", "password": "short"},
		}
		for _, c := range cases {
			rec := s.perform(http.MethodPost, url, c)
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})

	s.Run("409 on duplicate email", func() {
		s.commands.registerUser = nil
		s.commands.registerErr = commands.ErrEmailTaken

		rec := s.perform(http.MethodPost, url, body)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	body := map[string]any{"email": "maria@school.edu.br", "password": "password123"}

	s.Run("200 sets the session cookie", func() {
		s.commands.loginErr = nil
		s.commands.loginToken = "test-jwt-token"
		s.commands.loginUser = s.testUser()

		rec := s.perform(http.MethodPost, url, body)
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.LoginResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("test-jwt-token", resp.AccessToken)

		cookies := rec.Result().Cookies()
		s.Require().Len(cookies, 1)
		s.Equal("access_token", cookies[0].Name)
		s.Equal("test-jwt-token", cookies[0].Value)
		s.True(cookies[0].HttpOnly)
	})

	s.Run("401 hides whether the account exists", func() {
		for _, loginErr := range []error{commands.ErrUserNotFound, commands.ErrInvalidCredentials} {
			s.commands.loginErr = loginErr

			rec := s.perform(http.MethodPost, url, body)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Contains(rec.Body.String(), "Invalid email or password")
		}
	})

	s.Run("403 for inactive accounts", func() {
		s.commands.loginErr = commands.ErrUserInactive

		rec := s.perform(http.MethodPost, url, body)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := s.perform(http.MethodPost, "/auth/logout", nil)
	s.Equal(http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal("access_token", cookies[0].Name)
	s.Empty(cookies[0].Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("200 with the current user", func() {
		s.queries.getErr = nil
		s.queries.view = &queries.UserView{ID: s.userID, Name: "Maria Silva", Email: "maria@school.edu.br", Role: "professor"}

		rec := s.perform(http.MethodGet, "/auth/me", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "maria@school.edu.br")
	})

	s.Run("404 when the account vanished", func() {
		s.queries.view = nil
		s.queries.getErr = queries.ErrNotFound

		rec := s.perform(http.MethodGet, "/auth/me", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
