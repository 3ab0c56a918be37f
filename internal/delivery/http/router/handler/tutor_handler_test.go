package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ezytutor/internal/delivery/http/render"
	"ezytutor/internal/delivery/http/validator"
	domainerrors "ezytutor/internal/domain/errors"
	"ezytutor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsecase returns canned results and records the last inputs.
type fakeUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	signInOutput   *usecase.SignInOutput
	signInErr      error

	lastRegister *usecase.RegisterInput
	lastSignIn   *usecase.SignInInput
}

func (f *fakeUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.lastRegister = input

	return f.registerOutput, f.registerErr
}

func (f *fakeUsecase) SignIn(_ context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	f.lastSignIn = input

	return f.signInOutput, f.signInErr
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := render.New()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

func postForm(e *echo.Echo, path string, form url.Values) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return rec, e.NewContext(req, rec)
}

func registerForm() url.Values {
	return url.Values{
		"username":     {"newtutor"},
		"password":     {"pass123"},
		"confirmation": {"pass123"},
		"name":         {"New Tutor"},
		"imageurl":     {"http://example.com/pic.png"},
		"profile":      {"Teaches Go"},
	}
}

func TestShowRegisterForm(t *testing.T) {
	e := newTestEcho(t)
	h := NewTutorHandler(&fakeUsecase{}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ShowRegisterForm(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/register"`)
}

func TestHandleRegister_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{registerOutput: &usecase.RegisterOutput{TutorID: 42}}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/register", registerForm())
	require.NoError(t, h.HandleRegister(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Congratulations. You have been successfully registered with EzyTutor and your tutor id is: 42. To start using EzyTutor, please login with your credentials.")

	require.NotNil(t, uc.lastRegister)
	assert.Equal(t, "newtutor", uc.lastRegister.Username)
	assert.Equal(t, "pass123", uc.lastRegister.Confirmation)
}

func TestHandleRegister_DuplicateUserKeepsFields(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{registerErr: domainerrors.ErrDuplicateUser.WrapMessage("username already registered")}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/register", registerForm())
	require.NoError(t, h.HandleRegister(c))

	body := rec.Body.String()
	assert.Contains(t, body, "User Id already exists")
	// Submitted values survive the round trip, passwords excepted.
	assert.Contains(t, body, `value="newtutor"`)
	assert.Contains(t, body, `value="New Tutor"`)
	assert.NotContains(t, body, "pass123")
}

func TestHandleRegister_PasswordMismatch(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{registerErr: domainerrors.ErrPasswordMismatch.WrapMessage("password and confirmation differ")}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/register", registerForm())
	require.NoError(t, h.HandleRegister(c))

	assert.Contains(t, rec.Body.String(), "Passwords do not match")
}

func TestHandleRegister_MissingFields(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/register", url.Values{"username": {"newtutor"}})
	require.NoError(t, h.HandleRegister(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastRegister)
}

func TestHandleRegister_UpstreamErrorEscalates(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{registerErr: domainerrors.ErrProfileServiceUnavailable.WrapMessage("connection refused")}
	h := NewTutorHandler(uc, slog.Default())

	_, c := postForm(e, "/register", registerForm())
	err := h.HandleRegister(c)

	// Not a form outcome; it belongs to the error handler.
	assert.ErrorIs(t, err, domainerrors.ErrProfileServiceUnavailable)
}

func TestHandleSignIn_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{signInOutput: &usecase.SignInOutput{Username: "tutor1"}}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/signin", url.Values{
		"username": {"tutor1"},
		"password": {"goodpass"},
	})
	require.NoError(t, h.HandleSignIn(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Signin confirmation!")
	assert.Contains(t, body, "You have successfully logged in to EzyTutor!")
	assert.Contains(t, body, "tutor1")
}

func TestHandleSignIn_UnknownUser(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{signInErr: domainerrors.ErrUserNotFound.WrapMessage("no credential record for username")}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/signin", url.Values{
		"username": {"ghost"},
		"password": {"whatever"},
	})
	require.NoError(t, h.HandleSignIn(c))

	body := rec.Body.String()
	assert.Contains(t, body, "User id not found")
	assert.Contains(t, body, `value="ghost"`)
	assert.NotContains(t, body, "whatever")
}

func TestHandleSignIn_InvalidLoginKeepsPassword(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{signInErr: domainerrors.ErrInvalidLogin.WrapMessage("password does not match stored hash")}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/signin", url.Values{
		"username": {"tutor1"},
		"password": {"badpass"},
	})
	require.NoError(t, h.HandleSignIn(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Invalid login")
	assert.Contains(t, body, `value="tutor1"`)
	assert.Contains(t, body, `value="badpass"`)
}

func TestHandleSignIn_VerificationFailureClearsPassword(t *testing.T) {
	e := newTestEcho(t)
	uc := &fakeUsecase{signInErr: domainerrors.ErrVerificationFailed.WrapMessage("stored password hash is not verifiable")}
	h := NewTutorHandler(uc, slog.Default())

	rec, c := postForm(e, "/signin", url.Values{
		"username": {"tutor1"},
		"password": {"goodpass"},
	})
	require.NoError(t, h.HandleSignIn(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Invalid login")
	assert.NotContains(t, body, "goodpass")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
