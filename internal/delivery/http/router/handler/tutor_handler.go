// Package handler contains the HTTP handlers for the web forms.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "ezytutor/internal/domain/errors"
	"ezytutor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registrationConfirmation is rendered with the assigned tutor id on success.
const registrationConfirmation = "Congratulations. You have been successfully registered with EzyTutor and your tutor id is: %d. To start using EzyTutor, please login with your credentials."

// TutorHandler holds dependencies for the registration and sign-in handlers.
type TutorHandler struct {
	uc     usecase.TutorUsecase
	logger *slog.Logger
}

// registerFormData feeds the registration form template. Passwords are never
// echoed back into the form.
type registerFormData struct {
	Error    string
	Username string
	Name     string
	ImageURL string
	Profile  string
}

// signInFormData feeds the sign-in form template.
type signInFormData struct {
	Error    string
	Username string
	Password string
}

type confirmPageData struct {
	Message string
}

type userPageData struct {
	Title   string
	Name    string
	Message string
}

// NewTutorHandler is the constructor for TutorHandler, injected by Fx.
func NewTutorHandler(uc usecase.TutorUsecase, logger *slog.Logger) *TutorHandler {
	return &TutorHandler{
		uc:     uc,
		logger: logger,
	}
}

// ShowRegisterForm renders the empty registration form.
func (h *TutorHandler) ShowRegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", registerFormData{})
}

// HandleRegister processes a registration form submission. Recoverable
// outcomes re-render the form with the prior field values (passwords
// excepted); anything else escalates to the error handler.
func (h *TutorHandler) HandleRegister(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", registerFormData{
			Error:    "All required fields must be filled in",
			Username: input.Username,
			Name:     input.Name,
			ImageURL: input.ImageURL,
			Profile:  input.Profile,
		})
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrDuplicateUser):
			return c.Render(http.StatusOK, "register.html", registerFormData{
				Error:    domainerrors.ErrDuplicateUser.Message(),
				Username: input.Username,
				Name:     input.Name,
				ImageURL: input.ImageURL,
				Profile:  input.Profile,
			})
		case errors.Is(err, domainerrors.ErrPasswordMismatch):
			return c.Render(http.StatusOK, "register.html", registerFormData{
				Error:    domainerrors.ErrPasswordMismatch.Message(),
				Username: input.Username,
				Name:     input.Name,
				ImageURL: input.ImageURL,
				Profile:  input.Profile,
			})
		default:
			return errors.WithStack(err)
		}
	}

	return c.Render(http.StatusOK, "confirm.html", confirmPageData{
		Message: fmt.Sprintf(registrationConfirmation, output.TutorID),
	})
}

// ShowSignInForm renders the empty sign-in form.
func (h *TutorHandler) ShowSignInForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signin.html", signInFormData{})
}

// HandleSignIn processes a sign-in form submission.
func (h *TutorHandler) HandleSignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return c.Render(http.StatusBadRequest, "signin.html", signInFormData{
			Error:    "User id and password are required",
			Username: input.Username,
		})
	}

	output, err := h.uc.SignIn(c.Request().Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrUserNotFound):
			return c.Render(http.StatusOK, "signin.html", signInFormData{
				Error:    domainerrors.ErrUserNotFound.Message(),
				Username: input.Username,
			})
		case errors.Is(err, domainerrors.ErrInvalidLogin):
			// The password is kept in the form on a plain mismatch.
			return c.Render(http.StatusOK, "signin.html", signInFormData{
				Error:    domainerrors.ErrInvalidLogin.Message(),
				Username: input.Username,
				Password: input.Password,
			})
		case errors.Is(err, domainerrors.ErrVerificationFailed):
			return c.Render(http.StatusOK, "signin.html", signInFormData{
				Error:    domainerrors.ErrVerificationFailed.Message(),
				Username: input.Username,
			})
		default:
			return errors.WithStack(err)
		}
	}

	return c.Render(http.StatusOK, "user.html", userPageData{
		Title:   "Signin confirmation!",
		Name:    output.Username,
		Message: "You have successfully logged in to EzyTutor!",
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
