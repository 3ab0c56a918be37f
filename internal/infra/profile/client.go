// Package profile implements the HTTP client for the downstream tutor profile service.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ezytutor/config"
	"ezytutor/internal/domain/entity"
	domainerrors "ezytutor/internal/domain/errors"
	"ezytutor/internal/domain/service"

	"github.com/pkg/errors"
)

// client implements service.TutorProfileService over HTTP.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// createTutorRequest is the JSON body for the profile creation call.
type createTutorRequest struct {
	TutorName    string `json:"tutor_name"`
	TutorPicURL  string `json:"tutor_pic_url"`
	TutorProfile string `json:"tutor_profile"`
}

// tutorResponse is the JSON body the profile service returns. Only tutor_id is
// required; the profile fields are echoed back.
type tutorResponse struct {
	TutorID      *int32 `json:"tutor_id"`
	TutorName    string `json:"tutor_name"`
	TutorPicURL  string `json:"tutor_pic_url"`
	TutorProfile string `json:"tutor_profile"`
}

// NewClient is the constructor for the profile service client. The client
// timeout bounds the downstream call; there are no retries.
func NewClient(cfg *config.Config, logger *slog.Logger) service.TutorProfileService {
	return &client{
		baseURL: cfg.ProfileService.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ProfileService.Timeout,
		},
		logger: logger,
	}
}

// CreateProfile creates a remote tutor profile via POST {baseURL}/tutors/.
// Connection errors, non-2xx statuses and malformed bodies all map to
// ErrProfileServiceUnavailable.
func (c *client) CreateProfile(ctx context.Context, name, imageURL, profileText string) (*entity.TutorProfile, error) {
	body, err := json.Marshal(createTutorRequest{
		TutorName:    name,
		TutorPicURL:  imageURL,
		TutorProfile: profileText,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode tutor profile request")
	}

	endpoint := c.baseURL + "/tutors/"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tutor profile request")
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Creating remote tutor profile", slog.String("endpoint", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileServiceUnavailable, "profile service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Profile service returned non-success status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode))

		return nil, errors.Wrapf(domainerrors.ErrProfileServiceUnavailable, "profile service returned status %d", resp.StatusCode)
	}

	var tutorResp tutorResponse
	if err := json.NewDecoder(resp.Body).Decode(&tutorResp); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileServiceUnavailable, "malformed profile service response")
	}
	if tutorResp.TutorID == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileServiceUnavailable, "profile service response missing tutor_id")
	}

	c.logger.Debug("Remote tutor profile created", slog.Int("tutorID", int(*tutorResp.TutorID)))

	return &entity.TutorProfile{
		TutorID:  *tutorResp.TutorID,
		Name:     tutorResp.TutorName,
		ImageURL: tutorResp.TutorPicURL,
		Profile:  tutorResp.TutorProfile,
	}, nil
}
