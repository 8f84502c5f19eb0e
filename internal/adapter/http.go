package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/go-resty/resty/v2"
)

const coursesPath = "/api/courses"

type httpAPIAdapter struct {
	client *resty.Client

	email    string
	password string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress, configures
// the underlying resty client with the resolved base URL and request timeout,
// and stores the Basic credentials from cfg.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(cfg config.Adapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("API call")
		return nil
	})

	return &httpAPIAdapter{
		client:   client,
		email:    cfg.Email,
		password: cfg.Password,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [APIAdapter].
func (h *httpAPIAdapter) SetCredentials(email, password string) {
	h.email = strings.TrimSpace(email)
	h.password = password
}

// Welcome implements [APIAdapter].
func (h *httpAPIAdapter) Welcome(ctx context.Context) (string, error) {
	var message models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&message).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("welcome request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return message.Message, nil
}

// Version implements [APIAdapter].
func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// ListUsers implements [APIAdapter].
func (h *httpAPIAdapter) ListUsers(ctx context.Context) ([]models.UserProjection, error) {
	var users []models.UserProjection

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser implements [APIAdapter].
func (h *httpAPIAdapter) CreateUser(ctx context.Context, request models.UserRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/users")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListCourses implements [APIAdapter].
func (h *httpAPIAdapter) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	var courses []models.CourseWithOwner

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&courses).
		Get(coursesPath)
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetCourse implements [APIAdapter].
func (h *httpAPIAdapter) GetCourse(ctx context.Context, courseID int64) (models.CourseWithOwner, error) {
	var course models.CourseWithOwner

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&course).
		Get(coursePath(courseID))
	if err != nil {
		return models.CourseWithOwner{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CourseWithOwner{}, err
	}

	return course, nil
}

// CreateCourse implements [APIAdapter].
func (h *httpAPIAdapter) CreateCourse(ctx context.Context, request models.CourseRequest) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(coursesPath)
	if err != nil {
		return 0, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return courseIDFromLocation(resp.Header().Get("Location"))
}

// UpdateCourse implements [APIAdapter].
func (h *httpAPIAdapter) UpdateCourse(ctx context.Context, courseID int64, request models.CourseRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(coursePath(courseID))
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteCourse implements [APIAdapter].
func (h *httpAPIAdapter) DeleteCourse(ctx context.Context, courseID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(coursePath(courseID))
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.email != "" || h.password != "" {
		req.SetBasicAuth(h.email, h.password)
	}
	return req
}

func coursePath(courseID int64) string {
	return coursesPath + "/" + strconv.FormatInt(courseID, 10)
}

func courseIDFromLocation(location string) (int64, error) {
	raw, ok := strings.CutPrefix(location, coursesPath+"/")
	if !ok {
		return 0, fmt.Errorf("%w: %q", errUnexpectedLocation, location)
	}

	courseID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUnexpectedLocation, location)
	}
	return courseID, nil
}
