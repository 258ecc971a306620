// Package rpcclient calls the guardroster RPC surface over HTTP
package rpcclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/localnerve/guardroster/internal/models"
)

// APIError is a failed procedure call, decoded from the error envelope
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Type, e.Message)
}

// LoginResult is the auth.login output
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// CheckResult is the auth.check output
type CheckResult struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserID          string `json:"userId"`
}

type envelope[T any] struct {
	Result struct {
		Data T `json:"data"`
	} `json:"result"`
}

type success struct {
	Success bool `json:"success"`
}

// Client is a typed caller for every procedure
type Client struct {
	http *resty.Client
}

// New creates a client for the server at baseURL, e.g. http://localhost:3000
func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL+"/api/trpc").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Api-Version", "1.0.0")
	return &Client{http: rc}
}

// SetToken sets the bearer token sent on every call
func (c *Client) SetToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func call[T any](ctx context.Context, c *Client, method, procedure string, input interface{}) (T, error) {
	var out envelope[T]
	var apiErr APIError

	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr)
	if input != nil {
		req.SetBody(input)
	}

	resp, err := req.Execute(method, "/"+procedure)
	if err != nil {
		return out.Result.Data, fmt.Errorf("%s failed: %w", procedure, err)
	}
	if resp.IsError() {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
			apiErr.Message = resp.Status()
		}
		return out.Result.Data, &apiErr
	}
	return out.Result.Data, nil
}

func query[T any](ctx context.Context, c *Client, procedure string) (T, error) {
	return call[T](ctx, c, http.MethodGet, procedure, nil)
}

func mutate[T any](ctx context.Context, c *Client, procedure string, input interface{}) (T, error) {
	return call[T](ctx, c, http.MethodPost, procedure, input)
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	res, err := mutate[LoginResult](ctx, c, "auth.login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return res, err
	}
	c.SetToken(res.Token)
	return res, nil
}

func (c *Client) Check(ctx context.Context) (CheckResult, error) {
	return query[CheckResult](ctx, c, "auth.check")
}

func (c *Client) Guards(ctx context.Context) ([]models.Guard, error) {
	return query[[]models.Guard](ctx, c, "guards.getAll")
}

func (c *Client) AddGuard(ctx context.Context, firstName, lastName, idNumber, phone string) (models.Guard, error) {
	return mutate[models.Guard](ctx, c, "guards.add", map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"idNumber":  idNumber,
		"phone":     phone,
	})
}

func (c *Client) DeleteGuard(ctx context.Context, guardID string) error {
	_, err := mutate[success](ctx, c, "guards.delete", map[string]string{"guardId": guardID})
	return err
}

func (c *Client) Inspections(ctx context.Context) ([]models.Inspection, error) {
	return query[[]models.Inspection](ctx, c, "inspections.getAll")
}

// AddInspection sends i without its id and date, which the server assigns
func (c *Client) AddInspection(ctx context.Context, i models.Inspection) (models.Inspection, error) {
	return mutate[models.Inspection](ctx, c, "inspections.add", i)
}

func (c *Client) DeleteInspection(ctx context.Context, inspectionID string) error {
	_, err := mutate[success](ctx, c, "inspections.delete", map[string]string{"inspectionId": inspectionID})
	return err
}

func (c *Client) Exercises(ctx context.Context) ([]models.Exercise, error) {
	return query[[]models.Exercise](ctx, c, "exercises.getAll")
}

// AddExercise sends e without its id and date, which the server assigns
func (c *Client) AddExercise(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	return mutate[models.Exercise](ctx, c, "exercises.add", e)
}

func (c *Client) DeleteExercise(ctx context.Context, exerciseID string) error {
	_, err := mutate[success](ctx, c, "exercises.delete", map[string]string{"exerciseId": exerciseID})
	return err
}
