// Package rest is the console's typed HTTP client for the CRM API. List
// calls fetch whole collections; filtering and pagination happen locally.
package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mhd-interiors/crm-console/internal/client/session"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

const requestTimeout = 30 * time.Second

// apiError is the error envelope every non-2xx response carries.
type apiError struct {
	Error string `json:"error"`
}

// Client wraps resty with bearer injection from the credential store and
// typed methods per endpoint.
type Client struct {
	http     *resty.Client
	accessor *session.Accessor
}

func New(baseURL string, accessor *session.Accessor) *Client {
	c := &Client{accessor: accessor}
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if tok := accessor.Token(); tok != "" {
				req.SetHeader("Authorization", "Bearer "+tok)
			}
			return nil
		})
	return c
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token, persists it, and refreshes
// the memoized session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/authentication/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, respError(resp)
	}

	if err := c.accessor.Save(out.Token); err != nil {
		return nil, err
	}
	return c.accessor.Current(), nil
}

// Logout discards the stored credential.
func (c *Client) Logout() error {
	return c.accessor.Clear()
}

func respError(resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status(), apiErr.Error)
	}
	return fmt.Errorf("%s", resp.Status())
}

// get fetches into out and normalizes errors.
func (c *Client) get(ctx context.Context, path string, out any, query map[string]string) error {
	req := c.http.R().SetContext(ctx).SetError(&apiError{})
	if out != nil {
		req.SetResult(out)
	}
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return respError(resp)
	}
	return nil
}

// send issues a POST/PUT/DELETE with an optional body and result.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx).SetError(&apiError{})
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return respError(resp)
	}
	return nil
}
