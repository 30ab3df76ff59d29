// Package client is a typed Go client for the WorkOrbit HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// SetToken installs the bearer token used on subsequent calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) sendRequest(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	uri := c.baseURL + path
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "request serialize error")
		}
		reqBody = bytes.NewReader(payload)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, reqBody)
	if err != nil {
		return errors.Wrap(err, "request build error")
	}
	if body != nil {
		r.Header.Add("Content-Type", "application/json")
	}
	if c.token != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", c.token))
	}

	logger := log.
		WithField("api_request", uri).
		WithField("method", method)

	response, err := c.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("request send error")
		return errors.Wrap(err, "request send error")
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "response read error")
	}
	logger = logger.WithField("response_status_code", response.StatusCode)

	env := envelope{}
	if len(responseBody) != 0 {
		if err := json.Unmarshal(responseBody, &env); err != nil {
			logger.WithError(err).Error("response deserialize error")
			return errors.Wrap(err, "response deserialize error")
		}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		if env.Message != "" {
			return errors.New(env.Message)
		}
		return errors.Errorf("unexpected response status: %v", response.StatusCode)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			logger.WithError(err).Error("response data deserialize error")
			return errors.Wrap(err, "response data deserialize error")
		}
	}
	return nil
}

// sendRaw performs a request whose body is not wrapped in the standard
// envelope, such as file downloads and the xlsx export.
func (c *Client) sendRaw(ctx context.Context, method, path string) ([]byte, error) {
	uri := c.baseURL + path
	r, err := http.NewRequestWithContext(ctx, method, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "request build error")
	}
	if c.token != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", c.token))
	}
	response, err := c.httpClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "request send error")
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "response read error")
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		env := envelope{}
		if len(responseBody) != 0 && json.Unmarshal(responseBody, &env) == nil && env.Message != "" {
			return nil, errors.New(env.Message)
		}
		return nil, errors.Errorf("unexpected response status: %v", response.StatusCode)
	}
	return responseBody, nil
}
