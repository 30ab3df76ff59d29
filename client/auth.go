package client

import (
	"context"
	"net/http"

	authapimodels "workorbit-backend/models/api/auth"
)

// Login authenticates and installs the issued token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (authapimodels.JWTResponse, error) {
	req := authapimodels.LoginRequest{
		Email:    email,
		Password: password,
	}
	resp := authapimodels.JWTResponse{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return authapimodels.JWTResponse{}, err
	}
	c.SetToken(resp.Token)
	return resp, nil
}

func (c *Client) Register(ctx context.Context, req authapimodels.RegisterRequest) (authapimodels.UserView, error) {
	resp := authapimodels.UserView{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return authapimodels.UserView{}, err
	}
	return resp, nil
}

func (c *Client) Me(ctx context.Context) (authapimodels.UserView, error) {
	resp := authapimodels.UserView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return authapimodels.UserView{}, err
	}
	return resp, nil
}

func (c *Client) SeedAdmin(ctx context.Context) (authapimodels.SeedAdminResponse, error) {
	resp := authapimodels.SeedAdminResponse{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/auth/seed-admin", nil, &resp); err != nil {
		return authapimodels.SeedAdminResponse{}, err
	}
	return resp, nil
}

// Logout drops the stored token; the server keeps no session state.
func (c *Client) Logout() {
	c.token = ""
}
