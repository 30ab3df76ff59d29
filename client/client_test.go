package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"workorbit-backend/models"
	apimodels "workorbit-backend/models/api"
	authapimodels "workorbit-backend/models/api/auth"
	employeeapimodels "workorbit-backend/models/api/employee"
)

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		req := authapimodels.LoginRequest{}
		require.Nil(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "kim@workorbit.com", req.Email)

		_ = json.NewEncoder(w).Encode(apimodels.NewResponse(authapimodels.JWTResponse{
			Token: "token-123",
			User: authapimodels.UserView{
				ID:    "user-1",
				Email: req.Email,
				Role:  models.UserRoleEmployee,
			},
		}))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Login(context.Background(), "kim@workorbit.com", "secret1")
	require.Nil(t, err)
	require.Equal(t, "token-123", resp.Token)
	require.Equal(t, "token-123", c.token)
}

func TestBearerHeaderSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(apimodels.NewResponse(authapimodels.UserView{
			ID:    "user-1",
			Email: "kim@workorbit.com",
		}))
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("token-123")
	me, err := c.Me(context.Background())
	require.Nil(t, err)
	require.Equal(t, "user-1", me.ID)
}

func TestErrorMessagePropagated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apimodels.NewError("employee with this email exists"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateEmployee(context.Background(), employeeapimodels.EmployeeData{
		FirstName: "Kim",
		LastName:  "Lee",
		Email:     "kim@workorbit.com",
	})
	require.NotNil(t, err)
	require.Equal(t, "employee with this email exists", err.Error())
}

func TestEmployeesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/employees", r.URL.Path)
		_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]employeeapimodels.EmployeeView{
			{ID: "emp-1", FirstName: "Kim", LastName: "Lee", Email: "kim@workorbit.com"},
			{ID: "emp-2", FirstName: "Ada", LastName: "Young", Email: "ada@workorbit.com"},
		}))
	}))
	defer server.Close()

	c := New(server.URL)
	list, err := c.Employees(context.Background())
	require.Nil(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "emp-1", list[0].ID)
}

func TestLogoutDropsToken(t *testing.T) {
	c := New("http://127.0.0.1:0")
	c.SetToken("token-123")
	c.Logout()
	require.Empty(t, c.token)
}
