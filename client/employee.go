package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	employeeapimodels "workorbit-backend/models/api/employee"
)

func (c *Client) Employees(ctx context.Context) ([]employeeapimodels.EmployeeView, error) {
	resp := []employeeapimodels.EmployeeView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Employee(ctx context.Context, employeeID string) (employeeapimodels.EmployeeView, error) {
	resp := employeeapimodels.EmployeeView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/employees/"+employeeID, nil, &resp); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return resp, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	resp := employeeapimodels.EmployeeView{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/employees", req, &resp); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return resp, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, req employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	resp := employeeapimodels.EmployeeView{}
	if err := c.sendRequest(ctx, http.MethodPut, "/api/employees/"+employeeID, req, &resp); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return resp, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return c.sendRequest(ctx, http.MethodDelete, "/api/employees/"+employeeID, nil, nil)
}

// ExportEmployees returns the directory as an xlsx document.
func (c *Client) ExportEmployees(ctx context.Context) ([]byte, error) {
	return c.sendRaw(ctx, http.MethodGet, "/api/employees/export")
}

// ExportEmployeesPDF returns the directory as a pdf document.
func (c *Client) ExportEmployeesPDF(ctx context.Context) ([]byte, error) {
	return c.sendRaw(ctx, http.MethodGet, "/api/employees/export/pdf")
}

func (c *Client) EmployeeDocuments(ctx context.Context, employeeID string) ([]employeeapimodels.DocumentView, error) {
	resp := []employeeapimodels.DocumentView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/employees/"+employeeID+"/documents", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) DownloadDocument(ctx context.Context, employeeID, fileID string) ([]byte, error) {
	return c.sendRaw(ctx, http.MethodGet, "/api/employees/"+employeeID+"/documents/"+fileID)
}

func (c *Client) UploadDocument(ctx context.Context, employeeID, fileName string, file io.Reader) (employeeapimodels.DocumentView, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return employeeapimodels.DocumentView{}, errors.Wrap(err, "request build error")
	}
	if _, err := io.Copy(part, file); err != nil {
		return employeeapimodels.DocumentView{}, errors.Wrap(err, "request build error")
	}
	if err := writer.Close(); err != nil {
		return employeeapimodels.DocumentView{}, errors.Wrap(err, "request build error")
	}

	uri := c.baseURL + "/api/employees/" + employeeID + "/documents"
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, body)
	if err != nil {
		return employeeapimodels.DocumentView{}, errors.Wrap(err, "request build error")
	}
	r.Header.Add("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", c.token))
	}
	response, err := c.httpClient.Do(r)
	if err != nil {
		return employeeapimodels.DocumentView{}, errors.Wrap(err, "request send error")
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return employeeapimodels.DocumentView{}, errors.Wrap(err, "response read error")
	}
	env := envelope{}
	if len(responseBody) != 0 {
		if err := json.Unmarshal(responseBody, &env); err != nil {
			return employeeapimodels.DocumentView{}, errors.Wrap(err, "response deserialize error")
		}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		if env.Message != "" {
			return employeeapimodels.DocumentView{}, errors.New(env.Message)
		}
		return employeeapimodels.DocumentView{}, errors.Errorf("unexpected response status: %v", response.StatusCode)
	}
	resp := employeeapimodels.DocumentView{}
	if env.Data != nil {
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			return employeeapimodels.DocumentView{}, errors.Wrap(err, "response data deserialize error")
		}
	}
	return resp, nil
}
