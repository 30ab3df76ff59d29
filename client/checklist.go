package client

import (
	"context"
	"net/http"

	checklistapimodels "workorbit-backend/models/api/checklist"
)

func (c *Client) Checklists(ctx context.Context) ([]checklistapimodels.ChecklistView, error) {
	resp := []checklistapimodels.ChecklistView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/checklists", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Checklist(ctx context.Context, checklistID string) (checklistapimodels.ChecklistView, error) {
	resp := checklistapimodels.ChecklistView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/checklists/"+checklistID, nil, &resp); err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	return resp, nil
}

func (c *Client) CreateChecklist(ctx context.Context, req checklistapimodels.CreateChecklistRequest) (checklistapimodels.ChecklistView, error) {
	resp := checklistapimodels.ChecklistView{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/checklists", req, &resp); err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	return resp, nil
}

func (c *Client) UpdateChecklist(ctx context.Context, checklistID string, req checklistapimodels.UpdateChecklistRequest) (checklistapimodels.ChecklistView, error) {
	resp := checklistapimodels.ChecklistView{}
	if err := c.sendRequest(ctx, http.MethodPut, "/api/checklists/"+checklistID, req, &resp); err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	return resp, nil
}

func (c *Client) DeleteChecklist(ctx context.Context, checklistID string) error {
	return c.sendRequest(ctx, http.MethodDelete, "/api/checklists/"+checklistID, nil, nil)
}

func (c *Client) AddChecklistItem(ctx context.Context, checklistID string, req checklistapimodels.ItemRequest) (checklistapimodels.ChecklistItemData, error) {
	resp := checklistapimodels.ChecklistItemData{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/checklists/"+checklistID+"/items", req, &resp); err != nil {
		return checklistapimodels.ChecklistItemData{}, err
	}
	return resp, nil
}

func (c *Client) UpdateChecklistItem(ctx context.Context, checklistID, key string, req checklistapimodels.ItemRequest) (checklistapimodels.ChecklistItemData, error) {
	resp := checklistapimodels.ChecklistItemData{}
	if err := c.sendRequest(ctx, http.MethodPut, "/api/checklists/"+checklistID+"/items/"+key, req, &resp); err != nil {
		return checklistapimodels.ChecklistItemData{}, err
	}
	return resp, nil
}

func (c *Client) DeleteChecklistItem(ctx context.Context, checklistID, key string) error {
	return c.sendRequest(ctx, http.MethodDelete, "/api/checklists/"+checklistID+"/items/"+key, nil, nil)
}
