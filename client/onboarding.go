package client

import (
	"context"
	"net/http"

	onboardingapimodels "workorbit-backend/models/api/onboarding"
)

func (c *Client) AssignOnboarding(ctx context.Context, employeeID, checklistID string) (onboardingapimodels.InstanceView, error) {
	req := onboardingapimodels.AssignRequest{
		ChecklistID: checklistID,
	}
	resp := onboardingapimodels.InstanceView{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/onboarding/"+employeeID+"/assign", req, &resp); err != nil {
		return onboardingapimodels.InstanceView{}, err
	}
	return resp, nil
}

func (c *Client) OnboardingInstances(ctx context.Context, employeeID string) ([]onboardingapimodels.InstanceView, error) {
	resp := []onboardingapimodels.InstanceView{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/onboarding/"+employeeID, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) UpdateOnboardingItem(ctx context.Context, employeeID, key string, req onboardingapimodels.UpdateItemRequest) (onboardingapimodels.ItemStatusView, error) {
	resp := onboardingapimodels.ItemStatusView{}
	if err := c.sendRequest(ctx, http.MethodPut, "/api/onboarding/"+employeeID+"/item/"+key, req, &resp); err != nil {
		return onboardingapimodels.ItemStatusView{}, err
	}
	return resp, nil
}

func (c *Client) ApproveOnboardingItem(ctx context.Context, employeeID, key string) (onboardingapimodels.ItemStatusView, error) {
	resp := onboardingapimodels.ItemStatusView{}
	if err := c.sendRequest(ctx, http.MethodPost, "/api/onboarding/"+employeeID+"/item/"+key+"/approve", nil, &resp); err != nil {
		return onboardingapimodels.ItemStatusView{}, err
	}
	return resp, nil
}

func (c *Client) OnboardingStatus(ctx context.Context, employeeID string) ([]onboardingapimodels.ChecklistSummary, error) {
	resp := []onboardingapimodels.ChecklistSummary{}
	if err := c.sendRequest(ctx, http.MethodGet, "/api/onboarding/"+employeeID+"/status", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
