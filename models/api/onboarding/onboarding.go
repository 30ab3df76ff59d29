package onboardingapimodels

import (
	"time"

	"github.com/pkg/errors"

	"workorbit-backend/models"
)

type AssignRequest struct {
	ChecklistID string `json:"checklist_id"`
}

func (r AssignRequest) Validate() error {
	if r.ChecklistID == "" {
		return errors.New("checklist_id required")
	}
	return nil
}

// UpdateItemRequest mutates a single snapshot item; empty Status keeps
// the current one, nil Comment keeps the current comment.
type UpdateItemRequest struct {
	Status  models.OnboardingItemStatus `json:"status,omitempty"`
	Comment *string                     `json:"comment,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("unknown item status")
	}
	return nil
}

type ItemStatusView struct {
	Key       string                      `json:"key"`
	Title     string                      `json:"title"`
	Status    models.OnboardingItemStatus `json:"status"`
	UpdatedBy string                      `json:"updated_by,omitempty"`
	UpdatedAt *time.Time                  `json:"updated_at,omitempty"`
	Comment   string                      `json:"comment,omitempty"`
}

type InstanceView struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	ChecklistID    string           `json:"checklist_id"`
	ChecklistTitle string           `json:"checklist_title,omitempty"`
	ItemsStatus    []ItemStatusView `json:"items_status"`
	CreatedAt      time.Time        `json:"created_at"`
}

type SummaryItem struct {
	Key    string                      `json:"key"`
	Title  string                      `json:"title"`
	Status models.OnboardingItemStatus `json:"status"`
}

type ChecklistSummary struct {
	ChecklistID    string        `json:"checklist_id"`
	ChecklistTitle string        `json:"checklist_title"`
	Items          []SummaryItem `json:"items"`
}
