package checklistapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type ChecklistItemData struct {
	Key              string `json:"key,omitempty"` //generated when absent
	Title            string `json:"title"`
	RequiresApproval bool   `json:"requires_approval"`
}

type CreateChecklistRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Items       []ChecklistItemData `json:"items,omitempty"`
}

func (r CreateChecklistRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// UpdateChecklistRequest is a partial update; a non-nil Items replaces
// the whole item list.
type UpdateChecklistRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Items       *[]ChecklistItemData `json:"items,omitempty"`
}

type ItemRequest struct {
	Title            string `json:"title"`
	RequiresApproval *bool  `json:"requires_approval,omitempty"`
}

func (r ItemRequest) Validate() error {
	if r.Title == "" {
		return errors.New("item title required")
	}
	return nil
}

type ChecklistView struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Items       []ChecklistItemData `json:"items"`
	CreatedBy   string              `json:"created_by,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
