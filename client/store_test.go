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
	employeeapimodels "workorbit-backend/models/api/employee"
	onboardingapimodels "workorbit-backend/models/api/onboarding"
)

func TestEmployeeStoreCacheMutation(t *testing.T) {
	deleted := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/employees":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]employeeapimodels.EmployeeView{
				{ID: "emp-1", FirstName: "Kim", LastName: "Lee", Email: "kim@workorbit.com"},
			}))
		case r.Method == http.MethodPost && r.URL.Path == "/api/employees":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse(employeeapimodels.EmployeeView{
				ID: "emp-2", FirstName: "Ada", LastName: "Young", Email: "ada@workorbit.com",
			}))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/employees/emp-1":
			deleted = true
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse("employee deleted"))
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	store := NewEmployeeStore(New(server.URL))
	ctx := context.Background()

	require.Nil(t, store.Fetch(ctx))
	require.Len(t, store.List(), 1)

	_, err := store.Create(ctx, employeeapimodels.EmployeeData{
		FirstName: "Ada", LastName: "Young", Email: "ada@workorbit.com",
	})
	require.Nil(t, err)
	require.Len(t, store.List(), 2)
	require.Len(t, store.Managers(), 2)

	// cached entry, no extra request
	rec, err := store.GetByID(ctx, "emp-2")
	require.Nil(t, err)
	require.Equal(t, "ada@workorbit.com", rec.Email)

	require.Nil(t, store.Delete(ctx, "emp-1"))
	require.True(t, deleted)
	require.Len(t, store.List(), 1)
	require.Equal(t, "emp-2", store.List()[0].ID)
}

func TestOnboardingStoreItemMutation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/onboarding/emp-1":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]onboardingapimodels.InstanceView{
				{
					ID:          "inst-1",
					EmployeeID:  "emp-1",
					ChecklistID: "cl-1",
					ItemsStatus: []onboardingapimodels.ItemStatusView{
						{Key: "nda", Title: "Sign NDA", Status: models.OnboardingItemPending},
					},
				},
			}))
		case r.Method == http.MethodPost && r.URL.Path == "/api/onboarding/emp-1/item/nda/approve":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse(onboardingapimodels.ItemStatusView{
				Key: "nda", Title: "Sign NDA", Status: models.OnboardingItemApproved, UpdatedBy: "user-9",
			}))
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	store := NewOnboardingStore(New(server.URL))
	ctx := context.Background()

	require.Nil(t, store.FetchInstances(ctx, "emp-1"))
	require.Len(t, store.InstancesFor("emp-1"), 1)

	item, err := store.ApproveItem(ctx, "emp-1", "nda")
	require.Nil(t, err)
	require.Equal(t, models.OnboardingItemApproved, item.Status)

	// the cached instance snapshot reflects the mutation
	cached := store.InstancesFor("emp-1")
	require.Equal(t, models.OnboardingItemApproved, cached[0].ItemsStatus[0].Status)
	require.Equal(t, "user-9", cached[0].ItemsStatus[0].UpdatedBy)
}
