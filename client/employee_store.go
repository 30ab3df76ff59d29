package client

import (
	"context"
	"sync"

	employeeapimodels "workorbit-backend/models/api/employee"
)

// EmployeeStore caches the directory slice and mutates it in place on
// create/update/delete, so reads after a mutation see the server state
// without a refetch.
type EmployeeStore struct {
	client *Client

	mu        sync.RWMutex
	employees []employeeapimodels.EmployeeView
}

func NewEmployeeStore(c *Client) *EmployeeStore {
	return &EmployeeStore{client: c}
}

func (s *EmployeeStore) Fetch(ctx context.Context) error {
	list, err := s.client.Employees(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = list
	return nil
}

func (s *EmployeeStore) List() []employeeapimodels.EmployeeView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]employeeapimodels.EmployeeView, len(s.employees))
	copy(list, s.employees)
	return list
}

// GetByID serves from the cache when possible and falls back to the API.
func (s *EmployeeStore) GetByID(ctx context.Context, employeeID string) (employeeapimodels.EmployeeView, error) {
	s.mu.RLock()
	for _, rec := range s.employees {
		if rec.ID == employeeID {
			s.mu.RUnlock()
			return rec, nil
		}
	}
	s.mu.RUnlock()
	return s.client.Employee(ctx, employeeID)
}

func (s *EmployeeStore) Create(ctx context.Context, req employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	rec, err := s.client.CreateEmployee(ctx, req)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, rec)
	return rec, nil
}

func (s *EmployeeStore) Update(ctx context.Context, employeeID string, req employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	rec, err := s.client.UpdateEmployee(ctx, employeeID, req)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.employees {
		if s.employees[idx].ID == employeeID {
			s.employees[idx] = rec
			break
		}
	}
	return rec, nil
}

func (s *EmployeeStore) Delete(ctx context.Context, employeeID string) error {
	if err := s.client.DeleteEmployee(ctx, employeeID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.employees[:0]
	for _, rec := range s.employees {
		if rec.ID != employeeID {
			kept = append(kept, rec)
		}
	}
	s.employees = kept
	return nil
}

// Managers projects the cached directory into manager-picker entries.
func (s *EmployeeStore) Managers() []employeeapimodels.ManagerView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]employeeapimodels.ManagerView, 0, len(s.employees))
	for _, rec := range s.employees {
		list = append(list, employeeapimodels.ManagerView{
			ID:        rec.ID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
		})
	}
	return list
}
