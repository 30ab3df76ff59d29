package client

import (
	"context"
	"sync"

	checklistapimodels "workorbit-backend/models/api/checklist"
	onboardingapimodels "workorbit-backend/models/api/onboarding"
)

// OnboardingStore caches checklist templates plus the onboarding
// instances per employee, mirroring server mutations into the cache.
type OnboardingStore struct {
	client *Client

	mu        sync.RWMutex
	templates []checklistapimodels.ChecklistView
	instances map[string][]onboardingapimodels.InstanceView //by employee id
}

func NewOnboardingStore(c *Client) *OnboardingStore {
	return &OnboardingStore{
		client:    c,
		instances: map[string][]onboardingapimodels.InstanceView{},
	}
}

func (s *OnboardingStore) FetchTemplates(ctx context.Context) error {
	list, err := s.client.Checklists(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = list
	return nil
}

func (s *OnboardingStore) Templates() []checklistapimodels.ChecklistView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]checklistapimodels.ChecklistView, len(s.templates))
	copy(list, s.templates)
	return list
}

func (s *OnboardingStore) CreateTemplate(ctx context.Context, req checklistapimodels.CreateChecklistRequest) (checklistapimodels.ChecklistView, error) {
	rec, err := s.client.CreateChecklist(ctx, req)
	if err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, rec)
	return rec, nil
}

func (s *OnboardingStore) UpdateTemplate(ctx context.Context, checklistID string, req checklistapimodels.UpdateChecklistRequest) (checklistapimodels.ChecklistView, error) {
	rec, err := s.client.UpdateChecklist(ctx, checklistID, req)
	if err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	s.replaceTemplate(rec)
	return rec, nil
}

func (s *OnboardingStore) DeleteTemplate(ctx context.Context, checklistID string) error {
	if err := s.client.DeleteChecklist(ctx, checklistID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.templates[:0]
	for _, rec := range s.templates {
		if rec.ID != checklistID {
			kept = append(kept, rec)
		}
	}
	s.templates = kept
	return nil
}

func (s *OnboardingStore) AddTemplateItem(ctx context.Context, checklistID string, req checklistapimodels.ItemRequest) error {
	if _, err := s.client.AddChecklistItem(ctx, checklistID, req); err != nil {
		return err
	}
	return s.refreshTemplate(ctx, checklistID)
}

func (s *OnboardingStore) UpdateTemplateItem(ctx context.Context, checklistID, key string, req checklistapimodels.ItemRequest) error {
	if _, err := s.client.UpdateChecklistItem(ctx, checklistID, key, req); err != nil {
		return err
	}
	return s.refreshTemplate(ctx, checklistID)
}

func (s *OnboardingStore) DeleteTemplateItem(ctx context.Context, checklistID, key string) error {
	if err := s.client.DeleteChecklistItem(ctx, checklistID, key); err != nil {
		return err
	}
	return s.refreshTemplate(ctx, checklistID)
}

func (s *OnboardingStore) Assign(ctx context.Context, employeeID, checklistID string) (onboardingapimodels.InstanceView, error) {
	rec, err := s.client.AssignOnboarding(ctx, employeeID, checklistID)
	if err != nil {
		return onboardingapimodels.InstanceView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances[employeeID] = append(s.instances[employeeID], rec)
	return rec, nil
}

func (s *OnboardingStore) FetchInstances(ctx context.Context, employeeID string) error {
	list, err := s.client.OnboardingInstances(ctx, employeeID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances[employeeID] = list
	return nil
}

func (s *OnboardingStore) InstancesFor(employeeID string) []onboardingapimodels.InstanceView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]onboardingapimodels.InstanceView, len(s.instances[employeeID]))
	copy(list, s.instances[employeeID])
	return list
}

func (s *OnboardingStore) UpdateItem(ctx context.Context, employeeID, key string, req onboardingapimodels.UpdateItemRequest) (onboardingapimodels.ItemStatusView, error) {
	item, err := s.client.UpdateOnboardingItem(ctx, employeeID, key, req)
	if err != nil {
		return onboardingapimodels.ItemStatusView{}, err
	}
	s.replaceItem(employeeID, item)
	return item, nil
}

func (s *OnboardingStore) ApproveItem(ctx context.Context, employeeID, key string) (onboardingapimodels.ItemStatusView, error) {
	item, err := s.client.ApproveOnboardingItem(ctx, employeeID, key)
	if err != nil {
		return onboardingapimodels.ItemStatusView{}, err
	}
	s.replaceItem(employeeID, item)
	return item, nil
}

func (s *OnboardingStore) Status(ctx context.Context, employeeID string) ([]onboardingapimodels.ChecklistSummary, error) {
	return s.client.OnboardingStatus(ctx, employeeID)
}

func (s *OnboardingStore) replaceTemplate(rec checklistapimodels.ChecklistView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.templates {
		if s.templates[idx].ID == rec.ID {
			s.templates[idx] = rec
			return
		}
	}
	s.templates = append(s.templates, rec)
}

func (s *OnboardingStore) refreshTemplate(ctx context.Context, checklistID string) error {
	rec, err := s.client.Checklist(ctx, checklistID)
	if err != nil {
		return err
	}
	s.replaceTemplate(rec)
	return nil
}

func (s *OnboardingStore) replaceItem(employeeID string, item onboardingapimodels.ItemStatusView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for instIdx, inst := range s.instances[employeeID] {
		for itemIdx := range inst.ItemsStatus {
			if inst.ItemsStatus[itemIdx].Key == item.Key {
				s.instances[employeeID][instIdx].ItemsStatus[itemIdx] = item
				return
			}
		}
	}
}
