package models

type OnboardingItemStatus string

const (
	OnboardingItemPending  OnboardingItemStatus = "pending"
	OnboardingItemDone     OnboardingItemStatus = "done"
	OnboardingItemApproved OnboardingItemStatus = "approved"
)

func (s OnboardingItemStatus) IsValid() bool {
	switch s {
	case OnboardingItemPending, OnboardingItemDone, OnboardingItemApproved:
		return true
	}
	return false
}
