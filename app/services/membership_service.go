package services

import (
	"slices"
	"time"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
)

type MembershipService struct {
	store StateStore
}

func NewMembershipService(st StateStore) *MembershipService {
	return &MembershipService{store: st}
}

// Plans lists the plans on offer.
func (s *MembershipService) Plans() []models.Membership {
	return slices.Clone(s.store.State().Memberships)
}

// Subscribe activates plan planID for the logged-in user. The plan runs for
// one day, week or month from now depending on its type.
func (s *MembershipService) Subscribe(planID string, now time.Time) (models.Membership, error) {
	st := s.store.State()
	user, ok := st.User.Get()
	if !ok {
		return models.Membership{}, store.ErrNoUser
	}
	plan, ok := st.Plan(planID)
	if !ok {
		return models.Membership{}, &store.NotFoundError{Kind: "membership", ID: planID}
	}

	plan.Active = true
	plan.ExpiresAt = now.Add(plan.Type.Term())
	if err := s.store.Dispatch(store.SetMembership{Membership: plan}); err != nil {
		return models.Membership{}, err
	}

	logger.Info("membership selected", "user_id", user.ID, "plan", plan.Name, "expires_at", plan.ExpiresAt)
	return plan, nil
}

// Current returns the logged-in user's plan, if any.
func (s *MembershipService) Current() (models.Membership, bool) {
	user, ok := s.store.State().User.Get()
	if !ok {
		return models.Membership{}, false
	}
	return user.Membership.Get()
}
