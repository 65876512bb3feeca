package models

import "time"

// MembershipType is the subscription cadence of a plan.
type MembershipType string

const (
	MembershipDaily   MembershipType = "daily"
	MembershipWeekly  MembershipType = "weekly"
	MembershipMonthly MembershipType = "monthly"
)

// Term is how long a freshly activated plan of this type lasts.
func (t MembershipType) Term() time.Duration {
	switch t {
	case MembershipWeekly:
		return 7 * 24 * time.Hour
	case MembershipMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Membership is a subscription plan. A user carries at most one.
type Membership struct {
	ID                string         `json:"id"                yaml:"id"                validate:"required"`
	Type              MembershipType `json:"type"              yaml:"type"              validate:"required,in=daily,weekly,monthly"`
	Name              string         `json:"name"              yaml:"name"              validate:"required"`
	Price             float64        `json:"price"             yaml:"price"             validate:"gte=0"`
	Discount          float64        `json:"discount"          yaml:"discount"          validate:"between=0,100"`
	Features          []string       `json:"features"          yaml:"features"`
	DeliveriesPerWeek int            `json:"deliveriesPerWeek" yaml:"deliveriesPerWeek" validate:"gte=0,lte=7"`
	Active            bool           `json:"active"            yaml:"active"`
	ExpiresAt         time.Time      `json:"expiresAt"         yaml:"expiresAt"`
}
