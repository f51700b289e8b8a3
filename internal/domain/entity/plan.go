package entity

import (
	"fmt"
	"strings"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
)

// PlanID identifies a purchasable credit plan
type PlanID string

// Known plans
const (
	PlanBasic    PlanID = "Basic"
	PlanAdvanced PlanID = "Advanced"
	PlanBusiness PlanID = "Business"
)

// Plan is static reference data: price in major currency units and the credits it grants.
type Plan struct {
	ID          PlanID
	Price       int64
	Credits     int64
	Description string
}

var planCatalog = []Plan{
	{ID: PlanBasic, Price: 10, Credits: 100, Description: "Best for personal use."},
	{ID: PlanAdvanced, Price: 50, Credits: 500, Description: "Best for business use."},
	{ID: PlanBusiness, Price: 250, Credits: 5000, Description: "Best for enterprise use."},
}

// Plans returns the plan catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(planCatalog))
	copy(out, planCatalog)
	return out
}

// LookupPlan resolves a plan identifier. Matching is exact: "basic" is not "Basic".
func LookupPlan(id string) (Plan, error) {
	if strings.TrimSpace(id) == "" {
		return Plan{}, errs.ErrMissingFields
	}
	for _, p := range planCatalog {
		if string(p.ID) == id {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %s", errs.ErrInvalidPlan, id)
}

// AmountMinor returns the gateway amount for the plan.
func (p Plan) AmountMinor() (int64, error) {
	return ToMinorUnits(p.Price)
}
