// Package gating holds the static freemium limits. Free accounts get a small
// garage; premium lifts every cap.
package gating

// Plan names a subscription tier.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Limits caps garage size per plan. A zero value means unlimited.
type Limits struct {
	MaxVehicles            int
	MaxContractsPerVehicle int
}

var planLimits = map[Plan]Limits{
	PlanFree:    {MaxVehicles: 3, MaxContractsPerVehicle: 10},
	PlanPremium: {},
}

// LimitsFor returns the limits of a plan. Unknown plans get free limits.
func LimitsFor(plan Plan) Limits {
	if l, ok := planLimits[plan]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// AllowsVehicles reports whether another vehicle fits under the cap.
func (l Limits) AllowsVehicles(current int) bool {
	return l.MaxVehicles == 0 || current < l.MaxVehicles
}

// AllowsContracts reports whether another contract fits under the per-vehicle cap.
func (l Limits) AllowsContracts(current int) bool {
	return l.MaxContractsPerVehicle == 0 || current < l.MaxContractsPerVehicle
}
