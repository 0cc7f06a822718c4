package domain

import "fmt"

type Step string

const (
	StepCart     Step = "cart"
	StepDelivery Step = "delivery"
	StepSchedule Step = "schedule"
	StepPayment  Step = "payment"
)

// forward is the strictly linear progression; the only other legal move is
// back to cart, which is always allowed.
var forward = map[Step]Step{
	StepCart:     StepDelivery,
	StepDelivery: StepSchedule,
	StepSchedule: StepPayment,
}

// Next returns the step a successful submission advances to. Payment has no
// next step: it terminates in order placement.
func (s Step) Next() (Step, bool) {
	n, ok := forward[s]
	return n, ok
}

func (s Step) IsCheckout() bool {
	return s == StepDelivery || s == StepSchedule || s == StepPayment
}

func (s Step) String() string {
	return string(s)
}

func ParseStep(v string) (Step, error) {
	switch Step(v) {
	case StepCart, StepDelivery, StepSchedule, StepPayment:
		return Step(v), nil
	}
	return "", fmt.Errorf("unknown checkout step %q", v)
}
