package wizard

// Step is a wizard phase. Steps are numbered from 1; StepAny marks cross-cutting fields
// that belong to no step and therefore never block navigation.
type Step int

const (
	StepAny Step = iota
	StepIdentity
	StepOfferings
	StepCoverage
	StepPortfolio
	StepReview
)

const (
	FirstStep = StepIdentity
	LastStep  = StepReview
)

var stepNames = map[Step]string{
	StepAny:       "Any",
	StepIdentity:  "Identity",
	StepOfferings: "Offerings",
	StepCoverage:  "Coverage",
	StepPortfolio: "Portfolio",
	StepReview:    "Review",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether s is a navigable step (1..5).
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Steps lists navigable steps in order.
func Steps() []Step {
	return []Step{StepIdentity, StepOfferings, StepCoverage, StepPortfolio, StepReview}
}

func clampStep(s Step) Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}
