package machine

// Step is a wizard position, 1 through 5.
type Step int

const (
	StepSelectService Step = iota + 1
	StepPickDateTime
	StepEnterDetails
	StepPay
	StepConfirmed
)

var labels = [...]string{
	StepSelectService: "Select Service",
	StepPickDateTime:  "Pick Date & Time",
	StepEnterDetails:  "Your Details",
	StepPay:           "Payment",
	StepConfirmed:     "Confirmation",
}

func (s Step) Valid() bool {
	return s >= StepSelectService && s <= StepConfirmed
}

func (s Step) Label() string {
	if !s.Valid() {
		return ""
	}

	return labels[s]
}

func (s Step) String() string {
	return s.Label()
}

// Labels lists the step labels in order, as shown by the progress bar.
func Labels() []string {
	return append([]string(nil), labels[StepSelectService:]...)
}
