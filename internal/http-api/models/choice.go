package models

// Choice is one allowed value of an enumerated column together with its label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func labelFor(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// ChoiceValues returns the raw values, e.g. for a validator oneof list.
func ChoiceValues(choices []Choice) []string {
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		out = append(out, c.Value)
	}
	return out
}

// IsChoice reports whether value is one of choices.
func IsChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
