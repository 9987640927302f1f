package service

// Picker selects an index in [0, n) for a drawing.
type Picker interface {
	Pick(n int) (int, error)
}

// Rules are the registry's eligibility and drawing parameters.
type Rules struct {
	HomeState  string
	MinimumAge int
	DrawDate   string
}

// DefaultRules returns the Colorado rules.
func DefaultRules() Rules {
	return Rules{
		HomeState:  DefaultHomeState,
		MinimumAge: DefaultMinimumAge,
		DrawDate:   DefaultDrawDate,
	}
}
