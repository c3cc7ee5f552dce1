package recommendation

import (
	"net/url"

	"sportmed/internal/domain/intake"
)

const (
	TypeCardiologist   = "Cardiologist"
	TypeNutritionist   = "Nutritionist"
	TypeSportsMedicine = "Sports Medicine Specialist"
)

const (
	cardioAgeThreshold = 40
	bmiThreshold       = 25
)

var contactSports = map[string]struct{}{
	"football": {},
	"mma":      {},
}

type Specialist struct {
	Type   string
	Reason string
	Icon   string
}

// SearchURL is a web search for the specialist type near the user.
func (s Specialist) SearchURL() string {
	q := url.Values{}
	q.Set("q", s.Type+" near me")
	return "https://www.google.com/search?" + q.Encode()
}

type Profile struct {
	Intake *intake.Record
	Sport  string
}

// Recommend evaluates the specialist rules in their fixed order. Unparsable numbers
// make the dependent rule not fire.
func Recommend(p Profile) []Specialist {
	out := make([]Specialist, 0, 3)
	if p.Intake == nil {
		return out
	}

	age := intake.ParseNumber(p.Intake.Age)
	if age > cardioAgeThreshold {
		out = append(out, Specialist{
			Type:   TypeCardiologist,
			Reason: "Routine check-up due to age",
			Icon:   "❤️",
		})
	}

	if BMI(p.Intake.WeightKg, p.Intake.HeightCm) > bmiThreshold {
		out = append(out, Specialist{
			Type:   TypeNutritionist,
			Reason: "Dietary guidance for optimal performance",
			Icon:   "🍎",
		})
	}

	if _, ok := contactSports[p.Sport]; ok {
		out = append(out, Specialist{
			Type:   TypeSportsMedicine,
			Reason: "Injury prevention and performance optimization",
			Icon:   "🏃",
		})
	}

	return out
}

// BMI returns weight / (height in metres)^2, NaN when either side does not parse.
func BMI(weightKg, heightCm string) float64 {
	w := intake.ParseNumber(weightKg)
	h := intake.ParseNumber(heightCm) / 100
	return w / (h * h)
}
