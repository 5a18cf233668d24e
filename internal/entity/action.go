package entity

// Action is one of the fixed daily choices. The integer values are part of
// the environment contract and must not be reordered.
type Action int

const (
	ActPhysicalHealth Action = iota // 0
	ActMentalHealth                 // 1
	ActWorkHard                     // 2
	ActJobSearch                    // 3
	ActStudy                        // 4
	ActSaveInvest                   // 5
	ActRiskyInvest                  // 6
	ActSocialize                    // 7
	ActFamily                       // 8
	ActHobbies                      // 9
	ActSeekTreatment                // 10
	ActReduceStress                 // 11
	ActMajorPurchase                // 12
	ActVolunteer                    // 13
	ActDefault                      // 14
)

// NumActions is the size of the action space.
const NumActions = 15

// Valid reports whether the action is within the catalogue.
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

func (a Action) String() string {
	switch a {
	case ActPhysicalHealth:
		return "physical health"
	case ActMentalHealth:
		return "mental health"
	case ActWorkHard:
		return "work hard"
	case ActJobSearch:
		return "job search"
	case ActStudy:
		return "study"
	case ActSaveInvest:
		return "save/invest"
	case ActRiskyInvest:
		return "risky invest"
	case ActSocialize:
		return "socialize"
	case ActFamily:
		return "focus on family"
	case ActHobbies:
		return "pursue hobbies"
	case ActSeekTreatment:
		return "seek treatment"
	case ActReduceStress:
		return "reduce stress"
	case ActMajorPurchase:
		return "major purchase"
	case ActVolunteer:
		return "volunteer"
	case ActDefault:
		return "default"
	default:
		return "?"
	}
}
