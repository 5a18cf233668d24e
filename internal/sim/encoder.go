package sim

import (
	"math"

	"github.com/talgya/lifesim/internal/entity"
)

// ObsSize is the fixed length of the observation vector.
const ObsSize = 64

// Observation vector indices. Policies read the vector through these
// names; the encoder below is the source of truth for the layout.
const (
	ObsHealth       = 0
	ObsMental       = 1
	ObsHappiness    = 2
	ObsEnergy       = 3
	ObsStress       = 4
	ObsAlive        = 5
	ObsSick         = 8
	ObsMoney        = 10
	ObsDebt         = 11
	ObsCredit       = 13
	ObsOwnsHome     = 14
	ObsNetWorth     = 16
	ObsEmployed     = 17
	ObsJobSat       = 20
	ObsSkill        = 21
	ObsSupport      = 24
	ObsMarried      = 26
	ObsRelationship = 28
	ObsAlcohol      = 30
	ObsDrug         = 31
	ObsSmoking      = 32
	ObsRecovery     = 33
	ObsIncarcerated = 36
	ObsOwnsCar      = 37
	ObsHasLicense   = 39
	ObsEnrolled     = 45
	ObsEducation    = 46
	ObsDay          = 62
)

// Encode projects the player and world into a fixed-length vector with
// every element in [0, 1]. Unbounded quantities pass through tanh soft
// caps so outliers saturate instead of blowing up the scale. The layout
// is stable across versions; new fields must extend, never reorder.
func Encode(p *entity.Person, w *entity.World) []float64 {
	obs := make([]float64, 0, ObsSize)

	// Vitals
	obs = append(obs,
		p.Health/100,
		p.MentalHealth/100,
		p.Happiness/100,
		p.Energy/100,
		p.Stress/100,
		boolObs(p.Alive),
	)

	// Physical
	obs = append(obs,
		entity.Clamp(p.AgeYears()/90, 0, 1),
		entity.Clamp(p.BMI()/50, 0, 1),
		boolObs(p.Sick),
		entity.Clamp(p.SickSeverity/10, 0, 1),
	)

	// Financial
	obs = append(obs,
		softCap(p.Money, 50_000),
		softCap(p.Debt+p.StudentLoan, 50_000),
		softCap(p.Investments+p.Retirement, 100_000),
		(p.CreditScore-300)/550,
		boolObs(p.OwnsHome),
		softCap(p.HomeValue, 500_000),
		signedCap(p.NetWorth(), 200_000),
	)

	// Career
	obs = append(obs,
		boolObs(p.Employed),
		float64(p.JobField)/float64(entity.NumJobFields-1),
		softCap(p.MonthlyIncome, 10_000),
		p.JobSatisfaction/100,
		p.SkillLevel/10,
		entity.Clamp(p.YearsExperience/40, 0, 1),
		p.Reputation/100,
	)

	// Social
	obs = append(obs,
		p.SocialSupport/100,
		entity.Clamp(float64(len(p.FriendIDs))/10, 0, 1),
		boolObs(p.Married()),
		entity.Clamp(float64(p.Children)/5, 0, 1),
		p.RelationshipSat/100,
		entity.Clamp(float64(len(p.FamilyIDs))/10, 0, 1),
	)

	// Substances
	obs = append(obs,
		p.AlcoholDep/100,
		p.DrugDep/100,
		p.SmokingDep/100,
		boolObs(p.InRecovery),
	)

	// Legal
	obs = append(obs,
		boolObs(p.CriminalRecord),
		boolObs(p.OnProbation),
		boolObs(p.Incarcerated),
	)

	// Assets
	obs = append(obs,
		boolObs(p.OwnsCar),
		boolObs(p.CarWorking),
		boolObs(p.HasLicense),
		boolObs(p.Insured),
		boolObs(p.GymMember),
		softCap(p.CarValue, 30_000),
	)

	// Progress
	total := len(p.GoalsDone) + len(p.GoalsPending)
	goalFrac := 0.0
	if total > 0 {
		goalFrac = float64(len(p.GoalsDone)) / float64(total)
	}
	obs = append(obs,
		goalFrac,
		entity.Clamp(float64(p.Milestones)/20, 0, 1),
		boolObs(p.Enrolled),
		float64(p.Education)/float64(entity.MaxEducation),
	)

	// Extended
	bizValue, bizSuccess := 0.0, 0.0
	if p.Business != nil {
		bizValue = softCap(p.Business.Value, 100_000)
		bizSuccess = p.Business.Success / 100
	}
	obs = append(obs,
		entity.Clamp(float64(p.AlivePets())/3, 0, 1),
		bizValue,
		bizSuccess,
		p.Fame/100,
		p.Anxiety/100,
		p.Depression/100,
		p.PTSD/100,
		p.Cooking/100,
		p.Fitness/100,
		p.Creativity/100,
		p.Leadership/100,
		entity.Clamp(float64(p.CountriesVisited)/10, 0, 1),
		entity.Clamp(float64(p.LanguagesKnown)/5, 0, 1),
		entity.Clamp(float64(p.BooksRead)/50, 0, 1),
		entity.Clamp(p.VolunteerHours/500, 0, 1),
	)

	// Time
	obs = append(obs,
		entity.Clamp(float64(w.Day)/float64(w.EpisodeLength), 0, 1),
		float64(w.Season())/3,
	)

	return obs
}

func boolObs(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// softCap maps a non-negative quantity into [0, 1) with unit scale.
func softCap(v, scale float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Tanh(v / scale)
}

// signedCap maps a signed quantity into (0, 1) with 0.5 at zero.
func signedCap(v, scale float64) float64 {
	return 0.5 + 0.5*math.Tanh(v/scale)
}
