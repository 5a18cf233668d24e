// Package entity provides the data model shared by the simulation core:
// the Person record (player and NPC), the World record, actions, and events.
package entity

// PersonID is a unique identifier for a person.
type PersonID uint64

// PlayerID is the reserved identifier for the player person. NPC identifiers
// are issued starting above it.
const PlayerID PersonID = 1

// DaysPerYear converts simulated days to years.
const DaysPerYear = 365.0

// JobField represents a person's line of work.
type JobField uint8

const (
	FieldTechnology JobField = iota
	FieldHealthcare
	FieldEducation
	FieldFinance
	FieldTrades
	FieldService
	FieldArts
	FieldGovernment
)

// NumJobFields is the total number of job fields.
const NumJobFields = 8

func (f JobField) String() string {
	switch f {
	case FieldTechnology:
		return "technology"
	case FieldHealthcare:
		return "healthcare"
	case FieldEducation:
		return "education"
	case FieldFinance:
		return "finance"
	case FieldTrades:
		return "trades"
	case FieldService:
		return "service"
	case FieldArts:
		return "arts"
	case FieldGovernment:
		return "government"
	default:
		return "unknown"
	}
}

// EducationLevel represents the highest completed level of education.
type EducationLevel uint8

const (
	EduHighSchool EducationLevel = iota
	EduAssociate
	EduBachelor
	EduMaster
	EduDoctorate
)

// MaxEducation is the highest attainable education level.
const MaxEducation = EduDoctorate

func (e EducationLevel) String() string {
	switch e {
	case EduHighSchool:
		return "high school"
	case EduAssociate:
		return "associate degree"
	case EduBachelor:
		return "bachelor's degree"
	case EduMaster:
		return "master's degree"
	case EduDoctorate:
		return "doctorate"
	default:
		return "unknown"
	}
}

// Personality is the behavioral template driving autonomous NPC decisions.
type Personality uint8

const (
	PersonalityAggressive Personality = iota
	PersonalityCautious
	PersonalitySocial
	PersonalityAmbitious
	PersonalityHedonistic
	PersonalityBalanced
)

// NumPersonalities is the total number of personality types.
const NumPersonalities = 6

func (p Personality) String() string {
	switch p {
	case PersonalityAggressive:
		return "aggressive"
	case PersonalityCautious:
		return "cautious"
	case PersonalitySocial:
		return "social"
	case PersonalityAmbitious:
		return "ambitious"
	case PersonalityHedonistic:
		return "hedonistic"
	case PersonalityBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// Pet is a companion animal owned by a person.
type Pet struct {
	Kind    string `json:"kind"` // "dog", "cat", "bird", "fish"
	AgeDays int    `json:"age_days"`
	Alive   bool   `json:"alive"`
}

// Business is a small venture owned by a person.
type Business struct {
	Kind    string  `json:"kind"`
	Value   float64 `json:"value"`
	Success float64 `json:"success"` // 0–100
}

// Hobby is an active pastime with a skill level.
type Hobby struct {
	Name  string  `json:"name"`
	Skill float64 `json:"skill"` // 0–100
}

// Person is the core entity for both the player and NPCs. Player-only
// fields are zero-valued for NPCs; personality trait fields are meaningful
// only for NPCs.
type Person struct {
	ID   PersonID `json:"id"`
	Name string   `json:"name"`

	// Identity
	AgeDays      int    `json:"age_days"`
	Alive        bool   `json:"alive"`
	CauseOfDeath string `json:"cause_of_death,omitempty"` // Set once, on death

	// Vitals, all 0–100
	Health       float64 `json:"health"`
	MentalHealth float64 `json:"mental_health"`
	Happiness    float64 `json:"happiness"`
	Energy       float64 `json:"energy"`
	Stress       float64 `json:"stress"`

	// Physical
	WeightKg          float64  `json:"weight_kg"`
	HeightM           float64  `json:"height_m"`
	Sick              bool     `json:"sick"`
	SickDaysLeft      int      `json:"sick_days_left"`
	SickSeverity      float64  `json:"sick_severity"`
	ChronicConditions []string `json:"chronic_conditions,omitempty"`

	// Financial
	Money       float64 `json:"money"`
	Debt        float64 `json:"debt"`
	StudentLoan float64 `json:"student_loan"`
	Investments float64 `json:"investments"`
	Retirement  float64 `json:"retirement"`
	CreditScore float64 `json:"credit_score"` // 300–850
	OwnsHome    bool    `json:"owns_home"`
	HomeValue   float64 `json:"home_value"`

	// Career
	Employed         bool           `json:"employed"`
	JobField         JobField       `json:"job_field"`
	MonthlyIncome    float64        `json:"monthly_income"`
	JobSatisfaction  float64        `json:"job_satisfaction"` // 0–100
	SkillLevel       float64        `json:"skill_level"`      // 0–10
	YearsExperience  float64        `json:"years_experience"`
	Reputation       float64        `json:"reputation"` // 0–100
	Enrolled         bool           `json:"enrolled"`
	EducationDaysLeft int           `json:"education_days_left"`
	Education        EducationLevel `json:"education"`

	// Social
	SocialSupport   float64    `json:"social_support"` // 0–100
	FriendIDs       []PersonID `json:"friend_ids,omitempty"`
	SpouseID        *PersonID  `json:"spouse_id,omitempty"` // Back-reference, never ownership
	Children        int        `json:"children"`
	RelationshipSat float64    `json:"relationship_sat"` // 0–100
	FamilyIDs       []PersonID `json:"family_ids,omitempty"`

	// Substances, dependency levels 0–100
	AlcoholDep float64 `json:"alcohol_dep"`
	DrugDep    float64 `json:"drug_dep"`
	SmokingDep float64 `json:"smoking_dep"`
	InRecovery bool    `json:"in_recovery"`

	// Legal
	CriminalRecord        bool `json:"criminal_record"`
	OnProbation           bool `json:"on_probation"`
	ProbationDaysLeft     int  `json:"probation_days_left"`
	Incarcerated          bool `json:"incarcerated"`
	IncarcerationDaysLeft int  `json:"incarceration_days_left"`

	// Assets
	OwnsCar       bool    `json:"owns_car"`
	CarValue      float64 `json:"car_value"`
	CarWorking    bool    `json:"car_working"`
	CarRepairCost float64 `json:"car_repair_cost"`
	HasLicense    bool    `json:"has_license"`
	Insured       bool    `json:"insured"`
	InTherapy     bool    `json:"in_therapy"`
	OnMedication  bool    `json:"on_medication"`
	GymMember     bool    `json:"gym_member"`

	// Progress
	GoalsDone          []string `json:"goals_done,omitempty"`
	GoalsPending       []string `json:"goals_pending,omitempty"`
	Hobbies            []Hobby  `json:"hobbies,omitempty"`
	Milestones         int      `json:"milestones"`
	LowHappinessStreak int      `json:"low_happiness_streak"`

	// Personality traits (NPC only), trait scores 0–100
	Personality   Personality `json:"personality"`
	Ambition      float64     `json:"ambition"`
	RiskTolerance float64     `json:"risk_tolerance"`
	Sociability   float64     `json:"sociability"`
	Empathy       float64     `json:"empathy"`

	// Extended state
	Pets             []Pet     `json:"pets,omitempty"`
	Business         *Business `json:"business,omitempty"`
	Fame             float64   `json:"fame"` // 0–100
	Anxiety          float64   `json:"anxiety"`
	Depression       float64   `json:"depression"`
	PTSD             float64   `json:"ptsd"`
	Cooking          float64   `json:"cooking"`
	Fitness          float64   `json:"fitness"`
	Creativity       float64   `json:"creativity"`
	Leadership       float64   `json:"leadership"`
	CountriesVisited int       `json:"countries_visited"`
	LanguagesKnown   int       `json:"languages_known"`
	BooksRead        int       `json:"books_read"`
	VolunteerHours   float64   `json:"volunteer_hours"`
}

// AgeYears returns the person's age in fractional years.
func (p *Person) AgeYears() float64 {
	return float64(p.AgeDays) / DaysPerYear
}

// BMI returns the person's body mass index.
func (p *Person) BMI() float64 {
	if p.HeightM <= 0 {
		return 0
	}
	return p.WeightKg / (p.HeightM * p.HeightM)
}

// NetWorth returns money plus holdings minus liabilities.
func (p *Person) NetWorth() float64 {
	assets := p.Money + p.Investments + p.Retirement
	if p.OwnsHome {
		assets += p.HomeValue
	}
	if p.OwnsCar {
		assets += p.CarValue
	}
	if p.Business != nil {
		assets += p.Business.Value
	}
	return assets - p.Debt - p.StudentLoan
}

// Die marks the person dead with the given cause. The transition is one-way:
// calling Die on an already-dead person is a no-op and the original cause
// is preserved.
func (p *Person) Die(cause string) {
	if !p.Alive {
		return
	}
	p.Alive = false
	p.CauseOfDeath = cause
}

// ApplyCash adjusts money by delta, converting any shortfall into debt so
// cash never goes negative. Earn-and-spend within one day should be summed
// into a single delta before calling.
func (p *Person) ApplyCash(delta float64) {
	p.Money += delta
	if p.Money < 0 {
		p.Debt += -p.Money
		p.Money = 0
	}
}

// Married reports whether the person currently has a spouse reference.
func (p *Person) Married() bool {
	return p.SpouseID != nil
}

// HasHobby reports whether the person practices the named hobby.
func (p *Person) HasHobby(name string) bool {
	for _, h := range p.Hobbies {
		if h.Name == name {
			return true
		}
	}
	return false
}

// AlivePets returns the number of living pets.
func (p *Person) AlivePets() int {
	n := 0
	for _, pet := range p.Pets {
		if pet.Alive {
			n++
		}
	}
	return n
}

// Clamp saturates every bounded field to its declared range. Subsystem
// updates call this after mutating state so no field ever leaves range.
func (p *Person) Clamp() {
	p.Health = Clamp(p.Health, 0, 100)
	p.MentalHealth = Clamp(p.MentalHealth, 0, 100)
	p.Happiness = Clamp(p.Happiness, 0, 100)
	p.Energy = Clamp(p.Energy, 0, 100)
	p.Stress = Clamp(p.Stress, 0, 100)
	p.WeightKg = Clamp(p.WeightKg, 30, 250)
	p.CreditScore = Clamp(p.CreditScore, 300, 850)
	p.JobSatisfaction = Clamp(p.JobSatisfaction, 0, 100)
	p.SkillLevel = Clamp(p.SkillLevel, 0, 10)
	p.Reputation = Clamp(p.Reputation, 0, 100)
	p.SocialSupport = Clamp(p.SocialSupport, 0, 100)
	p.RelationshipSat = Clamp(p.RelationshipSat, 0, 100)
	p.AlcoholDep = Clamp(p.AlcoholDep, 0, 100)
	p.DrugDep = Clamp(p.DrugDep, 0, 100)
	p.SmokingDep = Clamp(p.SmokingDep, 0, 100)
	p.Ambition = Clamp(p.Ambition, 0, 100)
	p.RiskTolerance = Clamp(p.RiskTolerance, 0, 100)
	p.Sociability = Clamp(p.Sociability, 0, 100)
	p.Empathy = Clamp(p.Empathy, 0, 100)
	p.Fame = Clamp(p.Fame, 0, 100)
	p.Anxiety = Clamp(p.Anxiety, 0, 100)
	p.Depression = Clamp(p.Depression, 0, 100)
	p.PTSD = Clamp(p.PTSD, 0, 100)
	p.Cooking = Clamp(p.Cooking, 0, 100)
	p.Fitness = Clamp(p.Fitness, 0, 100)
	p.Creativity = Clamp(p.Creativity, 0, 100)
	p.Leadership = Clamp(p.Leadership, 0, 100)
	if p.Debt < 0 {
		p.Debt = 0
	}
	if p.StudentLoan < 0 {
		p.StudentLoan = 0
	}
	if p.Investments < 0 {
		p.Investments = 0
	}
	if p.Retirement < 0 {
		p.Retirement = 0
	}
	if p.HomeValue < 0 {
		p.HomeValue = 0
	}
	if p.CarValue < 0 {
		p.CarValue = 0
	}
	if p.Business != nil {
		p.Business.Success = Clamp(p.Business.Success, 0, 100)
		if p.Business.Value < 0 {
			p.Business.Value = 0
		}
	}
	for i := range p.Hobbies {
		p.Hobbies[i].Skill = Clamp(p.Hobbies[i].Skill, 0, 100)
	}
}

// Clamp saturates v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
