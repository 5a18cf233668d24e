// Package config holds the simulation balance tables and runner settings.
// Every probability and weight the subsystem updates consult lives here,
// so effect directions stay in code while magnitudes stay tunable.
package config

// Balance holds all simulation tuning parameters.
type Balance struct {
	Episode   EpisodeBalance   `yaml:"episode" json:"episode"`
	Health    HealthBalance    `yaml:"health" json:"health"`
	Mental    MentalBalance    `yaml:"mental" json:"mental"`
	Finance   FinanceBalance   `yaml:"finance" json:"finance"`
	Career    CareerBalance    `yaml:"career" json:"career"`
	Education EducationBalance `yaml:"education" json:"education"`
	Social    SocialBalance    `yaml:"social" json:"social"`
	Substance SubstanceBalance `yaml:"substance" json:"substance"`
	Legal     LegalBalance     `yaml:"legal" json:"legal"`
	Disaster  DisasterBalance  `yaml:"disaster" json:"disaster"`
	Lottery   LotteryBalance   `yaml:"lottery" json:"lottery"`
	NPC       NPCBalance       `yaml:"npc" json:"npc"`
	Reward    RewardWeights    `yaml:"reward" json:"reward"`
}

// EpisodeBalance controls episode shape and the starting baseline.
type EpisodeBalance struct {
	LengthDays          int     `yaml:"length_days" json:"length_days"` // 3650–7300
	StartAgeYears       float64 `yaml:"start_age_years" json:"start_age_years"`
	StartMoney          float64 `yaml:"start_money" json:"start_money"`
	StartWeightKg       float64 `yaml:"start_weight_kg" json:"start_weight_kg"`
	HeightM             float64 `yaml:"height_m" json:"height_m"`
	StartEmployedChance float64 `yaml:"start_employed_chance" json:"start_employed_chance"`
	StartMonthlyIncome  float64 `yaml:"start_monthly_income" json:"start_monthly_income"`
	PoliticalCycleDays  int     `yaml:"political_cycle_days" json:"political_cycle_days"`
}

// HealthBalance controls physical health, illness, and mortality.
type HealthBalance struct {
	DailyDrift         float64 `yaml:"daily_drift" json:"daily_drift"` // Baseline decay per day
	IllnessChance      float64 `yaml:"illness_chance" json:"illness_chance"`
	IllnessMinDays     int     `yaml:"illness_min_days" json:"illness_min_days"`
	IllnessMaxDays     int     `yaml:"illness_max_days" json:"illness_max_days"`
	IllnessMinSeverity float64 `yaml:"illness_min_severity" json:"illness_min_severity"`
	IllnessMaxSeverity float64 `yaml:"illness_max_severity" json:"illness_max_severity"`
	ChronicChance      float64 `yaml:"chronic_chance" json:"chronic_chance"` // While sick past 50
	AccidentBase       float64 `yaml:"accident_base" json:"accident_base"`
	ExerciseGain       float64 `yaml:"exercise_gain" json:"exercise_gain"`

	// Age-banded daily mortality: base rate times a band multiplier,
	// further scaled by low health and chronic conditions.
	MortalityBase   float64 `yaml:"mortality_base" json:"mortality_base"`
	InfantMult      float64 `yaml:"infant_mult" json:"infant_mult"`       // Age < 2
	YouthMult       float64 `yaml:"youth_mult" json:"youth_mult"`         // Age < 30
	MiddleMult      float64 `yaml:"middle_mult" json:"middle_mult"`       // Age < 60
	ElderlyMult     float64 `yaml:"elderly_mult" json:"elderly_mult"`     // Age >= 60
	ElderlyPerYear  float64 `yaml:"elderly_per_year" json:"elderly_per_year"` // Added per year past 60
	ChronicMortMult float64 `yaml:"chronic_mort_mult" json:"chronic_mort_mult"` // Per chronic condition
}

// MentalBalance controls mental health, stress, and despair.
type MentalBalance struct {
	StressDecay        float64 `yaml:"stress_decay" json:"stress_decay"` // Passive daily relief
	DespairThreshold   float64 `yaml:"despair_threshold" json:"despair_threshold"`
	DespairStreakDays  int     `yaml:"despair_streak_days" json:"despair_streak_days"`
	DespairDeathChance float64 `yaml:"despair_death_chance" json:"despair_death_chance"`
	TherapyRelief      float64 `yaml:"therapy_relief" json:"therapy_relief"`
	TherapyCost        float64 `yaml:"therapy_cost" json:"therapy_cost"`
	ConditionOnset     float64 `yaml:"condition_onset" json:"condition_onset"` // Daily, under high stress
}

// FinanceBalance controls cash flow, debt, and investments.
type FinanceBalance struct {
	DailyCostMin        float64 `yaml:"daily_cost_min" json:"daily_cost_min"`
	DailyCostMax        float64 `yaml:"daily_cost_max" json:"daily_cost_max"`
	PovertyLine         float64 `yaml:"poverty_line" json:"poverty_line"`
	MonthlyBills        float64 `yaml:"monthly_bills" json:"monthly_bills"`
	DebtMonthlyInterest float64 `yaml:"debt_monthly_interest" json:"debt_monthly_interest"`
	LoanMonthlyInterest float64 `yaml:"loan_monthly_interest" json:"loan_monthly_interest"`
	SaveShare           float64 `yaml:"save_share" json:"save_share"` // Share of cash moved on Save/Invest
	RiskyShare          float64 `yaml:"risky_share" json:"risky_share"`
	WindfallChance      float64 `yaml:"windfall_chance" json:"windfall_chance"`
	WindfallMin         float64 `yaml:"windfall_min" json:"windfall_min"`
	WindfallMax         float64 `yaml:"windfall_max" json:"windfall_max"`
	InheritanceChance   float64 `yaml:"inheritance_chance" json:"inheritance_chance"`
	InheritanceMin      float64 `yaml:"inheritance_min" json:"inheritance_min"`
	InheritanceMax      float64 `yaml:"inheritance_max" json:"inheritance_max"`
}

// CareerBalance controls employment, promotion, and layoff dynamics.
type CareerBalance struct {
	JobFindBase    float64 `yaml:"job_find_base" json:"job_find_base"` // Plus skill bonus
	JobFindSkill   float64 `yaml:"job_find_skill" json:"job_find_skill"` // Per skill point
	PromotionBase  float64 `yaml:"promotion_base" json:"promotion_base"`
	RaiseMin       float64 `yaml:"raise_min" json:"raise_min"`
	RaiseMax       float64 `yaml:"raise_max" json:"raise_max"`
	LayoffChance   float64 `yaml:"layoff_chance" json:"layoff_chance"`
	WorkStress     float64 `yaml:"work_stress" json:"work_stress"`
	StartSalaryMin float64 `yaml:"start_salary_min" json:"start_salary_min"`
	StartSalaryMax float64 `yaml:"start_salary_max" json:"start_salary_max"`
}

// EducationBalance controls study and degrees.
type EducationBalance struct {
	DegreeDays     int     `yaml:"degree_days" json:"degree_days"` // Days of study per level
	TuitionPerDay  float64 `yaml:"tuition_per_day" json:"tuition_per_day"` // Accrues as student loan
	SkillPerDegree float64 `yaml:"skill_per_degree" json:"skill_per_degree"`
	StudySkillGain float64 `yaml:"study_skill_gain" json:"study_skill_gain"`
}

// SocialBalance controls friendships, marriage, and family.
type SocialBalance struct {
	SupportDecay     float64 `yaml:"support_decay" json:"support_decay"`
	SocializeGain    float64 `yaml:"socialize_gain" json:"socialize_gain"`
	SocializeCostMin float64 `yaml:"socialize_cost_min" json:"socialize_cost_min"`
	SocializeCostMax float64 `yaml:"socialize_cost_max" json:"socialize_cost_max"`
	ChildChance      float64 `yaml:"child_chance" json:"child_chance"` // Per family-focus day, married
	DivorceChance    float64 `yaml:"divorce_chance" json:"divorce_chance"` // Daily, at low satisfaction
	DivorceThreshold float64 `yaml:"divorce_threshold" json:"divorce_threshold"`
}

// SubstanceBalance controls dependency escalation and recovery.
type SubstanceBalance struct {
	EscalationChance float64 `yaml:"escalation_chance" json:"escalation_chance"` // Daily, under stress
	EscalationStep   float64 `yaml:"escalation_step" json:"escalation_step"`
	RecoveryStep     float64 `yaml:"recovery_step" json:"recovery_step"`
	RelapseChance    float64 `yaml:"relapse_chance" json:"relapse_chance"`
	AccidentFactor   float64 `yaml:"accident_factor" json:"accident_factor"` // Added accident risk per dependency point
	TreatmentCost    float64 `yaml:"treatment_cost" json:"treatment_cost"`
}

// LegalBalance controls arrests, probation, and incarceration.
type LegalBalance struct {
	ArrestChance     float64 `yaml:"arrest_chance" json:"arrest_chance"` // Daily, heavy dependency
	ArrestThreshold  float64 `yaml:"arrest_threshold" json:"arrest_threshold"` // Dependency level
	SentenceMinDays  int     `yaml:"sentence_min_days" json:"sentence_min_days"`
	SentenceMaxDays  int     `yaml:"sentence_max_days" json:"sentence_max_days"`
	ProbationDays    int     `yaml:"probation_days" json:"probation_days"`
	IncarcerationHit float64 `yaml:"incarceration_hit" json:"incarceration_hit"` // Daily mental drain
}

// DisasterBalance controls rare catastrophic events.
type DisasterBalance struct {
	DailyChance       float64 `yaml:"daily_chance" json:"daily_chance"`
	HomeDamageMin     float64 `yaml:"home_damage_min" json:"home_damage_min"` // Fraction of value
	HomeDamageMax     float64 `yaml:"home_damage_max" json:"home_damage_max"`
	CarDamageChance   float64 `yaml:"car_damage_chance" json:"car_damage_chance"`
	HealthHit         float64 `yaml:"health_hit" json:"health_hit"`
	MentalHit         float64 `yaml:"mental_hit" json:"mental_hit"`
	InsuredMitigation float64 `yaml:"insured_mitigation" json:"insured_mitigation"` // Damage fraction recovered
}

// LotteryBalance controls lottery play and wins.
type LotteryBalance struct {
	PlayChance    float64 `yaml:"play_chance" json:"play_chance"` // Daily baseline
	TicketCost    float64 `yaml:"ticket_cost" json:"ticket_cost"`
	SmallWinOdds  float64 `yaml:"small_win_odds" json:"small_win_odds"` // Given a ticket
	SmallWinMin   float64 `yaml:"small_win_min" json:"small_win_min"`
	SmallWinMax   float64 `yaml:"small_win_max" json:"small_win_max"`
	JackpotOdds   float64 `yaml:"jackpot_odds" json:"jackpot_odds"`
	JackpotMin    float64 `yaml:"jackpot_min" json:"jackpot_min"`
	JackpotMax    float64 `yaml:"jackpot_max" json:"jackpot_max"`
}

// NPCBalance controls the autonomous population.
type NPCBalance struct {
	MinPopulation     int     `yaml:"min_population" json:"min_population"`
	MaxPopulation     int     `yaml:"max_population" json:"max_population"`
	InitialMin        int     `yaml:"initial_min" json:"initial_min"`
	InitialMax        int     `yaml:"initial_max" json:"initial_max"`
	InteractionChance float64 `yaml:"interaction_chance" json:"interaction_chance"` // Per NPC per day
	GriefMentalHit    float64 `yaml:"grief_mental_hit" json:"grief_mental_hit"`
	GriefHappyHit     float64 `yaml:"grief_happy_hit" json:"grief_happy_hit"`
	SpouseGriefMult   float64 `yaml:"spouse_grief_mult" json:"spouse_grief_mult"`
}

// RewardWeights defines the fixed scoring of a daily transition. Weights
// are configuration, not learned, and stay stable across runs.
type RewardWeights struct {
	HealthDelta       float64 `yaml:"health_delta" json:"health_delta"`   // Per point of health change
	MentalDelta       float64 `yaml:"mental_delta" json:"mental_delta"`
	HappinessDelta    float64 `yaml:"happiness_delta" json:"happiness_delta"`
	NetWorthWeight    float64 `yaml:"net_worth_weight" json:"net_worth_weight"` // Applied to tanh(delta/unit)
	NetWorthUnit      float64 `yaml:"net_worth_unit" json:"net_worth_unit"`
	RelationshipDelta float64 `yaml:"relationship_delta" json:"relationship_delta"`
	GoalBonus         float64 `yaml:"goal_bonus" json:"goal_bonus"` // Per goal completed today
	MilestoneBonus    float64 `yaml:"milestone_bonus" json:"milestone_bonus"`
	IncarcerationPen  float64 `yaml:"incarceration_pen" json:"incarceration_pen"` // Per incarcerated day
	AddictionPen      float64 `yaml:"addiction_pen" json:"addiction_pen"` // Per day over threshold
	AddictionLevel    float64 `yaml:"addiction_level" json:"addiction_level"`
	BigDropThreshold  float64 `yaml:"big_drop_threshold" json:"big_drop_threshold"` // Health/happiness points
	BigDropPen        float64 `yaml:"big_drop_pen" json:"big_drop_pen"`
	DeathPenalty      float64 `yaml:"death_penalty" json:"death_penalty"` // Before natural age
	NaturalAgeYears   float64 `yaml:"natural_age_years" json:"natural_age_years"`
	SurvivalBonus     float64 `yaml:"survival_bonus" json:"survival_bonus"` // Reaching the episode bound
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		Episode: EpisodeBalance{
			LengthDays:          3650,
			StartAgeYears:       25,
			StartMoney:          15000,
			StartWeightKg:       75,
			HeightM:             1.75,
			StartEmployedChance: 0.85,
			StartMonthlyIncome:  4500,
			PoliticalCycleDays:  1460,
		},
		Health: HealthBalance{
			DailyDrift:         0.02,
			IllnessChance:      0.04,
			IllnessMinDays:     4,
			IllnessMaxDays:     18,
			IllnessMinSeverity: 4,
			IllnessMaxSeverity: 9,
			ChronicChance:      0.002,
			AccidentBase:       0.002,
			ExerciseGain:       1.2,
			MortalityBase:      0.00002,
			InfantMult:         2.0,
			YouthMult:          0.4,
			MiddleMult:         1.0,
			ElderlyMult:        6.0,
			ElderlyPerYear:     0.6,
			ChronicMortMult:    0.4,
		},
		Mental: MentalBalance{
			StressDecay:        0.8,
			DespairThreshold:   15,
			DespairStreakDays:  8,
			DespairDeathChance: 0.02,
			TherapyRelief:      6,
			TherapyCost:        120,
			ConditionOnset:     0.003,
		},
		Finance: FinanceBalance{
			DailyCostMin:        50,
			DailyCostMax:        90,
			PovertyLine:         500,
			MonthlyBills:        1400,
			DebtMonthlyInterest: 0.08,
			LoanMonthlyInterest: 0.005,
			SaveShare:           0.10,
			RiskyShare:          0.15,
			WindfallChance:      0.04,
			WindfallMin:         300,
			WindfallMax:         1500,
			InheritanceChance:   0.0003,
			InheritanceMin:      5000,
			InheritanceMax:      80000,
		},
		Career: CareerBalance{
			JobFindBase:    0.22,
			JobFindSkill:   0.02,
			PromotionBase:  0.015,
			RaiseMin:       400,
			RaiseMax:       1200,
			LayoffChance:   0.0008,
			WorkStress:     2.5,
			StartSalaryMin: 3800,
			StartSalaryMax: 6800,
		},
		Education: EducationBalance{
			DegreeDays:     540,
			TuitionPerDay:  45,
			SkillPerDegree: 1.0,
			StudySkillGain: 0.01,
		},
		Social: SocialBalance{
			SupportDecay:     0.15,
			SocializeGain:    8,
			SocializeCostMin: 20,
			SocializeCostMax: 80,
			ChildChance:      0.01,
			DivorceChance:    0.004,
			DivorceThreshold: 25,
		},
		Substance: SubstanceBalance{
			EscalationChance: 0.01,
			EscalationStep:   2.0,
			RecoveryStep:     1.5,
			RelapseChance:    0.005,
			AccidentFactor:   0.00004,
			TreatmentCost:    200,
		},
		Legal: LegalBalance{
			ArrestChance:     0.003,
			ArrestThreshold:  60,
			SentenceMinDays:  30,
			SentenceMaxDays:  365,
			ProbationDays:    180,
			IncarcerationHit: 1.5,
		},
		Disaster: DisasterBalance{
			DailyChance:       0.0008,
			HomeDamageMin:     0.2,
			HomeDamageMax:     0.5,
			CarDamageChance:   0.5,
			HealthHit:         10,
			MentalHit:         15,
			InsuredMitigation: 0.6,
		},
		Lottery: LotteryBalance{
			PlayChance:   0.02,
			TicketCost:   5,
			SmallWinOdds: 0.02,
			SmallWinMin:  50,
			SmallWinMax:  2000,
			JackpotOdds:  0.0002,
			JackpotMin:   100000,
			JackpotMax:   5000000,
		},
		NPC: NPCBalance{
			MinPopulation:     10,
			MaxPopulation:     25,
			InitialMin:        12,
			InitialMax:        20,
			InteractionChance: 0.3,
			GriefMentalHit:    12,
			GriefHappyHit:     15,
			SpouseGriefMult:   2.0,
		},
		Reward: RewardWeights{
			HealthDelta:       0.03,
			MentalDelta:       0.03,
			HappinessDelta:    0.04,
			NetWorthWeight:    0.3,
			NetWorthUnit:      2000,
			RelationshipDelta: 0.02,
			GoalBonus:         5,
			MilestoneBonus:    1,
			IncarcerationPen:  2,
			AddictionPen:      0.5,
			AddictionLevel:    50,
			BigDropThreshold:  15,
			BigDropPen:        3,
			DeathPenalty:      100,
			NaturalAgeYears:   70,
			SurvivalBonus:     50,
		},
	}
}

// Gentle returns a forgiving balance for smoke tests and demos.
func Gentle() Balance {
	cfg := Default()
	cfg.Health.IllnessChance = 0.02
	cfg.Health.MortalityBase = 0.00001
	cfg.Mental.DespairDeathChance = 0.005
	cfg.Disaster.DailyChance = 0.0003
	cfg.Finance.WindfallChance = 0.08
	cfg.Career.LayoffChance = 0.0003
	return cfg
}

// Harsh returns a punishing balance for stress-testing policies.
func Harsh() Balance {
	cfg := Default()
	cfg.Health.IllnessChance = 0.06
	cfg.Health.MortalityBase = 0.00004
	cfg.Disaster.DailyChance = 0.002
	cfg.Career.LayoffChance = 0.002
	cfg.Finance.MonthlyBills = 1800
	cfg.Legal.ArrestChance = 0.006
	return cfg
}
