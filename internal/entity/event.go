package entity

// Event is a structured record of one notable occurrence during a day.
type Event struct {
	Day         int     `json:"day"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Magnitude   float64 `json:"magnitude"`
}

// Event categories. Reward and encoder consumers match on these, so they
// are fixed strings rather than free text.
const (
	CatHealth    = "health"
	CatMental    = "mental"
	CatFinance   = "finance"
	CatCareer    = "career"
	CatEducation = "education"
	CatSocial    = "social"
	CatFamily    = "family"
	CatLegal     = "legal"
	CatAsset     = "asset"
	CatHobby     = "hobby"
	CatPet       = "pet"
	CatBusiness  = "business"
	CatDisaster  = "disaster"
	CatLottery   = "lottery"
	CatFame      = "fame"
	CatCivic     = "civic"
	CatMilestone = "milestone"
	CatDeath     = "death"
	CatNPC       = "npc"
	CatInfo      = "info"
)
