package entity

// Season constants, cycling every 365 days.
const (
	SeasonSpring uint8 = 0
	SeasonSummer uint8 = 1
	SeasonAutumn uint8 = 2
	SeasonWinter uint8 = 3
)

// SeasonName returns a human-readable season name.
func SeasonName(season uint8) string {
	switch season {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// World holds episode-scoped shared state: the day counter, episode bound,
// and the political cycle. NPC records live with the population manager;
// the event log lives with the episode controller.
type World struct {
	Day            int `json:"day"` // 0 before the first step, then 1, 2, ...
	EpisodeLength  int `json:"episode_length"`
	PoliticalCycle int `json:"political_cycle"` // Days until the next election
}

// Season returns the current season, derived from the day counter.
func (w *World) Season() uint8 {
	return uint8(w.Day % 365 / 92)
}

// Year returns the completed simulated years since the episode began.
func (w *World) Year() int {
	return w.Day / 365
}
