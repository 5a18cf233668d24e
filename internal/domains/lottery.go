package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateLottery draws occasional lottery play. Risk-seeking days raise the
// odds of buying a ticket; the ticket itself almost never pays.
func updateLottery(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Lottery

	play := bal.PlayChance
	if c.Act == entity.ActRiskyInvest {
		play *= 5
	}
	if p.Incarcerated || p.Money < bal.TicketCost || !c.RNG.Chance(play) {
		return nil
	}

	p.ApplyCash(-bal.TicketCost)

	switch {
	case c.RNG.Chance(bal.JackpotOdds):
		win := c.RNG.Range(bal.JackpotMin, bal.JackpotMax)
		p.ApplyCash(win)
		p.Happiness += 40
		p.Fame += 20
		p.Clamp()
		return []entity.Event{c.event(entity.CatLottery, fmt.Sprintf("won the lottery jackpot: $%.0f", win), 50)}
	case c.RNG.Chance(bal.SmallWinOdds):
		win := c.RNG.Range(bal.SmallWinMin, bal.SmallWinMax)
		p.ApplyCash(win)
		p.Happiness += 10
		p.Clamp()
		return []entity.Event{c.event(entity.CatLottery, fmt.Sprintf("won $%.0f on a scratch ticket", win), 5)}
	}
	return nil
}
