package engine

// Teams reach these totals to end the match.
const (
	WinningScore = 500
	LosingScore  = -500
)

// DealOutcome is the result of one completed deal.
type DealOutcome struct {
	ContractorTeam int
	Made           bool
	// Deltas is the score movement for each team.
	Deltas [NumTeams]int
}

// Team returns the team of a seat.
func Team(seat int) int { return seat % NumTeams }

// ScoreDeal scores a completed deal. tricksByPlayer is the number of tricks
// each seat took. The contracting team gains the bid value on success and
// loses it on failure; in trick contracts the opposing team scores ten points
// per trick it took (misère contracts award the opponents nothing).
func ScoreDeal(contract Bid, contractor int, tricksByPlayer [NumPlayers]int) DealOutcome {
	out := DealOutcome{ContractorTeam: Team(contractor)}

	switch contract.Type {
	case BidMisere, BidOpenMisere:
		out.Made = tricksByPlayer[contractor] == 0
	case BidTricks:
		won := 0
		for seat, n := range tricksByPlayer {
			if Team(seat) == out.ContractorTeam {
				won += n
			}
		}
		out.Made = won >= contract.Tricks
	}

	if out.Made {
		out.Deltas[out.ContractorTeam] = contract.Value()
	} else {
		out.Deltas[out.ContractorTeam] = -contract.Value()
	}

	if contract.Type == BidTricks {
		defenders := 1 - out.ContractorTeam
		for seat, n := range tricksByPlayer {
			if Team(seat) == defenders {
				out.Deltas[defenders] += n * 10
			}
		}
	}

	return out
}

// MatchWinner reports whether the match has ended given the updated totals
// and the deal that produced them. A team wins by making a contract that
// takes it to the winning score, or when the other team falls to the losing
// score. Reaching 500 on defender tricks alone does not end the match.
func MatchWinner(totals [NumTeams]int, out DealOutcome) (team int, done bool) {
	if out.Made && totals[out.ContractorTeam] >= WinningScore {
		return out.ContractorTeam, true
	}
	for t := range totals {
		if totals[t] <= LosingScore {
			return 1 - t, true
		}
	}
	return 0, false
}
