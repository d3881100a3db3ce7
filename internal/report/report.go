// Package report turns a wallet's transaction list into the figures members
// see: spent/saved totals, per-member contributions, goal progress and cap
// state. Everything is recomputed from the full ledger on every call; no
// incremental counters are kept anywhere.
package report

import (
	"math"
	"sort"
	"strings"
)

// SavingsCategory is the sentinel category separating saved money from
// spending. Matched case-insensitively.
const SavingsCategory = "Savings"

// AllCategories is the sentinel entry in a wallet's category list meaning
// every category is allowed.
const AllCategories = "*"

// Mode selects which transactions count toward goal progress.
type Mode string

const (
	// ModeAll counts spending and savings toward the goal.
	ModeAll Mode = "all"
	// ModeSavings counts only savings toward the goal.
	ModeSavings Mode = "savings"
)

// Transaction is the slice of a ledger row the aggregator needs.
type Transaction struct {
	Member   string
	Amount   float64
	Category string
}

// Contribution is one member's summed contribution.
type Contribution struct {
	Member string  `json:"member"`
	Amount float64 `json:"amount"`
}

// Wallet is the slice of a wallet record the aggregator needs.
type Wallet struct {
	Amount     float64
	GoalAmount *float64
	CapAmount  *float64
}

// Summary is the full aggregate for one wallet.
type Summary struct {
	TotalSpent    float64        `json:"totalSpent"`
	TotalSaved    float64        `json:"totalSaved"`
	GoalAmount    float64        `json:"goalAmount"`
	ProgressPct   int            `json:"progressPct"`
	SpentPct      int            `json:"spentPct"`
	SavedPct      int            `json:"savedPct"`
	CapAmount     *float64       `json:"capAmount"`
	CapExceeded   bool           `json:"capExceeded"`
	Contributions []Contribution `json:"contributions"`
}

// TotalSpent sums every transaction outside the savings sentinel category.
func TotalSpent(txns []Transaction) float64 {
	var sum float64
	for _, txn := range txns {
		if !isSavings(txn.Category) {
			sum += txn.Amount
		}
	}
	return sum
}

// TotalSaved sums every transaction in the savings sentinel category.
func TotalSaved(txns []Transaction) float64 {
	var sum float64
	for _, txn := range txns {
		if isSavings(txn.Category) {
			sum += txn.Amount
		}
	}
	return sum
}

// Contributions maps member label to summed amount, sorted by amount
// descending with ties broken by label so the order is stable.
func Contributions(txns []Transaction) []Contribution {
	totals := make(map[string]float64)
	for _, txn := range txns {
		if txn.Member == "" {
			continue
		}
		totals[txn.Member] += txn.Amount
	}
	out := make([]Contribution, 0, len(totals))
	for member, amount := range totals {
		out = append(out, Contribution{Member: member, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Member < out[j].Member
	})
	return out
}

// Goal returns the effective goal: GoalAmount when set and positive,
// otherwise the wallet's seed amount.
func Goal(w Wallet) float64 {
	if w.GoalAmount != nil && *w.GoalAmount > 0 {
		return *w.GoalAmount
	}
	return w.Amount
}

// CapExceeded reports whether spending passed the cap. Strictly greater:
// landing exactly on the cap is still fine. A cap never blocks writes, it
// only flags the wallet.
func CapExceeded(w Wallet, totalSpent float64) bool {
	return w.CapAmount != nil && *w.CapAmount > 0 && totalSpent > *w.CapAmount
}

// Summarize computes the full aggregate for a wallet and its ledger.
func Summarize(w Wallet, txns []Transaction, mode Mode) Summary {
	spent := TotalSpent(txns)
	saved := TotalSaved(txns)
	goal := Goal(w)

	s := Summary{
		TotalSpent:    spent,
		TotalSaved:    saved,
		GoalAmount:    goal,
		CapAmount:     w.CapAmount,
		CapExceeded:   CapExceeded(w, spent),
		Contributions: Contributions(txns),
	}
	if goal <= 0 {
		return s
	}

	s.SpentPct = pct(spent, goal)
	s.SavedPct = pct(saved, goal)
	switch mode {
	case ModeSavings:
		s.ProgressPct = min100(pct(saved, goal))
	default:
		s.ProgressPct = min100(pct(spent+saved, goal))
	}

	// When spent% and saved% together pass 100 the stacked bar would
	// overflow, so both are scaled down proportionally. Presentation only;
	// the totals above stay untouched.
	if sum := s.SpentPct + s.SavedPct; sum > 100 {
		s.SpentPct = int(math.Round(float64(s.SpentPct) * 100 / float64(sum)))
		s.SavedPct = 100 - s.SpentPct
	}
	return s
}

func pct(part, whole float64) int {
	return int(math.Round(part / whole * 100))
}

func min100(v int) int {
	if v > 100 {
		return 100
	}
	return v
}

func isSavings(category string) bool {
	return strings.EqualFold(category, SavingsCategory)
}
