package report

import (
	"math"
	"reflect"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestTotals(t *testing.T) {
	txns := []Transaction{
		{Member: "Bob", Amount: 200, Category: "Food"},
		{Member: "a@x.com", Amount: 50, Category: "Savings"},
	}
	if got := TotalSpent(txns); math.Abs(got-200) > 1e-9 {
		t.Errorf("TotalSpent = %v, want 200", got)
	}
	if got := TotalSaved(txns); math.Abs(got-50) > 1e-9 {
		t.Errorf("TotalSaved = %v, want 50", got)
	}

	// The savings sentinel is matched case-insensitively
	if got := TotalSaved([]Transaction{{Member: "x", Amount: 10, Category: "savings"}}); got != 10 {
		t.Errorf("TotalSaved(lowercase) = %v, want 10", got)
	}
}

func TestContributions(t *testing.T) {
	txns := []Transaction{
		{Member: "Bob", Amount: 150, Category: "Food"},
		{Member: "a@x.com", Amount: 50, Category: "Savings"},
		{Member: "Bob", Amount: 50, Category: "Fuel"},
		{Member: "", Amount: 999, Category: "Food"}, // unlabeled rows are skipped
	}
	got := Contributions(txns)
	want := []Contribution{
		{Member: "Bob", Amount: 200},
		{Member: "a@x.com", Amount: 50},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Contributions = %v, want %v", got, want)
	}
}

func TestGoal(t *testing.T) {
	tests := []struct {
		name string
		w    Wallet
		want float64
	}{
		{"explicit goal", Wallet{Amount: 100, GoalAmount: f(1000)}, 1000},
		{"unset goal falls back to amount", Wallet{Amount: 100}, 100},
		{"non-positive goal falls back to amount", Wallet{Amount: 100, GoalAmount: f(0)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Goal(tt.w); got != tt.want {
				t.Errorf("Goal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapExceeded(t *testing.T) {
	tests := []struct {
		name  string
		w     Wallet
		spent float64
		want  bool
	}{
		{"over the cap", Wallet{CapAmount: f(500)}, 600, true},
		{"exactly on the cap stays fine", Wallet{CapAmount: f(500)}, 500, false},
		{"no cap set", Wallet{}, 10000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapExceeded(tt.w, tt.spent); got != tt.want {
				t.Errorf("CapExceeded = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizeStackedClamp(t *testing.T) {
	// goal 1000, spent 800, saved 500: raw percentages are 80 + 50 = 130,
	// the stacked pair must be scaled to sum to exactly 100
	w := Wallet{GoalAmount: f(1000)}
	txns := []Transaction{
		{Member: "Bob", Amount: 800, Category: "Food"},
		{Member: "Anna", Amount: 500, Category: "Savings"},
	}
	s := Summarize(w, txns, ModeAll)

	if s.SpentPct+s.SavedPct != 100 {
		t.Fatalf("stacked pct sum = %d, want 100", s.SpentPct+s.SavedPct)
	}
	if s.SpentPct != 62 || s.SavedPct != 38 {
		t.Errorf("SpentPct/SavedPct = %d/%d, want 62/38", s.SpentPct, s.SavedPct)
	}
	if s.ProgressPct != 100 {
		t.Errorf("ProgressPct = %d, want 100 (clamped)", s.ProgressPct)
	}
	// The clamp is presentational; totals stay raw
	if s.TotalSpent != 800 || s.TotalSaved != 500 {
		t.Errorf("totals = %v/%v, want 800/500", s.TotalSpent, s.TotalSaved)
	}
}

func TestSummarizeModes(t *testing.T) {
	w := Wallet{GoalAmount: f(1000)}
	txns := []Transaction{
		{Member: "Bob", Amount: 400, Category: "Food"},
		{Member: "Anna", Amount: 300, Category: "Savings"},
	}

	if s := Summarize(w, txns, ModeAll); s.ProgressPct != 70 {
		t.Errorf("ModeAll progress = %d, want 70", s.ProgressPct)
	}
	if s := Summarize(w, txns, ModeSavings); s.ProgressPct != 30 {
		t.Errorf("ModeSavings progress = %d, want 30", s.ProgressPct)
	}
}

func TestSummarizeZeroGoal(t *testing.T) {
	s := Summarize(Wallet{}, []Transaction{{Member: "Bob", Amount: 10, Category: "Food"}}, ModeAll)
	if s.ProgressPct != 0 || s.SpentPct != 0 || s.SavedPct != 0 {
		t.Errorf("zero goal percentages = %d/%d/%d, want 0/0/0", s.ProgressPct, s.SpentPct, s.SavedPct)
	}
	if s.TotalSpent != 10 {
		t.Errorf("TotalSpent = %v, want 10", s.TotalSpent)
	}
}

func TestSummarizeScenario(t *testing.T) {
	// Shared-wallet scenario: two members, one savings contribution
	w := Wallet{Amount: 0, CapAmount: f(100)}
	txns := []Transaction{
		{Member: "Bob", Amount: 200, Category: "Food"},
		{Member: "a@x.com", Amount: 50, Category: "Savings"},
	}
	s := Summarize(w, txns, ModeAll)

	if s.TotalSpent != 200 || s.TotalSaved != 50 {
		t.Errorf("totals = %v/%v, want 200/50", s.TotalSpent, s.TotalSaved)
	}
	if !s.CapExceeded {
		t.Error("CapExceeded = false, want true (200 > 100)")
	}
	want := []Contribution{{Member: "Bob", Amount: 200}, {Member: "a@x.com", Amount: 50}}
	if !reflect.DeepEqual(s.Contributions, want) {
		t.Errorf("Contributions = %v, want %v", s.Contributions, want)
	}
}
