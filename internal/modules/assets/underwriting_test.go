// README: Underwriting and policy issuance tests.
package assets

import (
	"testing"
	"time"
)

func sampleAsset() *Asset {
	return &Asset{
		Make:            "Toyota",
		Model:           "Hilux",
		Year:            2020,
		PrimaryLocation: "Johannesburg",
		MainDriverAge:   35,
	}
}

func TestQuoteFor_Deterministic(t *testing.T) {
	a := sampleAsset()
	first := quoteFor(a, 2026)
	second := quoteFor(a, 2026)
	if first != second {
		t.Errorf("quoteFor() not deterministic: %+v vs %+v", first, second)
	}
}

func TestQuoteFor_BoundsAndLevel(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Asset)
		wantLevel string
	}{
		{
			"worst case stays within bounds",
			func(a *Asset) {
				a.Make = "BMW"
				a.Model = "Golf GTI"
				a.Year = 2000
				a.MainDriverAge = 19
			},
			"Critical",
		},
		{
			"safe profile in rural area",
			func(a *Asset) {
				a.Make = "Hyundai"
				a.Model = "i20"
				a.Year = 2025
				a.MainDriverAge = 40
				a.PrimaryLocation = "farm near Clarens"
			},
			"Low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleAsset()
			tt.mutate(a)
			q := quoteFor(a, 2026)
			if q.RiskScore < 5 || q.RiskScore > 95 {
				t.Errorf("risk score %v outside [5,95]", q.RiskScore)
			}
			if q.RiskLevel != tt.wantLevel {
				t.Errorf("risk level = %q, want %q (score %v)", q.RiskLevel, tt.wantLevel, q.RiskScore)
			}
			if q.MonthlyPayment <= 0 {
				t.Errorf("monthly payment = %d, want positive", q.MonthlyPayment)
			}
			if q.CoverageAmount%10000 != 0 {
				t.Errorf("coverage %d not rounded to nearest 10k", q.CoverageAmount)
			}
		})
	}
}

func TestQuoteFor_HighRiskFactors(t *testing.T) {
	a := sampleAsset()
	q := quoteFor(a, 2026)

	if q.Factors.Location != "Johannesburg Metro" {
		t.Errorf("location = %q, want Johannesburg Metro", q.Factors.Location)
	}
	if q.Factors.ModelRisk != "High-risk model" {
		t.Errorf("model risk = %q, want High-risk model for a Hilux", q.Factors.ModelRisk)
	}
	if q.Factors.MakeRisk != "Popular (Moderate Risk)" {
		t.Errorf("make risk = %q, want Popular (Moderate Risk)", q.Factors.MakeRisk)
	}

	remote := sampleAsset()
	remote.PrimaryLocation = "small town in the Karoo"
	if rq := quoteFor(remote, 2026); rq.RiskScore >= q.RiskScore {
		t.Errorf("rural score %v should be below metro score %v", rq.RiskScore, q.RiskScore)
	}
}

func TestRegionFor_UnknownLocation(t *testing.T) {
	if got := regionFor("Windhoek"); got.name != "Other Urban Area" {
		t.Errorf("regionFor(Windhoek) = %q, want Other Urban Area", got.name)
	}
}

func TestFormatPolicyNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int64
		want string
	}{
		{2026, 42, "INS-2026-000042"},
		{2026, 123456, "INS-2026-123456"},
		{2025, 1756640000123, "INS-2025-000123"}, // timestamp fallback keeps last six digits
	}
	for _, tt := range tests {
		if got := formatPolicyNumber(tt.year, tt.seq); got != tt.want {
			t.Errorf("formatPolicyNumber(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestItemName(t *testing.T) {
	if got := itemName(2020, "Toyota", "Hilux"); got != "2020 Toyota Hilux" {
		t.Errorf("itemName() = %q, want 2020 Toyota Hilux", got)
	}
}

func TestSummarize(t *testing.T) {
	now := time.Now().UTC()
	list := []Asset{
		{Status: StatusActive, MonthlyPayment: 1200, RiskLevel: "High", CreatedAt: now},
		{Status: StatusActive, MonthlyPayment: 800, RiskLevel: "Low", CreatedAt: now},
		{Status: StatusPending, CreatedAt: now},
		{Status: StatusCancelled, RiskLevel: "Medium", CreatedAt: now},
	}

	got := summarize(list)
	if got.TotalAssets != 4 || got.ActiveAssets != 2 || got.PendingAssets != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/2/1", got.TotalAssets, got.ActiveAssets, got.PendingAssets)
	}
	if got.TotalMonthlyPremium != 2000 {
		t.Errorf("premium total = %d, want 2000 (active policies only)", got.TotalMonthlyPremium)
	}
	if got.RiskDistribution["High"] != 1 || got.RiskDistribution["Low"] != 1 || got.RiskDistribution["Medium"] != 1 {
		t.Errorf("risk distribution = %v", got.RiskDistribution)
	}
	if got.RiskDistribution["Critical"] != 0 {
		t.Errorf("critical count = %d, want 0", got.RiskDistribution["Critical"])
	}
}
