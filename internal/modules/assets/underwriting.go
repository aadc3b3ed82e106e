// README: Deterministic underwriting heuristics for vehicle policies: driver
// age, vehicle age, make/model tier, and South African location risk.
package assets

import (
	"math"
	"strings"
)

// Quote is the underwriting result attached to an asset when it is processed.
type Quote struct {
	RiskScore      float64      `json:"riskScore"`
	RiskLevel      string       `json:"riskLevel"`
	MonthlyPayment int          `json:"monthlyPayment"`
	CoverageAmount int          `json:"coverageAmount"`
	Factors        QuoteFactors `json:"factors"`
}

type QuoteFactors struct {
	DriverAge  int    `json:"driverAge"`
	VehicleAge int    `json:"vehicleAge"`
	Location   string `json:"location"`
	MakeRisk   string `json:"makeRisk"`
	ModelRisk  string `json:"modelRisk"`
}

const (
	baseRiskScore      = 15.0
	baseMonthlyPremium = 850.0  // ZAR
	baseCoverageAmount = 350000 // ZAR
)

var (
	luxuryMakes   = []string{"bmw", "mercedes", "audi", "lexus", "jaguar", "porsche", "maserati", "bentley"}
	premiumMakes  = []string{"volvo", "land rover", "range rover", "infiniti", "acura"}
	popularMakes  = []string{"toyota", "volkswagen", "ford", "nissan"}
	reliableMakes = []string{"hyundai", "kia", "mazda", "subaru", "honda"}
	budgetMakes   = []string{"datsun", "tata", "chery", "geely", "proton"}

	// Frequent hijacking and theft targets.
	highRiskModels = []string{"hilux", "ranger", "polo", "golf", "fortuner", "quantum", "avanza"}
)

type regionRisk struct {
	name       string
	keywords   []string
	riskPoints float64
	multiplier float64
}

// Checked in order; first keyword match wins.
var regionRisks = []regionRisk{
	{"Johannesburg Metro", []string{"johannesburg", "joburg", "jhb", "sandton", "rosebank", "soweto", "alexandra", "randburg"}, 20, 1.35},
	{"Cape Town Metro", []string{"cape town", "capetown", "bellville", "mitchells plain", "khayelitsha", "athlone"}, 18, 1.30},
	{"Durban Metro", []string{"durban", "pinetown", "chatsworth", "phoenix", "umlazi", "pietermaritzburg"}, 16, 1.25},
	{"Pretoria/Tshwane", []string{"pretoria", "tshwane", "centurion", "hatfield"}, 15, 1.22},
	{"Port Elizabeth/Gqeberha", []string{"port elizabeth", "gqeberha", "uitenhage"}, 14, 1.20},
	{"Bloemfontein", []string{"bloemfontein", "mangaung"}, 12, 1.15},
	{"East London", []string{"east london", "buffalo city"}, 11, 1.12},
	{"Garden Route", []string{"george", "knysna", "mossel bay", "plettenberg"}, 8, 1.05},
	{"Mining Region", []string{"rustenburg", "klerksdorp", "potchefstroom", "welkom"}, 13, 1.18},
	{"East Rand", []string{"germiston", "benoni", "springs", "boksburg"}, 16, 1.24},
	{"Vaal Triangle", []string{"vereeniging", "vanderbijlpark", "sasolburg"}, 14, 1.19},
	{"Western Cape Towns", []string{"stellenbosch", "paarl", "worcester", "hermanus"}, 7, 1.03},
	{"Mpumalanga Region", []string{"nelspruit", "mbombela", "white river"}, 9, 1.08},
	{"Limpopo Region", []string{"polokwane", "tzaneen", "thohoyandou"}, 8, 1.06},
	{"Rural Area", []string{"rural", "farm", "village", "small town"}, 5, 0.95},
}

var defaultRegion = regionRisk{name: "Other Urban Area", riskPoints: 10, multiplier: 1.10}

// quoteFor prices an asset. Pure: the same asset and reference year always
// produce the same quote.
func quoteFor(a *Asset, currentYear int) Quote {
	score := baseRiskScore
	premium := baseMonthlyPremium
	coverage := float64(baseCoverageAmount)

	vehicleMake := strings.ToLower(a.Make)
	vehicleModel := strings.ToLower(a.Model)
	age := a.MainDriverAge

	switch {
	case age < 21:
		score += 25
		premium *= 1.4
	case age < 25:
		score += 18
		premium *= 1.25
	case age < 30:
		score += 8
		premium *= 1.1
	case age <= 55:
		score -= 5
		premium *= 0.95
	case age > 65:
		score += 12
		premium *= 1.15
	}

	carAge := currentYear - a.Year
	switch {
	case carAge == 0:
		// Brand new: lower risk but pricier to replace.
		score -= 8
		coverage *= 1.2
		premium *= 1.1
	case carAge <= 3:
		score -= 3
		coverage *= 1.1
	case carAge <= 7:
		score += 2
	case carAge <= 12:
		score += 8
		coverage *= 0.85
	case carAge <= 20:
		score += 15
		coverage *= 0.7
	default:
		score += 25
		coverage *= 0.5
	}

	switch {
	case contains(luxuryMakes, vehicleMake):
		score += 12
		premium *= 1.3
		coverage *= 1.5
	case contains(premiumMakes, vehicleMake):
		score += 8
		premium *= 1.2
		coverage *= 1.3
	case contains(popularMakes, vehicleMake):
		score += 5
		premium *= 1.05
	case contains(reliableMakes, vehicleMake):
		score -= 2
		premium *= 0.98
	case contains(budgetMakes, vehicleMake):
		score -= 5
		premium *= 0.92
		coverage *= 0.8
	}

	modelRisk := "Standard model"
	for _, m := range highRiskModels {
		if strings.Contains(vehicleModel, m) {
			score += 8
			premium *= 1.15
			modelRisk = "High-risk model"
			break
		}
	}

	region := regionFor(a.PrimaryLocation)
	score += region.riskPoints
	premium *= region.multiplier

	if carAge <= 3 && contains([]string{"bmw", "mercedes", "audi", "lexus"}, vehicleMake) {
		coverage = math.Max(coverage, 600000)
	} else if carAge <= 5 && contains([]string{"toyota", "volkswagen"}, vehicleMake) {
		coverage = math.Max(coverage, 400000)
	}

	score = math.Max(5, math.Min(95, score))
	score = math.Round(score*10) / 10

	level := "Critical"
	switch {
	case score <= 20:
		level = "Low"
	case score <= 40:
		level = "Medium"
	case score <= 70:
		level = "High"
	}

	return Quote{
		RiskScore:      score,
		RiskLevel:      level,
		MonthlyPayment: int(math.Round(premium * (1 + score/100))),
		CoverageAmount: int(math.Round(coverage/10000)) * 10000,
		Factors: QuoteFactors{
			DriverAge:  age,
			VehicleAge: carAge,
			Location:   region.name,
			MakeRisk:   makeRiskCategory(vehicleMake),
			ModelRisk:  modelRisk,
		},
	}
}

func regionFor(location string) regionRisk {
	lower := strings.ToLower(location)
	for _, region := range regionRisks {
		for _, kw := range region.keywords {
			if strings.Contains(lower, kw) {
				return region
			}
		}
	}
	return defaultRegion
}

func makeRiskCategory(vehicleMake string) string {
	switch {
	case contains(luxuryMakes, vehicleMake):
		return "Luxury (High Risk)"
	case contains(popularMakes, vehicleMake):
		return "Popular (Moderate Risk)"
	case contains(reliableMakes, vehicleMake):
		return "Reliable (Low Risk)"
	}
	return "Standard Risk"
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
