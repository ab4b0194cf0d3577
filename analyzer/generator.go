package analyzer

import (
	"fmt"
	"math/rand"
	"time"
)

// --- 示例数据生成常量，取自原平台的数据字典 ---

var sampleProviderNames = []string{
	"MetroHealth Medical Center", "Riverside Healthcare", "Summit Medical Group",
	"Valley Health System", "Coastal Family Medicine", "Mountain View Specialists",
	"Downtown Urgent Care", "Northside Hospital", "Lakeside Mental Health",
	"Central OB/GYN Clinic", "Advanced Home Care", "Premier Health Services",
	"Optimal Care Partners", "Elite Home Health", "Comprehensive Care Network",
	"Quality First Healthcare", "Regional Care Providers", "Integrated Health Solutions",
	"Community Care Alliance", "Specialized Home Services", "Unity Health Partners",
	"Excellence in Care", "Advanced Medical Solutions", "Preferred Care Network",
	"Superior Health Services", "Innovative Care Group", "Total Care Solutions",
	"Professional Health Partners", "Dynamic Care Network", "Complete Care Services",
	"Strategic Health Alliance", "Premier Care Solutions", "Advanced Care Network",
	"Integrated Care Partners", "Quality Care Alliance", "Comprehensive Health Group",
	"Optimal Health Solutions", "Excellence Care Network", "Superior Care Partners",
	"Professional Care Group", "Elite Health Services", "Premier Health Alliance",
	"Advanced Care Solutions", "Quality Health Partners", "Comprehensive Care Alliance",
	"Superior Health Network", "Professional Care Solutions", "Elite Care Group",
	"Premier Care Network", "Advanced Health Partners",
}

var sampleStates = []string{
	"NY", "CA", "IL", "TX", "FL", "VA", "PA", "GA", "MA", "OH",
	"MI", "NC", "NJ", "AZ", "WA", "TN", "IN", "MO", "MD", "WI",
}

var sampleCBSAs = []string{
	"New York-Newark-Jersey City, NY-NJ-PA",
	"Los Angeles-Long Beach-Anaheim, CA",
	"Chicago-Naperville-Elgin, IL-IN-WI",
	"Dallas-Fort Worth-Arlington, TX",
	"Houston-The Woodlands-Sugar Land, TX",
	"Washington-Arlington-Alexandria, DC-VA-MD-WV",
	"Miami-Fort Lauderdale-West Palm Beach, FL",
	"Philadelphia-Camden-Wilmington, PA-NJ-DE-MD",
	"Atlanta-Sandy Springs-Roswell, GA",
	"Boston-Cambridge-Newton, MA-NH",
}

var sampleClinicalGroups = []string{
	"Behavioral Health",
	"Wounds",
	"Complex Nursing Interventions",
	"MMTA_Cardiac_and_Circulatory",
	"MMTA_Endocrine",
	"MMTA_Infectious_Disease",
	"Neoplasm_and_Blood_Forming_Diseases",
	"MMTA_Gastrointestinal_Tract_and_Genitourinary_System",
	"MMTA_Respiratory",
	"MMTA_Surgical_Aftercare",
	"Musculoskeletal_Rehabilitation",
	"Neurological_Rehabilitation",
}

var sampleEpisodes = []string{
	"Post-Acute Care", "Chronic Disease Management", "Wound Care",
	"Cardiac Care", "Diabetes Management", "COPD Management",
	"Medication Management", "Rehabilitation",
}

// GenerateProviderData 生成确定性的示例提供方数据集。
// 相同的 seed 产生相同的数据；count 不在 (0, 50] 范围内时生成全部 50 条。
func GenerateProviderData(seed int64, count int) []ProviderRecord {
	if count <= 0 || count > len(sampleProviderNames) {
		count = len(sampleProviderNames)
	}
	r := rand.New(rand.NewSource(seed))
	now := time.Now()

	records := make([]ProviderRecord, 0, count)
	for i := 0; i < count; i++ {
		name := sampleProviderNames[i]

		// 约 70% 的提供方在网络内
		networkStatus := "In-Network"
		if r.Float64() >= 0.7 {
			networkStatus = "Out-of-Network"
		}

		baseQuality := randFloat(r, 3.0, 5.0)
		baseCost := randFloat(r, 250, 1200)

		// 终止价值：绩效越差价值越高
		var terminationValue float64
		switch {
		case baseQuality < 3.5 && baseCost > 800:
			terminationValue = randFloat(r, 500000, 2000000)
		case baseQuality < 4.0 || baseCost > 700:
			terminationValue = randFloat(r, 200000, 800000)
		default:
			terminationValue = randFloat(r, 0, 300000)
		}

		operatingStates := sampleSubset(r, sampleStates, randBetween(r, 1, 5))
		statePerformance := make(map[string]string, len(operatingStates))
		for _, state := range operatingStates {
			statePerformance[state] = pickString(r, []string{"Excellent", "Good", "Poor"})
		}

		episodePerformance := make(map[string]string)
		for _, episode := range sampleSubset(r, sampleEpisodes, randBetween(r, 3, 7)) {
			episodePerformance[episode] = pickString(r, []string{"Leader", "Average", "Needs Improvement"})
		}

		operatingCBSAs := sampleSubset(r, sampleCBSAs, randBetween(r, 1, 3))
		cbsaPerformance := make(map[string]CBSAPerformance, len(operatingCBSAs))
		for _, cbsa := range operatingCBSAs {
			cbsaPerformance[cbsa] = CBSAPerformance{
				MarketShare: randFloat(r, 5, 25),
				QualityRank: randBetween(r, 1, 10),
				CostRank:    randBetween(r, 1, 10),
			}
		}

		// 网络充足性风险由终止价值决定
		adequacyRisk := "Low"
		if terminationValue > 1000000 {
			adequacyRisk = "High"
		} else if terminationValue > 500000 {
			adequacyRisk = "Medium"
		}

		records = append(records, ProviderRecord{
			ProviderID:               fmt.Sprintf("PROV_%03d", i+1),
			Name:                     name,
			NetworkStatus:            networkStatus,
			ClinicalGroup:            pickString(r, sampleClinicalGroups),
			PrimaryCBSA:              pickString(r, operatingCBSAs),
			CostPerUtilizer:          baseCost,
			QualityScore:             baseQuality,
			Utilizers:                randBetween(r, 500, 5000),
			Satisfaction:             randFloat(r, 3.5, 5.0),
			Utilization:              randFloat(r, 0.6, 0.95),
			ContractExpiry:           now.AddDate(0, 0, randBetween(r, 30, 730)).Format("2006-01-02"),
			TerminationValue:         terminationValue,
			OperatingStates:          operatingStates,
			StatePerformance:         statePerformance,
			EpisodePerformance:       episodePerformance,
			CBSAPerformance:          cbsaPerformance,
			MarketPositionPercentile: randFloat(r, 10, 90),
			AdequacyRisk:             adequacyRisk,
			Competitors:              sampleCompetitors(r, i, count),
		})
	}

	return records
}

// sampleCompetitors 抽取 2-5 个其他提供方 ID 作为竞争对手。
func sampleCompetitors(r *rand.Rand, self, total int) []string {
	var pool []string
	for j := 0; j < total; j++ {
		if j != self {
			pool = append(pool, fmt.Sprintf("PROV_%03d", j+1))
		}
	}
	n := randBetween(r, 2, 5)
	if n > len(pool) {
		n = len(pool)
	}
	return sampleSubset(r, pool, n)
}

// sampleSubset 无放回地抽取 n 个元素。
func sampleSubset(r *rand.Rand, list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	subset := make([]string, 0, n)
	for _, idx := range r.Perm(len(list))[:n] {
		subset = append(subset, list[idx])
	}
	return subset
}

func pickString(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

func randBetween(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

func randFloat(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
