package types

// RiskFactors breaks down which evidence contributed to a risk point.
type RiskFactors struct {
	UserReports       int     `json:"userReports"`
	FIRMSData         int     `json:"firmsData"`
	WeatherMultiplier float64 `json:"weatherMultiplier"` // reserved, always 1 for now
}

// RiskPoint is one entry of the aggregate risk map. Scores have no upper cap:
// satellite reinforcement may push a point past 100, unlike the per-report
// verification score.
type RiskPoint struct {
	Lat       float64     `json:"latitude"`
	Long      float64     `json:"longitude"`
	RiskScore float64     `json:"riskScore"`
	Factors   RiskFactors `json:"factors"`
}
