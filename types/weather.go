package types

type FireRisk string

const (
	RiskLow      FireRisk = "low"
	RiskModerate FireRisk = "moderate"
	RiskHigh     FireRisk = "high"
	RiskExtreme  FireRisk = "extreme"
)

// WeatherData is a point-in-time weather snapshot with a derived fire risk level.
type WeatherData struct {
	Temperature   int      `firestore:"temperature" json:"temperature"` // Celsius
	Humidity      int      `firestore:"humidity" json:"humidity"`       // percent
	WindSpeed     int      `firestore:"windSpeed" json:"windSpeed"`     // km/h
	WindDirection string   `firestore:"windDirection" json:"windDirection"`
	FireRisk      FireRisk `firestore:"fireRisk" json:"fireRisk"`
}
