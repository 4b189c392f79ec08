package types

type FIRMSSource string

const (
	SourceVIIRS FIRMSSource = "VIIRS"
	SourceMODIS FIRMSSource = "MODIS"
)

// FIRMSPoint is a satellite-detected thermal hotspot. Points are fetched fresh
// per request and never persisted.
type FIRMSPoint struct {
	ID         string      `json:"id"`
	Lat        float64     `json:"latitude"`
	Long       float64     `json:"longitude"`
	Confidence float64     `json:"confidence"` // normalized to 0-100 regardless of source encoding
	Brightness float64     `json:"brightness,omitempty"`
	FRP        float64     `json:"frp,omitempty"` // fire radiative power
	Source     FIRMSSource `json:"source"`
	AcqDate    string      `json:"acqDate"` // YYYY-MM-DD
	AcqTime    string      `json:"acqTime"` // HHMM
	Satellite  string      `json:"satellite,omitempty"`  // e.g. NOAA-20, Aqua
	Instrument string      `json:"instrument,omitempty"` // VIIRS or MODIS
}
