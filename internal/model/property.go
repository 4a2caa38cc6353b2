package model

// Property represents a single extracted listing. All fields are free-form
// text as returned by the extraction service; price in particular is not
// guaranteed to be numeric ("$495,000", "POA", ...).
type Property struct {
	BuildingName    string `json:"building_name"`
	PropertyType    string `json:"property_type"`
	LocationAddress string `json:"location_address"`
	Price           string `json:"price"`
	Description     string `json:"description"`
}

// LocationTrend represents one location price-trend data point
type LocationTrend struct {
	Location        string  `json:"location"`
	PricePerSqft    float64 `json:"price_per_sqft"`
	PercentIncrease float64 `json:"percent_increase"`
	RentalYield     float64 `json:"rental_yield"`
}

// ExtractStatus distinguishes the three ways an extraction call can end.
// A Degraded or Failed extraction still flows into summarization with an
// empty record set; the status lets the presentation layer tell
// "no matching properties" apart from "service call failed".
type ExtractStatus string

const (
	ExtractOK       ExtractStatus = "ok"
	ExtractDegraded ExtractStatus = "degraded"
	ExtractFailed   ExtractStatus = "failed"
)

// ExtractionOutcome is the normalized result of one extraction call
type ExtractionOutcome struct {
	Status     ExtractStatus `json:"status"`
	Properties []Property    `json:"properties"`
	Reason     string        `json:"reason,omitempty"`
}
