package model

// PropertyCategory is the top-level market segment on PropertyGuru
type PropertyCategory string

const (
	CategoryResidential PropertyCategory = "Residential"
	CategoryCommercial  PropertyCategory = "Commercial"
)

// PropertyType is the residential sub-type. It is only meaningful when
// the category is Residential.
type PropertyType string

const (
	TypeHDB    PropertyType = "HDB"
	TypeCondo  PropertyType = "Condo"
	TypeLanded PropertyType = "Landed"
)

// SearchCriteria represents a property search request
//
// MinSize <= MaxSize when both are set is an assumed precondition; the
// pipeline interpolates both values as-is and relies on the caller to
// order them.
type SearchCriteria struct {
	City             string           `json:"city" binding:"required"`
	MaxPrice         float64          `json:"max_price" binding:"required,gt=0"`
	PropertyCategory PropertyCategory `json:"property_category" binding:"required"`
	PropertyType     PropertyType     `json:"property_type,omitempty"`
	MinSize          *int             `json:"min_size,omitempty"` // sq ft
	MaxSize          *int             `json:"max_size,omitempty"` // sq ft
	Bedrooms         *int             `json:"bedrooms,omitempty"`
}

// SearchReport is the result of one complete search invocation
type SearchReport struct {
	SearchID   string        `json:"search_id"`
	Report     string        `json:"report"`
	Properties []Property    `json:"properties"`
	Extraction ExtractStatus `json:"extraction_status"`
	Took       int64         `json:"took_ms"`
}

// TrendsReport is the result of a location trend analysis
type TrendsReport struct {
	SearchID   string          `json:"search_id"`
	City       string          `json:"city"`
	Report     string          `json:"report"`
	Locations  []LocationTrend `json:"locations"`
	Extraction ExtractStatus   `json:"extraction_status"`
	Took       int64           `json:"took_ms"`
}
