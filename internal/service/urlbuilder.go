package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dinushadev/real-estate-agent-sg/internal/model"
)

const listingURLTemplate = "https://www.propertyguru.com.sg/property-for-sale" +
	"?listingType=sale&page=1&isCommercial=false&maxPrice=%s&hdbEstate=1" +
	"&_freetextDisplay=%s&bedrooms=%s&minSize=%s&maxSize=%s&propertyTypeGroup=%s"

// BuildListingURL assembles the single PropertyGuru search URL for the given
// criteria and mapped type-group code. The location is lower-cased; numeric
// filters are interpolated as literal text with no bounds validation.
// Absent optional filters become empty query parameter values rather than
// being omitted, matching what the listing site tolerates.
func BuildListingURL(criteria *model.SearchCriteria, typeGroup string) string {
	return fmt.Sprintf(
		listingURLTemplate,
		strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64),
		strings.ToLower(criteria.City),
		optionalInt(criteria.Bedrooms),
		optionalInt(criteria.MinSize),
		optionalInt(criteria.MaxSize),
		typeGroup,
	)
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
