package service

import (
	"strings"
	"testing"

	"github.com/dinushadev/real-estate-agent-sg/internal/model"
)

func TestBuildListingURL_NoOptionalFilters(t *testing.T) {
	criteria := &model.SearchCriteria{
		City:             "Punggol",
		MaxPrice:         500000,
		PropertyCategory: model.CategoryResidential,
		PropertyType:     model.TypeHDB,
	}

	got := BuildListingURL(criteria, "H")

	want := "https://www.propertyguru.com.sg/property-for-sale" +
		"?listingType=sale&page=1&isCommercial=false&maxPrice=500000&hdbEstate=1" +
		"&_freetextDisplay=punggol&bedrooms=&minSize=&maxSize=&propertyTypeGroup=H"
	if got != want {
		t.Errorf("BuildListingURL() = %q, want %q", got, want)
	}
}

func TestBuildListingURL_AllFilters(t *testing.T) {
	criteria := &model.SearchCriteria{
		City:             "Bukit Timah",
		MaxPrice:         2500000,
		PropertyCategory: model.CategoryResidential,
		PropertyType:     model.TypeCondo,
		MinSize:          intPtr(800),
		MaxSize:          intPtr(1200),
		Bedrooms:         intPtr(3),
	}

	got := BuildListingURL(criteria, "N")

	for _, substr := range []string{
		"_freetextDisplay=bukit timah",
		"maxPrice=2500000",
		"bedrooms=3",
		"minSize=800",
		"maxSize=1200",
		"propertyTypeGroup=N",
	} {
		if !strings.Contains(got, substr) {
			t.Errorf("BuildListingURL() = %q, missing %q", got, substr)
		}
	}
}

func TestBuildListingURL_LowercasesLocation(t *testing.T) {
	criteria := &model.SearchCriteria{
		City:             "PUNGGOL",
		MaxPrice:         500000,
		PropertyCategory: model.CategoryResidential,
		PropertyType:     model.TypeHDB,
	}

	got := BuildListingURL(criteria, "H")
	if !strings.Contains(got, "_freetextDisplay=punggol") {
		t.Errorf("BuildListingURL() = %q, location was not lower-cased", got)
	}
}

func TestBuildListingURL_FractionalPrice(t *testing.T) {
	criteria := &model.SearchCriteria{
		City:             "Bedok",
		MaxPrice:         499999.5,
		PropertyCategory: model.CategoryResidential,
		PropertyType:     model.TypeHDB,
	}

	got := BuildListingURL(criteria, "H")
	if !strings.Contains(got, "maxPrice=499999.5") {
		t.Errorf("BuildListingURL() = %q, price not rendered as literal numeric text", got)
	}
}

func intPtr(v int) *int {
	return &v
}
