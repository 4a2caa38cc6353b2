package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dinushadev/real-estate-agent-sg/internal/model"
	"github.com/dinushadev/real-estate-agent-sg/internal/utils"
)

// Report section headers, in the fixed order the analysis prompt demands
const (
	SectionSelectedProperties = "🏠 SELECTED PROPERTIES"
	SectionBestValueAnalysis  = "💰 BEST VALUE ANALYSIS"
	SectionLocationInsights   = "📍 LOCATION INSIGHTS"
	SectionRecommendations    = "💡 RECOMMENDATIONS"
	SectionNegotiationTips    = "🤝 NEGOTIATION TIPS"
)

// BuildExtractionPrompt produces the instruction string sent to the
// extraction service: a hard cap of 10 and soft floor of 3 records, the hard
// filters restated, and one extra line per present optional filter in a
// stable order (min size, max size, bedrooms).
func BuildExtractionPrompt(criteria *model.SearchCriteria) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Extract ONLY 10 OR LESS different %s %s from %s that cost less than %s SGD.\n",
		criteria.PropertyCategory,
		propertyTypeLabel(criteria.PropertyType),
		criteria.City,
		strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64),
	)
	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "- Property Category: %s properties only\n", criteria.PropertyCategory)
	fmt.Fprintf(&b, "- Property Type: %s only\n", propertyTypeLabel(criteria.PropertyType))
	fmt.Fprintf(&b, "- Location: %s\n", criteria.City)
	fmt.Fprintf(&b, "- Maximum Price: %s SGD\n", strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64))
	b.WriteString("- Include complete property details with exact location\n")
	b.WriteString("- IMPORTANT: Return data for at least 3 different properties. MAXIMUM 10.\n")
	b.WriteString("- Format as a list of properties with their respective details")

	if criteria.MinSize != nil {
		fmt.Fprintf(&b, "\n- Minimum Size: %d sq ft", *criteria.MinSize)
	}
	if criteria.MaxSize != nil {
		fmt.Fprintf(&b, "\n- Maximum Size: %d sq ft", *criteria.MaxSize)
	}
	if criteria.Bedrooms != nil {
		fmt.Fprintf(&b, "\n- Number of Bedrooms: %d", *criteria.Bedrooms)
	}

	return b.String()
}

// BuildAnalysisPrompt embeds the extracted records and the original hard
// constraints into the instruction for the completion service. There is no
// programmatic check that the model honors the instructions; the report is
// taken as-is.
func BuildAnalysisPrompt(criteria *model.SearchCriteria, properties []model.Property) string {
	serialized, err := utils.PrettyPrintJSON(properties)
	if err != nil {
		serialized = "[]"
	}

	maxPrice := strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64)

	return fmt.Sprintf(`As a real estate expert, analyze these properties and market trends:

Properties Found in json format:
%s

**IMPORTANT INSTRUCTIONS:**
1. ONLY analyze properties from the above JSON data that match the user's requirements:
   - Property Category: %s
   - Property Type: %s
   - Maximum Price: %s SGD
2. DO NOT create new categories or property types
3. From the matching properties, select 5-6 properties with prices closest to %s SGD

Please provide your analysis in this format:

%s
• List only 5-6 best matching properties with prices closest to %s SGD
• For each property include:
  - Name and Location
  - Price (with value analysis)
  - Key Features
  - Pros and Cons

%s
• Compare the selected properties based on:
  - Price per sq ft
  - Location advantage
  - Amenities offered

%s
• Specific advantages of the areas where selected properties are located

%s
• Top 3 properties from the selection with reasoning
• Investment potential
• Points to consider before purchase

%s
• Property-specific negotiation strategies

Format your response in a clear, structured way using the above sections.`,
		serialized,
		criteria.PropertyCategory,
		criteria.PropertyType,
		maxPrice,
		maxPrice,
		SectionSelectedProperties,
		maxPrice,
		SectionBestValueAnalysis,
		SectionLocationInsights,
		SectionRecommendations,
		SectionNegotiationTips,
	)
}

// BuildTrendsPrompt produces the extraction instruction for location
// price-trend data points in and around a city
func BuildTrendsPrompt(city string) string {
	return fmt.Sprintf(`Extract price trends data for ALL major areas in %s.

Requirements:
- Include the location name, price per square foot, yearly percent increase and rental yield
- Cover %s itself plus its neighbouring areas
- Return numeric values only for price_per_sqft, percent_increase and rental_yield
- Format as a list of locations with their respective data points`, city, city)
}

// BuildTrendsAnalysisPrompt embeds the trend data points into the narration
// instruction for the completion service
func BuildTrendsAnalysisPrompt(city string, locations []model.LocationTrend) string {
	serialized, err := utils.PrettyPrintJSON(locations)
	if err != nil {
		serialized = "[]"
	}

	return fmt.Sprintf(`As a real estate expert, analyze these location price trends for %s:

%s

Please provide:
1. A bullet-point summary of the price trends for each location
2. Which areas are showing the highest appreciation
3. Which areas offer the best rental yields
4. Investment recommendations based on the data`, city, serialized)
}
