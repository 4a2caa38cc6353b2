package model

// JSON-schema descriptors passed to the extraction service. These document
// the expected response shape; the service does the actual parsing remotely.

// PropertiesSchema describes a response carrying a list of properties
func PropertiesSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"properties": map[string]any{
				"type":        "array",
				"description": "List of property details",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"building_name": map[string]any{
							"type":        "string",
							"description": "Name of the building/property",
						},
						"property_type": map[string]any{
							"type":        "string",
							"description": "Type of property (commercial, residential, etc)",
						},
						"location_address": map[string]any{
							"type":        "string",
							"description": "Complete address of the property",
						},
						"price": map[string]any{
							"type":        "string",
							"description": "Price of the property",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Detailed description of the property",
						},
					},
					"required": []string{"building_name", "property_type", "location_address", "price", "description"},
				},
			},
		},
		"required": []string{"properties"},
	}
}

// LocationsSchema describes a response carrying location price-trend points
func LocationsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"locations": map[string]any{
				"type":        "array",
				"description": "List of location data points",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"location":         map[string]any{"type": "string"},
						"price_per_sqft":   map[string]any{"type": "number"},
						"percent_increase": map[string]any{"type": "number"},
						"rental_yield":     map[string]any{"type": "number"},
					},
					"required": []string{"location", "price_per_sqft", "percent_increase", "rental_yield"},
				},
			},
		},
		"required": []string{"locations"},
	}
}
