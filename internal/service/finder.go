package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dinushadev/real-estate-agent-sg/internal/model"
	"github.com/dinushadev/real-estate-agent-sg/internal/utils"
)

// trendsSourceURL is the listing source scraped for location price trends
const trendsSourceURL = "https://www.99.co/singapore/sale"

// PropertyFinder runs the two-stage search pipeline: extract listings from
// the listing site through the Firecrawl API, then narrate them into a
// report through the completion API. One search is one linear invocation;
// nothing is persisted between calls.
type PropertyFinder struct {
	firecrawl *FirecrawlClient
	ai        *OpenAIClient
}

// NewPropertyFinder creates a new property finder service
func NewPropertyFinder(firecrawl *FirecrawlClient, ai *OpenAIClient) *PropertyFinder {
	return &PropertyFinder{
		firecrawl: firecrawl,
		ai:        ai,
	}
}

// FindProperties runs a complete search for the given criteria and returns
// the formatted report. A degraded or failed extraction still produces a
// report over an empty record set; only mapper and completion errors abort
// the search.
func (f *PropertyFinder) FindProperties(ctx context.Context, criteria *model.SearchCriteria) (*model.SearchReport, error) {
	startTime := time.Now()

	typeGroup, err := PropertyTypeGroup(criteria.PropertyCategory, criteria.PropertyType)
	if err != nil {
		return nil, err
	}

	url := BuildListingURL(criteria, typeGroup)
	log.Printf("🔍 Searching listings: %s", url)

	outcome := f.extractProperties(ctx, []string{url}, BuildExtractionPrompt(criteria))
	log.Printf("📋 Extraction %s: %d properties", outcome.Status, len(outcome.Properties))

	resp, err := f.ai.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: agentDescription},
			{Role: "user", Content: BuildAnalysisPrompt(criteria, outcome.Properties)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("property analysis failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from completion service")
	}

	return &model.SearchReport{
		SearchID:   uuid.NewString(),
		Report:     resp.Choices[0].Message.Content,
		Properties: outcome.Properties,
		Extraction: outcome.Status,
		Took:       time.Since(startTime).Milliseconds(),
	}, nil
}

// FindPropertiesStream runs the same pipeline but streams the report tokens
// through the callback as they arrive from the completion service. The
// callback receives (thinkingContent, reportContent) per chunk.
func (f *PropertyFinder) FindPropertiesStream(
	ctx context.Context,
	criteria *model.SearchCriteria,
	callback func(thinking, content string) error,
) (*model.SearchReport, error) {
	startTime := time.Now()

	typeGroup, err := PropertyTypeGroup(criteria.PropertyCategory, criteria.PropertyType)
	if err != nil {
		return nil, err
	}

	url := BuildListingURL(criteria, typeGroup)
	log.Printf("🔍 Searching listings: %s", url)

	outcome := f.extractProperties(ctx, []string{url}, BuildExtractionPrompt(criteria))
	log.Printf("📋 Extraction %s: %d properties", outcome.Status, len(outcome.Properties))

	var report strings.Builder
	err = f.ai.ChatCompletionStream(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: agentDescription},
			{Role: "user", Content: BuildAnalysisPrompt(criteria, outcome.Properties)},
		},
	}, func(chunk *StreamChunk) error {
		if chunk.ThinkingContent != "" {
			if err := callback(chunk.ThinkingContent, ""); err != nil {
				return err
			}
		}
		if chunk.Content != "" {
			report.WriteString(chunk.Content)
			if err := callback("", chunk.Content); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("property analysis failed: %w", err)
	}

	return &model.SearchReport{
		SearchID:   uuid.NewString(),
		Report:     report.String(),
		Properties: outcome.Properties,
		Extraction: outcome.Status,
		Took:       time.Since(startTime).Milliseconds(),
	}, nil
}

// GetLocationTrends extracts price-trend data points for a city and narrates
// them into an analysis
func (f *PropertyFinder) GetLocationTrends(ctx context.Context, city string) (*model.TrendsReport, error) {
	startTime := time.Now()

	outcome, locations := f.extractLocations(ctx, []string{trendsSourceURL}, BuildTrendsPrompt(city))
	log.Printf("📈 Trend extraction %s: %d locations", outcome, len(locations))

	resp, err := f.ai.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: agentDescription},
			{Role: "user", Content: BuildTrendsAnalysisPrompt(city, locations)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("trend analysis failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from completion service")
	}

	return &model.TrendsReport{
		SearchID:   uuid.NewString(),
		City:       city,
		Report:     resp.Choices[0].Message.Content,
		Locations:  locations,
		Extraction: outcome,
		Took:       time.Since(startTime).Milliseconds(),
	}, nil
}

// agentDescription frames the model's persona for every completion call
const agentDescription = "I am a real estate expert who helps find and analyze properties based on user preferences."

// extractProperties calls the extraction service and normalizes the envelope
// into a tagged outcome. The record set is empty unless the service reported
// success and returned the properties collection.
func (f *PropertyFinder) extractProperties(ctx context.Context, urls []string, prompt string) model.ExtractionOutcome {
	resp, err := f.firecrawl.Extract(ctx, ExtractRequest{
		URLs:   urls,
		Prompt: prompt,
		Schema: model.PropertiesSchema(),
	})
	if err != nil {
		log.Printf("⚠️  Extraction call failed: %v", err)
		return model.ExtractionOutcome{
			Status:     model.ExtractFailed,
			Properties: []model.Property{},
			Reason:     err.Error(),
		}
	}

	if !resp.Success {
		return model.ExtractionOutcome{
			Status:     model.ExtractDegraded,
			Properties: []model.Property{},
			Reason:     fmt.Sprintf("extraction service reported failure (status: %s)", resp.Status),
		}
	}

	var payload struct {
		Properties []model.Property `json:"properties"`
	}
	if err := utils.DecodeLooseJSON(string(resp.Data), &payload); err != nil || payload.Properties == nil {
		return model.ExtractionOutcome{
			Status:     model.ExtractDegraded,
			Properties: []model.Property{},
			Reason:     "envelope is missing the properties collection",
		}
	}

	return model.ExtractionOutcome{
		Status:     model.ExtractOK,
		Properties: payload.Properties,
	}
}

// extractLocations is the trend-data counterpart of extractProperties
func (f *PropertyFinder) extractLocations(ctx context.Context, urls []string, prompt string) (model.ExtractStatus, []model.LocationTrend) {
	resp, err := f.firecrawl.Extract(ctx, ExtractRequest{
		URLs:   urls,
		Prompt: prompt,
		Schema: model.LocationsSchema(),
	})
	if err != nil {
		log.Printf("⚠️  Trend extraction call failed: %v", err)
		return model.ExtractFailed, []model.LocationTrend{}
	}

	if !resp.Success {
		return model.ExtractDegraded, []model.LocationTrend{}
	}

	var payload struct {
		Locations []model.LocationTrend `json:"locations"`
	}
	if err := utils.DecodeLooseJSON(string(resp.Data), &payload); err != nil || payload.Locations == nil {
		return model.ExtractDegraded, []model.LocationTrend{}
	}

	return model.ExtractOK, payload.Locations
}
