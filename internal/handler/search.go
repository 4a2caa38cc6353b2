package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dinushadev/real-estate-agent-sg/internal/model"
	"github.com/dinushadev/real-estate-agent-sg/internal/service"
)

// SearchHandler handles property search HTTP requests
type SearchHandler struct {
	finder *service.PropertyFinder
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(finder *service.PropertyFinder) *SearchHandler {
	return &SearchHandler{finder: finder}
}

// Search handles POST /api/v1/properties/search
func (h *SearchHandler) Search(c *gin.Context) {
	var criteria model.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	report, err := h.finder.FindProperties(c.Request.Context(), &criteria)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// SearchStream handles POST /api/v1/properties/search/stream - SSE streaming search
func (h *SearchHandler) SearchStream(c *gin.Context) {
	var criteria model.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	sendSSE(c, "start", map[string]any{"city": criteria.City})
	flusher.Flush()

	report, err := h.finder.FindPropertiesStream(c.Request.Context(), &criteria, func(thinking, content string) error {
		if thinking != "" {
			sendSSE(c, "thinking", map[string]any{"content": thinking})
		}
		if content != "" {
			sendSSE(c, "report", map[string]any{"content": content})
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
		return
	}

	sendSSE(c, "results", report)
	flusher.Flush()

	sendSSE(c, "done", nil)
	flusher.Flush()
}

// LocationTrends handles GET /api/v1/locations/trends?city=
func (h *SearchHandler) LocationTrends(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	report, err := h.finder.GetLocationTrends(c.Request.Context(), city)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Trend analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// statusForError maps pipeline errors to HTTP statuses: a bad category is
// the caller's fault, a disabled client is a deployment problem, anything
// else is a remote service failure.
func statusForError(err error) int {
	if errors.Is(err, service.ErrInvalidCategory) {
		return http.StatusBadRequest
	}
	if strings.Contains(err.Error(), "not enabled") {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
			return
		}
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
	} else {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
	}
}
