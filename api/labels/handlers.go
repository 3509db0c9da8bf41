package labels

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// Create stores a labeled (text, label) pair
// @Summary      Submit a label
// @Description  Validate and append one labeled text entry to the training data. When sentence_id is set, the sentence is also marked used.
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        label body types.LabelRequest true "Text and label"
// @Success      201 {object} types.LabelResponse "Stored entry"
// @Failure      400 {object} types.ErrorResponse "Missing field or unknown label"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LabelRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		entry, err := deps.Labels.Append(c.Request.Context(), req.Text, req.Label)
		if err != nil {
			types.SendError(c, err)
			return
		}

		// Consuming the sentence is best effort; the label is already stored
		if req.SentenceID != nil {
			if err := deps.Pipeline.MarkUsed(c.Request.Context(), *req.SentenceID); err != nil {
				log.Printf("[WARN] Label stored but marking sentence %d used failed: %v", *req.SentenceID, err)
			}
		}

		types.SendCreated(c, types.LabelResponse{
			Success:   true,
			Text:      entry.Text,
			Label:     entry.Label,
			Timestamp: time.Now().UTC(),
		})
	}
}

// Clear deletes all training data
// @Summary      Clear all labels
// @Description  Delete every labeled entry. Admin only.
// @Tags         labels
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.SuccessResponse "All entries removed"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels [delete]
func Clear(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Labels.Clear(c.Request.Context()); err != nil {
			log.Printf("[ERROR] Clearing labels failed: %v", err)
			types.SendError(c, err)
			return
		}

		log.Printf("Cleared all labeled entries")
		types.SendSuccess(c, types.SuccessResponse{Success: true, Message: "All labeled entries removed"})
	}
}

// Delete removes one labeled entry by ID
// @Summary      Delete a label
// @Description  Delete a single labeled entry. Admin only. Not supported on blob backends.
// @Tags         labels
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Entry ID"
// @Success      200 {object} types.SuccessResponse "Entry removed"
// @Failure      400 {object} types.ErrorResponse "Invalid entry ID"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} types.ErrorResponse "Entry not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.Labels.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.SuccessResponse{Success: true, Message: "Labeled entry removed"})
	}
}

// List returns a page of labeled entries
// @Summary      List labels
// @Description  Return labeled entries in insertion order, paginated
// @Tags         labels
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 50)"
// @Success      200 {object} labels.Page "Page of entries"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		result, err := deps.Labels.List(c.Request.Context(), page, limit)
		if err != nil {
			log.Printf("[ERROR] Listing labels failed: %v", err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, result)
	}
}

// GetStats summarizes training data by label
// @Summary      Label statistics
// @Description  Return entry totals and per-label counts. Admin only.
// @Tags         labels
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} labels.Stats "Counts by label"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels/stats [get]
func GetStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.Labels.Stats(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Label stats failed: %v", err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, stats)
	}
}

// Export streams the full training data as TSV
// @Summary      Export training data
// @Description  Download all labeled entries as tab-separated text/label lines. Admin only.
// @Tags         labels
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string "TSV content"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/labels/export [get]
func Export(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := deps.Labels.Export(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Exporting labels failed: %v", err)
			types.SendError(c, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="training_data.csv"`)
		c.Data(200, "text/csv; charset=utf-8", []byte(content))
	}
}
