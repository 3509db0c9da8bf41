package sentences

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// GetNext returns the next sentence to label
// @Summary      Fetch the next sentence
// @Description  Return the next unconsumed sentence per the configured policy, or available=false when none remain
// @Tags         sentences
// @Produce      json
// @Success      200 {object} types.NextSentenceResponse "Next sentence or empty state"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/sentences/next [get]
func GetNext(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sentence, ok, err := deps.Pipeline.Next(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Fetching next sentence failed: %v", err)
			types.SendError(c, err)
			return
		}

		if !ok {
			// An empty pipeline is a legitimate state, not a failure
			types.SendSuccess(c, types.NextSentenceResponse{
				Available:      false,
				RemainingCount: 0,
			})
			return
		}

		remaining, err := deps.Pipeline.Remaining(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Counting remaining sentences failed: %v", err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.NextSentenceResponse{
			Available:      true,
			Sentence:       sentence.Content,
			SentenceID:     sentence.ID,
			RemainingCount: remaining,
		})
	}
}

// MarkUsed marks a sentence consumed without labeling it
// @Summary      Mark a sentence used
// @Description  Record consumption of a sentence without creating a labeled entry (skip). Idempotent.
// @Tags         sentences
// @Produce      json
// @Param        id path int true "Sentence ID"
// @Success      200 {object} types.SuccessResponse "Sentence marked used"
// @Failure      400 {object} types.ErrorResponse "Invalid sentence ID"
// @Failure      404 {object} types.ErrorResponse "Sentence not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/sentences/{id}/used [post]
func MarkUsed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sentenceID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.Pipeline.Skip(c.Request.Context(), sentenceID); err != nil {
			log.Printf("[ERROR] Marking sentence %d used failed: %v", sentenceID, err)
			types.SendError(c, err)
			return
		}

		log.Printf("Marked sentence %d as used", sentenceID)
		types.SendSuccess(c, types.SuccessResponse{Success: true, Message: "Sentence marked as used"})
	}
}
