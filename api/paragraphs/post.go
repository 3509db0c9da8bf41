package paragraphs

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// Submit ingests a raw paragraph and splits it into labelable sentences
// @Summary      Submit a paragraph
// @Description  Ingest a raw block of text, split it into sentences and queue them for labeling
// @Tags         paragraphs
// @Accept       json
// @Produce      json
// @Param        paragraph body types.ParagraphRequest true "Raw paragraph text"
// @Success      201 {object} types.IngestResponse "Created paragraph and sentence count"
// @Failure      400 {object} types.ErrorResponse "Empty or invalid text"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/paragraphs [post]
func Submit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ParagraphRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			types.SendBadRequest(c, "Text is required")
			return
		}

		result, err := deps.Pipeline.Ingest(c.Request.Context(), req.Text)
		if err != nil {
			log.Printf("[ERROR] Paragraph ingest failed: %v", err)
			types.SendError(c, err)
			return
		}

		log.Printf("Ingested paragraph %d with %d sentence(s)", result.ParagraphID, result.SentenceCount)

		types.SendCreated(c, types.IngestResponse{
			ParagraphID:   result.ParagraphID,
			SentenceCount: result.SentenceCount,
			WordCount:     result.WordCount,
			CharCount:     result.CharCount,
		})
	}
}
