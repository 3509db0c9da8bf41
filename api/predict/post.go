package predict

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// Post classifies a text into the label categories
// @Summary      Predict a label
// @Description  Proxy the text to the external classifier. When the classifier is unreachable a neutral fallback prediction is returned with fallback=true.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        text body types.PredictRequest true "Text to classify"
// @Success      200 {object} prediction.Prediction "Predicted category and probabilities"
// @Failure      400 {object} types.ErrorResponse "Empty text"
// @Router       /api/v1/predict [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PredictRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		prediction, err := deps.Predictor.Predict(c.Request.Context(), req.Text)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, prediction)
	}
}
