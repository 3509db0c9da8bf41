package types

import (
	"github.com/killallgit/labeler-api/internal/database"
	"github.com/killallgit/labeler-api/internal/services/auth"
	"github.com/killallgit/labeler-api/internal/services/labels"
	"github.com/killallgit/labeler-api/internal/services/pipeline"
	"github.com/killallgit/labeler-api/internal/services/prediction"
	"github.com/killallgit/labeler-api/internal/storage"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB          *database.DB
	Pipeline    pipeline.Service
	Labels      labels.Service
	Predictor   prediction.Predictor
	Auth        *auth.Service
	Provisioner *storage.Provisioner
}
