package api

import (
	"github.com/gin-gonic/gin"

	"shortstudio/studio"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(runner *studio.Runner) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterPipelineRoutes(r, runner)
	RegisterHealthRoutes(r)
	return r
}
