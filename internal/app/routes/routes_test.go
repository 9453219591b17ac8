package routes_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/controllers"
	"github.com/selorm/scholarbase/internal/app/routes"
	"github.com/selorm/scholarbase/internal/middleware"
	"github.com/stretchr/testify/assert"
)

// Registration only; the handlers never run, so nil services are fine.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.SetupRouter(
		router,
		controllers.NewAuthController(nil),
		controllers.NewUserController(nil),
		controllers.NewProfileController(nil),
		controllers.NewProjectController(nil),
		controllers.NewFigureController(nil),
		controllers.NewDashboardController(nil),
		controllers.NewPublicController(nil, nil, nil, "http://localhost:8080"),
		controllers.NewReferenceController(),
		middleware.NewAuthMiddleware(nil, nil),
	)

	set := make(map[string]bool)
	for _, r := range router.Routes() {
		set[r.Method+" "+r.Path] = true
	}
	return set
}

func TestSetupRouterRegistersCrawlerEndpoints(t *testing.T) {
	set := registeredRoutes(t)

	assert.True(t, set["GET /sitemap.xml"])
	assert.True(t, set["GET /robots.txt"])
}

func TestSetupRouterRegistersPublicDocumentRoutes(t *testing.T) {
	set := registeredRoutes(t)

	assert.True(t, set["GET /api/v1/public/projects/:slug/document"])
	assert.True(t, set["GET /api/v1/public/projects/:slug/document/view"])
}
