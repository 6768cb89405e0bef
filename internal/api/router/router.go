package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/timetrackly/notifier/internal/api/handlers/notification"
	"github.com/timetrackly/notifier/internal/api/handlers/settings"
	"github.com/timetrackly/notifier/internal/middlewares"
)

// New builds the HTTP routing table.
func New(notifHandler *notification.Handler, settingsHandler *settings.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		notifications := api.Group("/notifications")
		{
			notifications.POST("", notifHandler.Create)
			notifications.GET("", notifHandler.GetAll)
			notifications.GET("/:id", notifHandler.Get)
			notifications.GET("/:id/status", notifHandler.GetStatus)
		}

		employers := api.Group("/employers")
		{
			employers.GET("/:id/schedule", settingsHandler.Get)
			employers.PUT("/:id/schedule", settingsHandler.Update)
		}
	}

	return e
}
