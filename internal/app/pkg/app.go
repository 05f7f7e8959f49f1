package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ship_tracker/internal/app/config"
	"ship_tracker/internal/app/handler"
)

type App struct {
	config  *config.Config
	router  *gin.Engine
	handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, hand *handler.Handler) *App {
	return &App{
		config:  cfg,
		router:  router,
		handler: hand,
	}
}

func (a *App) RunApp() {
	a.handler.SetupRoutes(a.router)

	addr := fmt.Sprintf("%s:%d", a.config.ServiceHost, a.config.ServicePort)
	logrus.Infof("starting server on %s", addr)

	if err := a.router.Run(addr); err != nil {
		logrus.Fatalf("server stopped with error: %v", err)
	}
}
