package main

// go run cmd/ship_tracker/main.go

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ship_tracker/internal/app/config"
	"ship_tracker/internal/app/handler"
	"ship_tracker/internal/app/pkg"
	"ship_tracker/internal/app/repository"

	_ "ship_tracker/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ship Tracker API
// @version 1.0
// @description In-memory ship record service: CRUD plus move, destination and speed mutators.
// @BasePath /
func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
	})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep := repository.New()
	hand := handler.NewHandler(rep)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
