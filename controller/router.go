package controller

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// NewRouter setup the gin engine and define all routes
func NewRouter(apiController APIController) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)

	api := router.Group("")
	{
		api.GET("/languages/:username", apiController.GetLanguages)
		api.GET("/cards/:username", apiController.GetCards)
		api.GET("/embed/:username", apiController.GetEmbed)
		api.GET("/colors", apiController.GetColors)
		api.GET("/colors/:language", apiController.GetColor)
	}

	return router
}

// RequestID reuses the request id sent by the client or generates a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// AccessLog logs every request with logrus once it has been served
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"requestID": c.GetString("requestID"),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
		}).Info("request served")
	}
}
