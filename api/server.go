package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/casemap"
	"github.com/bitmark-inc/covid-map/logmodule"
	"github.com/bitmark-inc/covid-map/schema"
	"github.com/bitmark-inc/covid-map/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Controller - the map view controller behind the http api
type Controller interface {
	Snapshot() casemap.State
	Refresh(ctx context.Context) error
	OnViewportChanged(ev casemap.ViewportChanged) (casemap.State, []schema.Marker)
}

type Options struct {
	Version   string
	MapAPIKey string
	AdminKey  string
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	controller Controller

	// pinger is set when the case source is a database
	pinger store.Pinger

	options Options
}

// NewServer new instance of server
func NewServer(controller Controller, pinger store.Pinger, options Options) *Server {
	return &Server{
		controller: controller,
		pinger:     pinger,
		options:    options,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	// the map widget is served from another origin
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		apiRoute.GET("/information", s.information)
		apiRoute.GET("/bands", s.bands)
		apiRoute.GET("/markers", s.markers)
		apiRoute.POST("/viewport", s.viewport)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(s.options.AdminKey))
	{
		secretRoute.POST("/refresh", s.refresh)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if s.pinger != nil {
		err := s.pinger.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": s.options.Version,
		"load_id": s.controller.Snapshot().LoadID,
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": s.options.Version,
			},
			"map": map[string]interface{}{
				"api_key": s.options.MapAPIKey,
				"center":  casemap.DefaultCenter,
				"zoom":    casemap.DefaultZoom,
			},
			"bands":          casemap.BandRanges(),
			"system_version": "Covid Map 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
