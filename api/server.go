package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tobrik/TMS/external/vision"
	"github.com/Tobrik/TMS/logmodule"
	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.TMSCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	ocrClient vision.OCR

	// job pool enqueuer
	background *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	background *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
	}

	cipher, err := store.NewFieldCipher(viper.GetString("crypto.fieldkey"))
	if err != nil {
		logrus.Panic(err)
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		cipher,
	)

	return &Server{
		store:         store.NewTMSStore(ormDB, mongoStore, cipher),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		ocrClient: vision.New(
			viper.GetString("vision.token"),
			viper.GetString("vision.model"),
			viper.GetString("vision.endpoint"),
		),
		background: background,
		httpClient: httpClient,
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	patientRoute := apiRoute.Group("/patients")
	{
		patientRoute.POST("", s.patientRegister)
		patientRoute.POST("/login", s.patientLogin)
	}

	doctorRoute := apiRoute.Group("/doctors")
	{
		doctorRoute.POST("/login", s.doctorLogin)
	}

	// routes below require a valid token
	apiRoute.Use(s.authMiddleware())

	apiRoute.GET("/doctors", s.listDoctors)

	apiRoute.POST("/analysis", s.requirePatient(), s.analyzeSymptoms)
	apiRoute.POST("/explanations", s.saveExplanation)

	apiRoute.POST("/lab-results", s.requirePatient(), s.uploadLabResult)
	apiRoute.GET("/lab-results", s.listLabResults)

	apiRoute.GET("/patients/:patientID", s.patientInfo)
	apiRoute.GET("/patients/:patientID/history", s.patientHistory)
	apiRoute.GET("/patients/:patientID/symptoms/:code", s.symptomGraph)

	apiRoute.GET("/days/:dayID/symptoms", s.daySymptoms)
	apiRoute.PATCH("/days/:dayID", s.requireDoctor(), s.updateDayByDoctor)

	apiRoute.GET("/triage", s.requireDoctor(), s.triageRoster)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
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
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"symptoms":       schema.SymptomCodes,
			"system_version": "TMS 0.1",
			"docs":           viper.GetStringMap("docs"),
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
