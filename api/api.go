package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"roboadvisor/internal/logger"
	"roboadvisor/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	AdvisoryService service.AdvisoryService
	JwtDecodeToken  string
	RateLimiter     *RateLimiter
	Logger          *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(m.logRequestMiddleware)
	router.Use(m.authMiddleware)
	if m.RateLimiter != nil {
		router.Use(m.RateLimiter.Middleware())
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the robo-advisor simulation"})
	})
	router.GET("/profile", m.getProfile)
	router.POST("/profile", m.updateProfile)
	router.GET("/portfolio", m.getPortfolio)
	router.GET("/portfolio/summary", m.getPortfolioSummary)
	router.POST("/buy", m.buy)
	router.POST("/sell", m.sell)
	router.GET("/rebalancing", m.getRebalancingStatus)
	router.GET("/tlh", m.getTaxLossHarvestingOpportunities)
	router.GET("/recommendations", m.getRecommendations)
	router.GET("/events/rebalancing", m.getRebalancingEvents)
	router.GET("/events/tlh", m.getTaxLossHarvestingEvents)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Errorw("request failed", "error", err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request rejected", "error", err.Error(), "code", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError maps validation failures to 400 and everything else
// to 500.
func returnServiceError(err error, c *gin.Context) {
	var validationErr service.ValidationError
	if errors.As(err, &validationErr) {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	returnErrorJson(err, c)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = logger.FromContext(ctx.Request.Context())
	}
	ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context(), log))

	start := time.Now().UTC()
	ctx.Next()

	userID, _ := ctx.Get(userIDKey)
	log.Infow(
		"handled request",
		"method", ctx.Request.Method,
		"route", ctx.FullPath(),
		"status", ctx.Writer.Status(),
		"latencyMs", time.Since(start).Milliseconds(),
		"userID", userID,
		"ip", ctx.ClientIP(),
	)
}
