package router

import (
	"fmt"

	"github.com/Sheddybata/sdp.app/internal/admin"
	"github.com/Sheddybata/sdp.app/internal/auth"
	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/content"
	"github.com/Sheddybata/sdp.app/internal/enrollment"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/Sheddybata/sdp.app/internal/meta"
	"github.com/Sheddybata/sdp.app/internal/shared/database"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/middleware"
	sharedRedis "github.com/Sheddybata/sdp.app/internal/shared/redis"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
	"github.com/Sheddybata/sdp.app/internal/verification"
	"github.com/gin-gonic/gin"
)

// Infra holds the process-wide dependencies built in main.
type Infra struct {
	DB      *database.DB
	Redis   *sharedRedis.Client // nil when REDIS_URL is unset
	Geo     *geo.Dataset
	Metrics *metrics.Metrics
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, infra Infra) error {
	db := infra.DB.DB

	// Meta handler (health check, metrics)
	var redisHealth meta.HealthChecker
	if infra.Redis != nil {
		redisHealth = infra.Redis
	}
	metaHandler := meta.NewHandler(cfg, infra.DB, redisHealth, infra.Geo)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))

	// repository
	memberRepository := member.NewMemberRepository()
	contentRepository := content.NewContentRepository()

	// shared services
	sessions := token.NewSessionManager(cfg)
	cards := token.NewJWTCardManager(cfg)
	lockout := auth.NewLockout(lockoutStore(infra.Redis), cfg.Lockout.MaxAttempts, cfg.Lockout.Window)
	formValidator, err := enrollment.NewFormValidator(infra.Geo)
	if err != nil {
		return fmt.Errorf("form validator: %w", err)
	}

	// service
	memberService := member.NewMemberService(db, memberRepository, infra.Geo)
	enrollmentService := enrollment.NewEnrollmentService(db, memberRepository, formValidator, cards, infra.Geo, infra.Metrics)
	verificationService := verification.NewVerificationService(memberService, cards, infra.Metrics)
	contentService := content.NewContentService(db, contentRepository)
	adminService := admin.NewAdminService(db, memberRepository, memberService, contentService, infra.Geo)
	authService := auth.NewAuthService(cfg, sessions, lockout, infra.Metrics)

	// handler
	geoHandler := geo.NewHandler(infra.Geo)
	enrollmentHandler := enrollment.NewEnrollmentHandler(enrollmentService, enrollment.NewMachine(formValidator, enrollmentService))
	verificationHandler := verification.NewVerificationHandler(verificationService)
	contentHandler := content.NewContentHandler(contentService)
	memberHandler := member.NewMemberHandler(memberService)
	adminHandler := admin.NewAdminHandler(adminService)
	authHandler := auth.NewAuthHandler(authService, cfg.Admin.CookieSecure)

	// Public routes
	router.GET("/", contentHandler.Home)

	geoV := router.Group("/geo/states")
	{
		geoV.GET("", geoHandler.States)
		geoV.GET("/:state/lgas", geoHandler.LGAs)
		geoV.GET("/:state/lgas/:lga/wards", geoHandler.Wards)
	}

	enroll := router.Group("/enroll")
	{
		enroll.POST("/new", enrollmentHandler.Submit)
		enroll.POST("/new/wizard", enrollmentHandler.Start)
		enroll.POST("/new/wizard/advance", enrollmentHandler.Advance)
		enroll.POST("/new/wizard/retreat", enrollmentHandler.Retreat)
		enroll.POST("/new/wizard/reset", enrollmentHandler.Reset)
		enroll.POST("/new/wizard/sync", enrollmentHandler.Sync)

		enroll.POST("/verify/membership-id", verificationHandler.ByMembershipID)
		enroll.POST("/verify/voter-id", verificationHandler.ByVoterID)
		enroll.POST("/verify/card", verificationHandler.ByCard)
	}

	// Admin routes; the session gate lets only the login page through unauthenticated.
	adminGroup := router.Group(middleware.AdminHomePath, middleware.AdminSession(sessions, cfg.Admin.Email))
	{
		adminGroup.GET("/login", authHandler.LoginPage)
		adminGroup.POST("/login", authHandler.Login)
		adminGroup.POST("/logout", authHandler.Logout)

		adminGroup.GET("", adminHandler.Dashboard)
		adminGroup.GET("/dashboard", adminHandler.Dashboard)

		adminGroup.GET("/members", adminHandler.ListMembers)
		adminGroup.POST("/members", enrollmentHandler.SubmitForAdmin)
		adminGroup.GET("/members/export.csv", adminHandler.ExportCSV)
		adminGroup.GET("/members/export.pdf", adminHandler.ExportPDF)
		adminGroup.GET("/members/:id", memberHandler.Get)
		adminGroup.DELETE("/members/:id", memberHandler.Delete)

		adminGroup.GET("/events", contentHandler.ListEvents)
		adminGroup.POST("/events", contentHandler.CreateEvent)
		adminGroup.DELETE("/events/:id", contentHandler.DeleteEvent)

		adminGroup.GET("/announcements", contentHandler.ListAnnouncements)
		adminGroup.POST("/announcements", contentHandler.CreateAnnouncement)
		adminGroup.DELETE("/announcements/:id", contentHandler.DeleteAnnouncement)
	}

	return nil
}

func lockoutStore(client *sharedRedis.Client) auth.LockoutStore {
	if client == nil {
		return auth.NewMemoryLockoutStore()
	}
	return auth.NewRedisLockoutStore(client.Client)
}
