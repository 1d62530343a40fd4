package main

import (
	"context"
	"net/http"
	"time"

	"github.com/akozyreva/coursehub/config"
	"github.com/akozyreva/coursehub/database"
	_ "github.com/akozyreva/coursehub/docs"
	"github.com/akozyreva/coursehub/internal/controller"
	adminctrl "github.com/akozyreva/coursehub/internal/controller/admin"
	"github.com/akozyreva/coursehub/internal/logger"
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/repository"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CourseHub API
// @version 1.0
// @description Learning platform API: courses, themes, homeworks, grading, plus a small product catalog.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewCourseRepository,
			repository.NewEnrollmentRepository,
			repository.NewThemeRepository,
			repository.NewHomeworkRepository,
			repository.NewSubmissionRepository,
			repository.NewCatalogRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewCourseService,
			service.NewEnrollmentService,
			service.NewHomeworkService,
			service.NewCatalogService,
		),

		fx.Provide(
			func(authService service.AuthService, cfg *config.Config) *controller.AuthController {
				return controller.NewAuthController(authService, cfg.Auth.CookieDomain)
			},
			controller.NewUserController,
			controller.NewCourseController,
			controller.NewHomeworkController,
			controller.NewCatalogController,
			adminctrl.NewCatalogController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	courseCtrl *controller.CourseController,
	homeworkCtrl *controller.HomeworkController,
	catalogCtrl *controller.CatalogController,
	adminCatalogCtrl *adminctrl.CatalogController,
) {
	api := router.Group("/api/v1")

	// Public endpoints.
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)

	products := api.Group("/products")
	{
		products.GET("", catalogCtrl.ListProducts)
		products.GET("/search", catalogCtrl.Search)
		products.GET("/category/:category_id", catalogCtrl.ListByCategory)
		products.GET("/:product_id", catalogCtrl.GetProduct)
	}

	// Everything below requires a session.
	authed := api.Group("")
	authed.Use(controller.AuthRequired(authService))
	{
		authed.GET("/auth/me", authCtrl.Me)

		authed.GET("/users/students", controller.RequireRole(model.RoleTeacher), userCtrl.ListStudents)
		authed.GET("/users/teachers", userCtrl.ListTeachers)

		courses := authed.Group("/courses")
		{
			courses.POST("", courseCtrl.CreateCourse)
			courses.GET("/my", courseCtrl.MyCourses)
			courses.GET("/:course_id", courseCtrl.GetCourse)
			courses.PATCH("/:course_id", courseCtrl.UpdateCourse)
			courses.DELETE("/:course_id", courseCtrl.DeleteCourse)
			courses.POST("/:course_id/enroll", courseCtrl.Enroll)
			courses.GET("/:course_id/progress", courseCtrl.MyProgress)
			courses.GET("/:course_id/students/:student_id/progress", courseCtrl.StudentProgress)
			courses.GET("/:course_id/themes", courseCtrl.ListThemes)
			courses.POST("/:course_id/themes", courseCtrl.CreateTheme)
		}

		themes := authed.Group("/themes")
		{
			themes.PATCH("/:theme_id", courseCtrl.UpdateTheme)
			themes.DELETE("/:theme_id", courseCtrl.DeleteTheme)
			themes.POST("/:theme_id/complete", courseCtrl.CompleteTheme)
			themes.GET("/:theme_id/homeworks", homeworkCtrl.ListForTheme)
			themes.POST("/:theme_id/homeworks", homeworkCtrl.CreateHomework)
		}

		homeworks := authed.Group("/homeworks")
		{
			homeworks.DELETE("/:homework_id", homeworkCtrl.DeleteHomework)
			homeworks.POST("/:homework_id/submissions", homeworkCtrl.Submit)
			homeworks.GET("/:homework_id/submissions/my", homeworkCtrl.MySubmission)
		}

		submissions := authed.Group("/submissions")
		{
			submissions.GET("", controller.RequireRole(model.RoleTeacher), homeworkCtrl.ReviewQueue)
			submissions.GET("/my", homeworkCtrl.MySubmissions)
			submissions.PUT("/:submission_id/grade", homeworkCtrl.Grade)
		}

		admin := authed.Group("/admin")
		admin.Use(controller.RequireRole(model.RoleAdmin))
		{
			admin.POST("/brands", adminCatalogCtrl.CreateBrand)
			admin.POST("/categories", adminCatalogCtrl.CreateCategory)
			admin.POST("/products", adminCatalogCtrl.CreateProduct)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CourseHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Theme{},
		&model.ThemeProgress{},
		&model.Homework{},
		&model.Submission{},
		&model.ThemeFile{},
		&model.SubmissionFile{},
		&model.Brand{},
		&model.Category{},
		&model.Product{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
