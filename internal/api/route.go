package api

import (
	"Orion/internal/api/middleware"
	"Orion/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    "pong",
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/me", group.UserHandler.GetMe)
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/trending", group.PostHandler.GetTrendingPosts)
				authOptGroup.GET("/:id", group.PostHandler.GetPost)
				authOptGroup.GET("/:id/comments", group.PostActionHandler.GetComments)
			}

			loggedGroup := postGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.PostHandler.CreatePost)
				loggedGroup.PUT("/:id", group.PostHandler.UpdatePost)
				loggedGroup.DELETE("/:id", group.PostHandler.DeletePost)
				loggedGroup.POST("/:id/like", group.PostActionHandler.LikePost)
				loggedGroup.POST("/:id/comments", group.PostActionHandler.CreateComment)
			}
		}

		sessionGroup := apiGroup.Group("/sessions")
		{
			authOptGroup := sessionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.SessionHandler.ListSessions)
				authOptGroup.GET("/:id", group.SessionHandler.GetSession)
			}

			loggedGroup := sessionGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.SessionHandler.CreateSession)
			}
		}

		needGroup := apiGroup.Group("/needs")
		{
			authOptGroup := needGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.NeedHandler.ListNeeds)
				authOptGroup.GET("/:id", group.NeedHandler.GetNeed)
			}

			loggedGroup := needGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.NeedHandler.CreateNeed)
				loggedGroup.PUT("/:id", group.NeedHandler.UpdateNeed)
				loggedGroup.DELETE("/:id", group.NeedHandler.DeleteNeed)
			}
		}

		studentGroup := apiGroup.Group("/student")
		studentGroup.Use(middleware.AuthMiddleware())
		{
			studentGroup.GET("/profile", group.StudentProfileHandler.GetProfile)
			studentGroup.POST("/profile", group.StudentProfileHandler.CreateProfile)
			studentGroup.DELETE("/profile", group.StudentProfileHandler.DeleteProfile)
			studentGroup.GET("/profile/completion", group.StudentProfileHandler.GetCompletion)

			studentGroup.PATCH("/profile/personal-info", group.StudentProfileHandler.UpdatePersonalInfo)
			studentGroup.PATCH("/profile/skills", group.StudentProfileHandler.UpdateSkills)

			studentGroup.POST("/profile/education", group.StudentProfileHandler.AddEducation)
			studentGroup.PATCH("/profile/education/:recordId", group.StudentProfileHandler.UpdateEducation)
			studentGroup.DELETE("/profile/education/:recordId", group.StudentProfileHandler.DeleteEducation)

			studentGroup.POST("/profile/work-experience", group.StudentProfileHandler.AddWorkExperience)
			studentGroup.PATCH("/profile/work-experience/:recordId", group.StudentProfileHandler.UpdateWorkExperience)
			studentGroup.DELETE("/profile/work-experience/:recordId", group.StudentProfileHandler.DeleteWorkExperience)

			studentGroup.POST("/profile/skills/certificate", group.StudentProfileHandler.AddCertificate)
			studentGroup.PATCH("/profile/skills/certificate/:recordId", group.StudentProfileHandler.UpdateCertificate)
			studentGroup.DELETE("/profile/skills/certificate/:recordId", group.StudentProfileHandler.DeleteCertificate)
		}

		startupGroup := apiGroup.Group("/startup")
		startupGroup.Use(middleware.AuthMiddleware())
		{
			startupGroup.GET("/profile", group.StartupProfileHandler.GetProfile)
			startupGroup.POST("/profile", group.StartupProfileHandler.CreateProfile)
			startupGroup.DELETE("/profile", group.StartupProfileHandler.DeleteProfile)
			startupGroup.GET("/profile/completion", group.StartupProfileHandler.GetCompletion)
			startupGroup.PATCH("/profile/sections/:section", group.StartupProfileHandler.UpdateSection)
		}

		exploreGroup := apiGroup.Group("/explore")
		exploreGroup.Use(middleware.AuthOptionalMiddleware())
		{
			exploreGroup.GET("/startups", group.ExploreHandler.ListStartups)
			exploreGroup.GET("/startups/:userId", group.ExploreHandler.GetStartup)
		}

		activityGroup := apiGroup.Group("/activity")
		activityGroup.Use(middleware.AuthMiddleware())
		{
			activityGroup.GET("/me", group.UserActivityHandler.GetMyActivities)
		}

		resourceGroup := apiGroup.Group("/resources")
		resourceGroup.Use(middleware.AuthMiddleware())
		{
			resourceGroup.GET("", group.ResourceHandler.ListResources)
			resourceGroup.POST("/upload", group.ResourceHandler.UploadResource)
		}

		notificationGroup := apiGroup.Group("/notifications")
		{
			// websocket 握手自带鉴权，不挂中间件
			notificationGroup.GET("/ws", group.WSHandler.Connect)

			loggedGroup := notificationGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.GET("", group.NotificationHandler.ListNotifications)
				loggedGroup.GET("/unread-count", group.NotificationHandler.GetUnreadCount)
				loggedGroup.POST("/mark-read", group.NotificationHandler.MarkRead)
				loggedGroup.POST("/mark-all-read", group.NotificationHandler.MarkAllRead)
				loggedGroup.DELETE("/:id", group.NotificationHandler.DeleteNotification)
			}
		}
	}

	return r
}
