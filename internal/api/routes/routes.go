// internal/api/routes/routes.go
package routes

import (
	"time"

	"fasttrack-logistics-api-server/config"
	"fasttrack-logistics-api-server/internal/api/handlers"
	"fasttrack-logistics-api-server/internal/api/middleware"
	"fasttrack-logistics-api-server/internal/s3"
	"fasttrack-logistics-api-server/internal/service"
	"fasttrack-logistics-api-server/internal/socket"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route.
func SetupRouter(
	cfg config.Config,
	st *store.Store,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	jwtSecret := []byte(cfg.JWT.Secret)

	// Khởi tạo các service
	notifier := &service.NotificationService{Store: st.Notifications, Hub: wsHub}
	assigner := service.NewAssigner(st.Shipments, st.Personnel, st.Deliveries, notifier)
	deliveryService := &service.DeliveryService{
		Deliveries: st.Deliveries,
		Shipments:  st.Shipments,
		Notifier:   notifier,
	}
	reports := &service.Reports{
		Shipments:  st.Shipments,
		Deliveries: st.Deliveries,
		Personnel:  st.Personnel,
	}

	// Khởi tạo các handlers
	shipmentHandler := &handlers.ShipmentHandler{Shipments: st.Shipments, Deliveries: st.Deliveries}
	personnelHandler := &handlers.PersonnelHandler{Personnel: st.Personnel, Deliveries: st.Deliveries}
	deliveryHandler := &handlers.DeliveryHandler{
		Service:    deliveryService,
		Deliveries: st.Deliveries,
		Proofs:     st.Proofs,
		S3Uploader: s3Uploader,
	}
	assignmentHandler := &handlers.AssignmentHandler{Assigner: assigner}
	notificationHandler := &handlers.NotificationHandler{Service: notifier, Notifications: st.Notifications}
	reportHandler := &handlers.ReportHandler{Reports: reports}
	userHandler := &handlers.UserHandler{Users: st.Users, Cfg: cfg.JWT}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, JWTSecret: jwtSecret}

	apiV1 := router.Group("/api/v1")
	{
		// Route cho WebSocket
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===

		// Nhóm API authentication
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// API tra cứu công khai cho khách hàng, không cần JWT
		public := apiV1.Group("/")
		{
			public.GET("/track/:trackingNumber", shipmentHandler.TrackShipment)
		}

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===

		// Nhóm API quản trị, yêu cầu vai trò "admin"
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate(jwtSecret))
		admin.Use(middleware.Authorize("admin"))
		{
			admin.POST("/users", userHandler.CreateUser)
			admin.GET("/users", userHandler.GetAllUsers)
		}

		// Nhóm các API nghiệp vụ chính
		businessRoutes := apiV1.Group("/")
		businessRoutes.Use(middleware.Authenticate(jwtSecret))
		businessRoutes.Use(middleware.Authorize("admin", "dispatcher", "driver"))
		{
			// Shipment management
			shipments := businessRoutes.Group("/shipments")
			{
				shipments.POST("/", shipmentHandler.CreateShipment)
				shipments.GET("/", shipmentHandler.GetAllShipments)
				shipments.GET("/:id", shipmentHandler.GetShipment)
				shipments.PUT("/:id", shipmentHandler.UpdateShipment)
				shipments.DELETE("/:id", shipmentHandler.DeleteShipment)
				shipments.GET("/:id/deliveries", shipmentHandler.GetShipmentDeliveries)
			}

			// Delivery personnel management
			personnel := businessRoutes.Group("/personnel")
			{
				personnel.POST("/", personnelHandler.CreatePersonnel)
				personnel.GET("/", personnelHandler.GetAllPersonnel)
				personnel.GET("/:id", personnelHandler.GetPersonnel)
				personnel.PUT("/:id", personnelHandler.UpdatePersonnel)
				personnel.DELETE("/:id", personnelHandler.DeletePersonnel)
				personnel.GET("/:id/deliveries", personnelHandler.GetPersonnelDeliveries)
			}

			// Delivery management
			deliveries := businessRoutes.Group("/deliveries")
			{
				deliveries.POST("/", deliveryHandler.ScheduleDelivery)
				deliveries.GET("/", deliveryHandler.GetAllDeliveries)
				deliveries.GET("/:id", deliveryHandler.GetDelivery)
				deliveries.PUT("/:id", deliveryHandler.UpdateDelivery)
				deliveries.DELETE("/:id", deliveryHandler.DeleteDelivery)
				deliveries.GET("/:id/proofs", deliveryHandler.GetDeliveryProofs)

				// Route cho tài xế xác nhận, kèm ảnh minh chứng (tùy chọn)
				driverRoutes := deliveries.Group("/")
				driverRoutes.Use(middleware.Authorize("admin", "driver"))
				{
					driverRoutes.POST("/:id/pickup", deliveryHandler.ConfirmPickup)
					driverRoutes.POST("/:id/deliver", deliveryHandler.ConfirmDelivery)
				}
			}

			// Driver assignment — chỉ dispatcher và admin
			assignments := businessRoutes.Group("/assignments")
			assignments.Use(middleware.Authorize("admin", "dispatcher"))
			{
				assignments.POST("/", assignmentHandler.AssignDriver)
				assignments.GET("/pending", assignmentHandler.GetPendingAssignments)
			}

			// Notifications
			notifications := businessRoutes.Group("/notifications")
			{
				notifications.POST("/", notificationHandler.SendNotification)
				notifications.GET("/", notificationHandler.GetNotifications)
				notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
				notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			}

			// Reports — chỉ dispatcher và admin
			reportRoutes := businessRoutes.Group("/reports")
			reportRoutes.Use(middleware.Authorize("admin", "dispatcher"))
			{
				reportRoutes.GET("/monthly-volume", reportHandler.GetMonthlyVolume)
				reportRoutes.GET("/delivery-performance", reportHandler.GetDeliveryPerformance)
				reportRoutes.GET("/personnel-availability", reportHandler.GetPersonnelAvailability)
				reportRoutes.GET("/status-overview", reportHandler.GetStatusOverview)
			}
		}
	}

	return router
}
