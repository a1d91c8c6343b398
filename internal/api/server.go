package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/restron/restron-api/docs"
	v1 "github.com/restron/restron-api/internal/api/handler/v1"
	"github.com/restron/restron-api/internal/api/middleware"
	"github.com/restron/restron-api/internal/config"
	"github.com/restron/restron-api/internal/pkg/jwthelper"
	"github.com/restron/restron-api/internal/realtime"
	"github.com/restron/restron-api/internal/repository"
	"github.com/restron/restron-api/internal/repository/dao"
	"github.com/restron/restron-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	admin    *v1.AdminHandler
	store    *v1.StoreHandler
	item     *v1.ItemHandler
	table    *v1.TableHandler
	order    *v1.OrderHandler
	realtime *v1.RealtimeHandler
}

// NewServer wires the repositories, services and handlers on top of db.
// Live sessions go through hub; a nil sender turns push notifications off.
func NewServer(conf *config.AppConfig, db *gorm.DB, hub *realtime.Hub, sender service.PushSender, location *time.Location) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db, hub, sender, location))

	return s
}

func (s *Server) initHandlers(db *gorm.DB, hub *realtime.Hub, sender service.PushSender, location *time.Location) handlers {
	adminRepo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	storeRepo := repository.NewStoreRepository(dao.NewStoreDAO(db))
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	tableRepo := repository.NewTableRepository(dao.NewTableDAO(db))
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))

	notifier := service.NewNotifier(hub, sender, storeRepo, s.Config.Push.Concurrency)
	storeSvc := service.NewStoreService(storeRepo, adminRepo)
	orderSvc := service.NewOrderService(orderRepo, storeRepo, tableRepo, service.NewCatalogService(itemRepo), notifier, location)
	syncSvc := service.NewSyncService(orderRepo, storeRepo, tableRepo, notifier)

	return handlers{
		admin:    v1.NewAdminHandler(s.Config.API, service.NewAdminService(adminRepo, storeRepo)),
		store:    v1.NewStoreHandler(s.Config.API, storeSvc),
		item:     v1.NewItemHandler(service.NewItemService(itemRepo)),
		table:    v1.NewTableHandler(service.NewTableService(tableRepo, s.Config.API.ClientURL)),
		order:    v1.NewOrderHandler(orderSvc, syncSvc),
		realtime: v1.NewRealtimeHandler(storeSvc, hub, s.Config.API.AllowedCORSDomains),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default(). The logger
	// masks the websocket token query parameter.
	s.Router.Use(middleware.AccessLog())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	auth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	verifyJWT := auth.VerifyJWT()
	verifySuperAdmin := auth.VerifyAdminJWT(jwthelper.RoleSuperAdmin)

	public := s.Router.Group(basePath)
	{
		public.POST("/admins/bootstrap", h.admin.HandleBootstrap)
		public.POST("/admins/login", h.admin.HandleLogin)
		public.POST("/stores/login", h.store.HandleLogin)
		public.POST("/orders/create", h.order.HandleCreateOrder)
		public.POST("/orders/sync-orders", h.order.HandleSyncOrders)
	}

	admins := s.Router.Group(basePath+"/admins", auth.VerifyAdminJWT(jwthelper.RoleSuperAdmin, jwthelper.RoleAdmin))
	{
		admins.GET("/profile", h.admin.HandleGetProfile)
		admins.GET("/stores", h.admin.HandleListStores)
	}

	superAdmins := s.Router.Group(basePath, verifySuperAdmin)
	{
		superAdmins.POST("/admins/register", h.admin.HandleRegister)
		superAdmins.POST("/stores/register", h.store.HandleRegister)
	}

	stores := s.Router.Group(basePath+"/stores", verifyJWT)
	{
		stores.POST("/logout", h.store.HandleLogout)
		stores.GET("/profile", h.store.HandleGetProfile)
		stores.PUT("/charges", h.store.HandleUpdateCharges)
		stores.POST("/push-tokens", h.store.HandleAddPushToken)
		stores.DELETE("/push-tokens", h.store.HandleRemovePushToken)
	}

	items := s.Router.Group(basePath+"/items", verifyJWT)
	{
		items.POST("", h.item.HandleCreateItem)
		items.GET("", h.item.HandleListItems)
		items.GET("/:itemID", h.item.HandleGetItem)
		items.PATCH("/:itemID", h.item.HandleUpdateItem)
		items.DELETE("/:itemID", h.item.HandleDeleteItem)
		items.PUT("/:itemID/availability", h.item.HandleSetItemAvailability)
		items.POST("/:itemID/variants", h.item.HandleAddVariant)
		items.PATCH("/:itemID/variants/:variantID", h.item.HandleUpdateVariant)
		items.DELETE("/:itemID/variants/:variantID", h.item.HandleRemoveVariant)
		items.PUT("/:itemID/variants/:variantID/availability", h.item.HandleSetVariantAvailability)
	}

	tables := s.Router.Group(basePath+"/tables", verifyJWT)
	{
		tables.POST("", h.table.HandleCreateTable)
		tables.GET("", h.table.HandleListTables)
		tables.GET("/:tableID", h.table.HandleGetTable)
		tables.PUT("/:tableID", h.table.HandleRenumberTable)
		tables.DELETE("/:tableID", h.table.HandleDeleteTable)
	}

	orders := s.Router.Group(basePath+"/orders", verifyJWT)
	{
		orders.GET("/store-orders", h.order.HandleGetStoreOrders)
		orders.GET("/store-orders/date", h.order.HandleGetOrdersByDate)
		orders.GET("/store-orders/month", h.order.HandleGetOrdersByMonth)
		orders.GET("/store-orders/status", h.order.HandleGetOrdersByStatus)
		orders.GET("/table/:tableID", h.order.HandleGetTableOrders)
		orders.GET("/:orderID", h.order.HandleGetOrder)
		orders.PUT("/status/:orderID", h.order.HandleUpdateOrderStatus)
		orders.PUT("/cancel/:orderID", h.order.HandleCancelOrder)
	}

	// Browsers cannot set headers on a websocket upgrade.
	s.Router.GET(basePath+"/ws", auth.VerifyJWTFromQuery(), h.realtime.HandleConnect)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Restron API"
	docs.SwaggerInfo.Description = "Table ordering backend for restaurants."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
