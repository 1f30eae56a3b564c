package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"veyra-io/estates-web/catalog"
	"veyra-io/estates-web/controllers"
	"veyra-io/estates-web/middleware"
	"veyra-io/estates-web/models"
)

// TemplateFuncs exposes the catalog display helpers to every view.
var TemplateFuncs = template.FuncMap{
	"formatPrice": catalog.FormatPrice,
	"joinList":    catalog.JoinList,
	"statusLabel": func(s models.PropertyStatus) string { return string(s) },
}

func InitRoute() *gin.Engine {
	router := gin.Default()
	router.SetFuncMap(TemplateFuncs)
	router.LoadHTMLGlob("web/templates/*.html")
	router.Use(middleware.CorsMiddleware())

	router.GET("/", controllers.Home())
	router.GET("/properties", controllers.Properties())
	router.GET("/properties/:id", controllers.PropertyDetail())
	router.GET("/properties/:id/:slug", controllers.PropertyDetail())
	router.GET("/contact", controllers.ContactPage())
	router.GET("/private-access", controllers.PrivateAccessPage())

	api := router.Group("/api/inquiries", middleware.InquiryRateLimiter())
	{
		api.POST("/contact", controllers.SubmitContactInquiry())
		api.POST("/private-access", controllers.SubmitPrivateAccessInquiry())
		api.POST("/property-detail", controllers.SubmitPropertyDetailInquiry())
	}

	router.GET("/admin/login", controllers.AdminLoginPage())
	router.POST("/admin/login", controllers.AdminLogin())
	router.POST("/admin/logout", controllers.AdminLogout())

	admin := router.Group("/admin", middleware.AdminAuth())
	{
		admin.GET("/properties", controllers.AdminProperties())
		admin.GET("/properties/new", controllers.AdminNewProperty())
		admin.POST("/properties", controllers.AdminCreateProperty())
		admin.GET("/properties/:id/edit", controllers.AdminEditProperty())
		admin.POST("/properties/:id", controllers.AdminUpdateProperty())
		admin.POST("/properties/:id/delete", controllers.AdminDeleteProperty())
		admin.POST("/properties/:id/media/remove", controllers.AdminRemoveMedia())
	}

	return router
}
