package routes

import (
	"net/http"

	_ "cloud_checkout/docs"
	"cloud_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var log = logrus.WithField("component", "routes")

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Product       *handlers.ProductHandler
	PaymentMethod *handlers.PaymentMethodHandler
	Checkout      *handlers.CheckoutHandler
}

// NewRouter builds the gin engine with the public /v1 API and the swagger UI.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProductRoutes(v1, h.Product)
	addPaymentMethodRoutes(v1, h.PaymentMethod)
	addCheckoutRoutes(v1, h.Checkout)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("[http][recovery] recovered from panic path=%s err=%v", c.Request.URL.Path, recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
