package signup

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := &SignupService{}
	h := &SignupHandler{
		service: service,
	}
	r.POST("/signup", h.handle)
}
