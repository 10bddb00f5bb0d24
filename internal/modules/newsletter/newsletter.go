// Package newsletter acknowledges signup requests. Nothing is persisted and
// no mail is sent; the endpoint exists for the public site's signup form.
package newsletter

import (
	"strings"

	"github.com/amadeudias/blog-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type subscribeDTO struct {
	Email string `json:"email"`
}

func RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter", subscribe)
}

// subscribe POST /newsletter
func subscribe(c *gin.Context) {
	var dto subscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Valid email is required")
		return
	}
	if !strings.Contains(dto.Email, "@") {
		response.BadRequest(c, "Valid email is required")
		return
	}
	response.OK(c, gin.H{"message": "Successfully subscribed to newsletter"})
}
