package handlers

import (
	"net/http"

	"rentride/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
