package handlers

import (
	"net/http"

	"eventoz/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the last observed Mongo and Redis connectivity.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
