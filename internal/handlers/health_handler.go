package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/customer-service/internal/httpresp"
)

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "Operational"})
}
