package httpresp

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const HeaderTotalCount = "X-Total-Count"

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List writes a bare JSON array and exposes the unpaginated total in a header.
func List[T any](c *gin.Context, data []T, total int64) {
	c.Header(HeaderTotalCount, strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
