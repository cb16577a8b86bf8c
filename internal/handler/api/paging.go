package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePaging reads the from/size query parameters with the service-wide
// defaults. Range validation happens in the usecases.
func parsePaging(c *gin.Context) (from, size int, err error) {
	from, err = strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return 0, 0, err
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil {
		return 0, 0, err
	}
	return from, size, nil
}
