package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/middleware"
)

// parseIDParam reads a numeric path parameter, writing a 400 when it does not parse.
// Ids that cannot exist are passed on; deleting them is a no-op.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}
