package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
//
//	@Summary		Check if the service is up
//	@Tags			healthcheck
//	@Produce		plain
//	@Success		200	{string}	string	"OK"
//	@Router			/ [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
