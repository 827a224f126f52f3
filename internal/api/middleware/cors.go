package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS middleware from a comma-separated domain
// list; "*" allows everything.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()

	if allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(allowedDomains, ",")
	}

	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization")

	return cors.New(conf)
}
