package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS restricts cross-origin requests to the configured allow-list.
// allowedDomains is a comma-separated list; "*" opens everything up for
// local development.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Service-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		for _, domain := range strings.Split(allowedDomains, ",") {
			if domain = strings.TrimSpace(domain); domain != "" {
				conf.AllowOrigins = append(conf.AllowOrigins, domain)
			}
		}
	}

	return cors.New(conf)
}
