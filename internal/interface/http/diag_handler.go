package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"authservice/internal/interface/middleware"
	"authservice/pkg/response"
	"authservice/pkg/useragent"
)

type DiagHandler struct{}

func NewDiagHandler() *DiagHandler { return &DiagHandler{} }

// Headers handles GET /test: echoes request header metadata with the
// user-agent classified into browser and OS labels.
func (h *DiagHandler) Headers(c *gin.Context) {
	ua := c.GetHeader("User-Agent")

	referer := c.GetHeader("Referer")
	if referer == "" {
		referer = "none"
	}

	all := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		all[name] = strings.Join(values, ", ")
	}

	response.OK(c, http.StatusOK, "browser info", gin.H{
		"userAgent":  ua,
		"browser":    useragent.Browser(ua),
		"os":         useragent.OS(ua),
		"language":   c.GetHeader("Accept-Language"),
		"encoding":   c.GetHeader("Accept-Encoding"),
		"host":       c.Request.Host,
		"referer":    referer,
		"ip":         middleware.ClientIP(c),
		"allHeaders": all,
	})
}
