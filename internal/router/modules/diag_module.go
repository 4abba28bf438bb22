package modules

import (
	"github.com/gin-gonic/gin"

	handlers "authservice/internal/interface/http"
)

type DiagModule struct {
	Handler *handlers.DiagHandler
}

func NewDiagModule(h *handlers.DiagHandler) *DiagModule { return &DiagModule{Handler: h} }

func (m *DiagModule) Register(rg *gin.RouterGroup) {
	rg.GET("/test", m.Handler.Headers)
}
