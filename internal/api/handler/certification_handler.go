package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// CertificationHandler 资质参考处理器
type CertificationHandler struct {
	certService *service.CertificationService
	logger      *logger.Logger
}

// NewCertificationHandler 创建资质处理器实例
func NewCertificationHandler(certService *service.CertificationService, logger *logger.Logger) *CertificationHandler {
	return &CertificationHandler{
		certService: certService,
		logger:      logger,
	}
}

// ListCertifications 获取无人机资质说明列表
func (h *CertificationHandler) ListCertifications(c *gin.Context) {
	certs, err := h.certService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": certs})
}
