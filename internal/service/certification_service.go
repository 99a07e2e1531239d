package service

import (
	"context"

	"dronemarket/internal/model"
)

// CertificationService 资质参考数据服务
type CertificationService struct {
	certifications []model.Certification
}

// NewCertificationService 创建资质服务实例
func NewCertificationService(certifications []model.Certification) *CertificationService {
	return &CertificationService{certifications: certifications}
}

// List 获取全部资质说明
func (s *CertificationService) List(ctx context.Context) ([]model.Certification, error) {
	out := make([]model.Certification, len(s.certifications))
	copy(out, s.certifications)
	return out, nil
}
