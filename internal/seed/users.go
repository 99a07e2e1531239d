package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"dronemarket/internal/model"
)

// Users 演示账号，密码哈希在启动时生成
func Users() ([]model.User, error) {
	demoHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return []model.User{
		{
			ID:         1,
			Email:      "test@example.com",
			Name:       "김드론",
			Password:   string(demoHash),
			Phone:      "010-1234-5678",
			JoinDate:   time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
			IsVerified: true,
		},
		{
			ID:         2,
			Email:      "sky@example.com",
			Name:       "하늘사랑",
			Password:   string(demoHash),
			JoinDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			IsVerified: true,
		},
		{
			ID:         100,
			Email:      "admin@example.com",
			Name:       "관리자",
			Password:   string(adminHash),
			JoinDate:   time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
			IsVerified: true,
			IsAdmin:    true,
		},
	}, nil
}

// CannedReplies 聊天模拟的卖家自动回复语料
func CannedReplies() []string {
	return []string{
		"네, 안녕하세요! 문의 감사합니다.",
		"직거래는 주말에 가능합니다.",
		"상태는 사진 그대로이고 기스 거의 없습니다.",
		"가격은 조금 네고 가능합니다. 제시해주세요.",
		"배터리 사이클은 30회 미만입니다.",
	}
}
