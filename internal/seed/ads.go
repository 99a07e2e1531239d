// Package seed 提供进程启动时装载的样例数据。
// 除收藏夹外，所有语料只存在于内存中，进程重启即复位。
package seed

import "dronemarket/internal/model"

// BannerAds 主页横幅广告池
func BannerAds() []model.Ad {
	return []model.Ad{
		{
			ID:              1,
			Title:           "DJI Mini 3 Pro",
			Description:     "최신 드론 기술로 완벽한 촬영을 경험하세요",
			Image:           "/dji-mini3.jpg",
			Link:            "https://dji.com",
			BackgroundColor: "#1e40af",
			Type:            model.PlacementBanner,
			Price:           800000,
			Views:           25000,
			Clicks:          1250,
		},
		{
			ID:              2,
			Title:           "드론 보험 특가",
			Description:     "안전한 비행을 위한 완벽한 보장",
			Image:           "/drone-insurance.jpg",
			Link:            "https://insurance.com",
			BackgroundColor: "#059669",
			Type:            model.PlacementBanner,
			Price:           600000,
			Views:           25000,
			Clicks:          1000,
		},
		{
			ID:              3,
			Title:           "드론 교육 과정",
			Description:     "전문가가 되기 위한 체계적인 교육",
			Image:           "/drone-education.jpg",
			Link:            "https://education.com",
			BackgroundColor: "#7c3aed",
			Type:            model.PlacementBanner,
			Price:           500000,
			Views:           25000,
			Clicks:          750,
		},
	}
}

// SidebarAds 侧边栏广告池
func SidebarAds() []model.Ad {
	return []model.Ad{
		{
			ID:              4,
			Title:           "Parrot Anafi",
			Description:     "4K HDR 촬영의 새로운 기준",
			Image:           "/parrot-anafi.jpg",
			Link:            "https://parrot.com",
			BackgroundColor: "#dc2626",
			Sponsor:         true,
			Type:            model.PlacementSidebar,
			Price:           400000,
			Views:           15000,
			Clicks:          600,
		},
		{
			ID:              5,
			Title:           "드론 액세서리",
			Description:     "필수 액세서리 20% 할인",
			Image:           "/accessories.jpg",
			Link:            "https://accessories.com",
			BackgroundColor: "#ea580c",
			Type:            model.PlacementSidebar,
			Price:           300000,
			Views:           15000,
			Clicks:          450,
		},
		{
			ID:              6,
			Title:           "드론 수리 서비스",
			Description:     "전문 기술자의 정밀 수리",
			Image:           "/repair-service.jpg",
			Link:            "https://repair.com",
			BackgroundColor: "#0891b2",
			Type:            model.PlacementSidebar,
			Price:           250000,
			Views:           15000,
			Clicks:          375,
		},
	}
}

// InlineAds 信息流内嵌广告池
func InlineAds() []model.Ad {
	return []model.Ad{
		{
			ID:              7,
			Title:           "Autel EVO Nano",
			Description:     "소형 드론의 혁신, 4K 촬영의 새로운 경험",
			Image:           "/autel-evo.jpg",
			Link:            "https://autel.com",
			BackgroundColor: "#1f2937",
			Size:            "medium",
			Type:            model.PlacementInline,
			Price:           350000,
			Views:           12000,
			Clicks:          480,
		},
		{
			ID:              8,
			Title:           "드론 촬영 대행",
			Description:     "부동산, 이벤트, 상업 촬영 전문",
			Image:           "/shooting-service.jpg",
			Link:            "https://shooting.com",
			BackgroundColor: "#be185d",
			Size:            "large",
			Type:            model.PlacementInline,
			Price:           450000,
			Views:           12000,
			Clicks:          600,
		},
		{
			ID:              9,
			Title:           "드론 배터리 특가",
			Description:     "원본 배터리 30% 할인 이벤트",
			Image:           "/battery-sale.jpg",
			Link:            "https://battery.com",
			BackgroundColor: "#92400e",
			Size:            "small",
			Type:            model.PlacementInline,
			Price:           200000,
			Views:           12000,
			Clicks:          360,
		},
	}
}

// CategoryAds 按适用级别定向投放的广告
func CategoryAds() map[string][]model.Ad {
	return map[string][]model.Ad{
		model.LevelBeginner: {
			{
				ID:              10,
				Title:           "초보자 드론 추천",
				Description:     "처음 시작하는 분들을 위한 완벽한 선택",
				Image:           "/beginner-drone.jpg",
				Link:            "https://beginner.com",
				BackgroundColor: "#059669",
				Type:            model.PlacementInline,
				Size:            "medium",
				Category:        model.LevelBeginner,
				Price:           300000,
				Views:           8000,
				Clicks:          320,
			},
		},
		model.LevelProfessional: {
			{
				ID:              11,
				Title:           "전문가용 드론",
				Description:     "상업용 촬영을 위한 최고급 드론",
				Image:           "/professional-drone.jpg",
				Link:            "https://professional.com",
				BackgroundColor: "#1e40af",
				Type:            model.PlacementInline,
				Size:            "large",
				Category:        model.LevelProfessional,
				Price:           600000,
				Views:           8000,
				Clicks:          480,
			},
		},
	}
}
