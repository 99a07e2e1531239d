package seed

import (
	"time"

	"dronemarket/internal/model"
)

// Drones 二手无人机样例语料
func Drones() []model.Drone {
	return []model.Drone{
		{
			ID: 1, Name: "DJI Mini 3 Pro", Brand: "DJI",
			Price: 850000, OriginalPrice: 1090000, Negotiable: true, MinPrice: 800000,
			ReleaseYear: 2022, PurchaseYear: 2023, OwnerCount: 1,
			FlightDistance: 12, TotalFlightTime: 25, TotalFlightDistance: 180,
			Condition: model.ConditionLikeNew, Level: model.LevelBeginner,
			Description: "박스 포함 풀세트, 기스 없이 깨끗합니다. 프로펠러 가드 포함.",
			Seller:      model.Seller{Name: "김드론", Rating: 4.8}, SellerID: 1,
			Location: "서울 강남구", ImageURL: "/drones/mini3pro.jpg",
			PostedAt: time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC),
			Status:   model.StatusActive, IsPremium: true,
		},
		{
			ID: 2, Name: "DJI Air 2S", Brand: "DJI",
			Price: 720000, OriginalPrice: 1290000, Negotiable: false,
			ReleaseYear: 2021, PurchaseYear: 2021, OwnerCount: 2,
			FlightDistance: 18.5, TotalFlightTime: 90, TotalFlightDistance: 820,
			Condition: model.ConditionGood, Level: model.LevelIntermediate,
			Description: "1인치 센서, 영상용으로 사용했습니다. 배터리 3개 포함.",
			Seller:      model.Seller{Name: "하늘사랑", Rating: 4.5}, SellerID: 2,
			Location: "경기 성남시", ImageURL: "/drones/air2s.jpg",
			PostedAt: time.Date(2024, 5, 18, 14, 0, 0, 0, time.UTC),
			Status:   model.StatusActive,
		},
		{
			ID: 3, Name: "Parrot Anafi", Brand: "Parrot",
			Price: 380000, OriginalPrice: 699000, Negotiable: true, MinPrice: 350000,
			ReleaseYear: 2018, PurchaseYear: 2020, OwnerCount: 2,
			FlightDistance: 4, TotalFlightTime: 60, TotalFlightDistance: 150,
			Condition: model.ConditionFair, Level: model.LevelBeginner,
			Description: "4K HDR 촬영 가능, 짐벌 상태 양호. 가방 포함.",
			Seller:      model.Seller{Name: "비행소년", Rating: 4.2}, SellerID: 3,
			Location: "부산 해운대구", ImageURL: "/drones/anafi.jpg",
			PostedAt: time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
			Status:   model.StatusActive,
		},
		{
			ID: 4, Name: "Autel EVO Lite+", Brand: "Autel",
			Price: 980000, OriginalPrice: 1650000, Negotiable: false,
			ReleaseYear: 2022, OwnerCount: 1,
			FlightDistance: 24, TotalFlightTime: 40, TotalFlightDistance: 380,
			Condition: model.ConditionLikeNew, Level: model.LevelProfessional,
			Description: "야간 촬영 특화, 1인치 센서. 상업 촬영용으로 추천합니다.",
			Seller:      model.Seller{Name: "프로촬영가", Rating: 4.9}, SellerID: 2,
			Location: "서울 마포구", ImageURL: "/drones/evolite.jpg",
			PostedAt: time.Date(2024, 5, 21, 19, 45, 0, 0, time.UTC),
			Status:   model.StatusActive, IsPremium: true,
		},
		{
			ID: 5, Name: "Skydio 2+", Brand: "Skydio",
			Price: 1250000, Negotiable: true, MinPrice: 1100000,
			ReleaseYear: 2022, PurchaseYear: 2022, OwnerCount: 1,
			FlightDistance: 6, TotalFlightTime: 30, TotalFlightDistance: 120,
			Condition: model.ConditionGood, Level: model.LevelProfessional,
			Description: "자율비행 최강, 장애물 회피 완벽. 미국 직구 제품입니다.",
			Seller:      model.Seller{Name: "김드론", Rating: 4.8}, SellerID: 1,
			Location: "인천 연수구", ImageURL: "/drones/skydio2.jpg",
			PostedAt: time.Date(2024, 5, 10, 11, 20, 0, 0, time.UTC),
			Status:   model.StatusActive,
		},
		{
			ID: 6, Name: "Yuneec Typhoon H520", Brand: "Yuneec",
			Price: 2800000, OriginalPrice: 4500000, Negotiable: true, MinPrice: 2500000,
			ReleaseYear: 2019, PurchaseYear: 2020, OwnerCount: 3,
			FlightDistance: 3.5, TotalFlightTime: 210, TotalFlightDistance: 600,
			Condition: model.ConditionFair, Level: model.LevelIndustrial,
			Description: "산업용 헥사콥터, 열화상 카메라 포함. 점검 완료.",
			Seller:      model.Seller{Name: "산업드론몰", Rating: 4.6}, SellerID: 4,
			Location: "대전 유성구", ImageURL: "/drones/typhoonh.jpg",
			PostedAt: time.Date(2024, 4, 28, 16, 0, 0, 0, time.UTC),
			Status:   model.StatusActive,
		},
		{
			ID: 7, Name: "DJI Mavic 3", Brand: "DJI",
			Price: 1680000, OriginalPrice: 2390000, Negotiable: false,
			ReleaseYear: 2021, PurchaseYear: 2022, OwnerCount: 1,
			FlightDistance: 30, TotalFlightTime: 55, TotalFlightDistance: 510,
			Condition: model.ConditionGood, Level: model.LevelProfessional,
			Description: "핫셀블라드 카메라, ND필터 세트 포함. 판매 완료되었습니다.",
			Seller:      model.Seller{Name: "하늘사랑", Rating: 4.5}, SellerID: 2,
			Location: "경기 수원시", ImageURL: "/drones/mavic3.jpg",
			PostedAt: time.Date(2024, 4, 20, 13, 10, 0, 0, time.UTC),
			Status:   model.StatusSold,
		},
		{
			ID: 8, Name: "DJI Phantom 4 Pro", Brand: "DJI",
			Price: 550000, OriginalPrice: 1890000, Negotiable: true, MinPrice: 480000,
			ReleaseYear: 2016, PurchaseYear: 2017, OwnerCount: 2,
			FlightDistance: 7, TotalFlightTime: 300, TotalFlightDistance: 1500,
			Condition: model.ConditionFair, Level: model.LevelIntermediate,
			Description: "구형이지만 카메라 성능 건재. 배터리 2개, 수리 이력 있음.",
			Seller:      model.Seller{Name: "비행소년", Rating: 4.2}, SellerID: 3,
			Location: "대구 수성구", ImageURL: "/drones/phantom4.jpg",
			PostedAt: time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC),
			Status:   model.StatusInactive,
		},
	}
}
