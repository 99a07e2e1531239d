package model

import "time"

// 无人机适用级别
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelProfessional = "professional"
	LevelIndustrial   = "industrial"
)

// DroneLevels 所有适用级别
var DroneLevels = []string{LevelBeginner, LevelIntermediate, LevelProfessional, LevelIndustrial}

// DroneBrands 支持的品牌
var DroneBrands = []string{"DJI", "Parrot", "Autel", "Skydio", "Yuneec"}

// 机况
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like-new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
)

// 在售状态
const (
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusInactive = "inactive"
)

// Seller 卖家信息
type Seller struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Drone 二手无人机商品
type Drone struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Brand               string    `json:"brand"`
	Price               int64     `json:"price"`                   // 出售价格
	OriginalPrice       int64     `json:"originalPrice,omitempty"` // 原购入价格
	Negotiable          bool      `json:"negotiable"`              // 是否可议价
	MinPrice            int64     `json:"minPrice,omitempty"`      // 可接受最低价
	ReleaseYear         int       `json:"releaseYear"`
	PurchaseYear        int       `json:"purchaseYear,omitempty"`
	OwnerCount          int       `json:"ownerCount"`          // 第几手
	FlightDistance      float64   `json:"flightDistance"`      // 最大飞行距离(km)
	TotalFlightTime     float64   `json:"totalFlightTime"`     // 累计飞行时长(小时)
	TotalFlightDistance float64   `json:"totalFlightDistance"` // 累计飞行里程(km)
	Condition           string    `json:"condition"`
	Level               string    `json:"level"`
	Description         string    `json:"description"`
	Seller              Seller    `json:"seller"`
	SellerID            int64     `json:"sellerId,omitempty"`
	Location            string    `json:"location"`
	ImageURL            string    `json:"imageUrl"`
	PostedAt            time.Time `json:"postedAt"`
	Status              string    `json:"status"` // active / sold / inactive
	IsPremium           bool      `json:"isPremium,omitempty"`
}

// ValidLevel 级别是否合法
func ValidLevel(level string) bool {
	for _, l := range DroneLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ValidStatus 状态是否合法
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusSold || status == StatusInactive
}

// PaginatedDrones 分页商品列表
type PaginatedDrones struct {
	Total int     `json:"total"`
	Items []Drone `json:"items"`
}
