package model

// 广告位类型
const (
	PlacementBanner  = "banner"
	PlacementSidebar = "sidebar"
	PlacementInline  = "inline"
)

// Placements 所有广告位类型
var Placements = []string{PlacementBanner, PlacementSidebar, PlacementInline}

// Ad 广告模型
type Ad struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	Link            string `json:"link"`
	BackgroundColor string `json:"backgroundColor"`
	Type            string `json:"type"`               // banner / sidebar / inline
	Size            string `json:"size,omitempty"`     // small / medium / large
	Category        string `json:"category,omitempty"` // 定向投放类别
	Sponsor         bool   `json:"sponsor,omitempty"`
	Price           int64  `json:"price"`  // 月广告费
	Views           int64  `json:"views"`  // 月预估浏览量
	Clicks          int64  `json:"clicks"` // 月预估点击量
}

// AdStats 广告汇总统计
type AdStats struct {
	TotalAds     int    `json:"totalAds"`
	TotalRevenue int64  `json:"totalRevenue"`
	TotalViews   int64  `json:"totalViews"`
	TotalClicks  int64  `json:"totalClicks"`
	AverageCTR   string `json:"averageCTR"` // 百分比，保留两位小数；浏览量为0时为"0"
}

// ValidPlacement 广告位类型是否合法
func ValidPlacement(placement string) bool {
	for _, p := range Placements {
		if p == placement {
			return true
		}
	}
	return false
}
