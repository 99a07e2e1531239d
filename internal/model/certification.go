package model

// Certification 无人机驾驶资质说明（静态参考数据）
type Certification struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Weight      string `json:"weight"` // 适用最大起飞重量区间
	Age         string `json:"age"`
	FlightHours string `json:"flightHours"`
	Test        string `json:"test"`
	Education   string `json:"education"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}
