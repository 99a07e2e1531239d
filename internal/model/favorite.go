package model

import "time"

// Favorite 收藏记录，收藏时对商品做快照
type Favorite struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	DroneID   int64     `json:"droneId"`
	CreatedAt time.Time `json:"createdAt"`
	Drone     Drone     `json:"drone"`
}
