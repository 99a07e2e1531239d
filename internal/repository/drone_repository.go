package repository

import (
	"context"
	"sync"
	"time"

	"dronemarket/internal/model"
)

// DroneRepository 商品存储库，语料保存在内存中，进程重启即复位
type DroneRepository struct {
	mu     sync.RWMutex
	drones []model.Drone
	nextID int64
}

// NewDroneRepository 创建商品存储库实例
func NewDroneRepository(seed []model.Drone) *DroneRepository {
	var maxID int64
	for _, d := range seed {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	drones := make([]model.Drone, len(seed))
	copy(drones, seed)
	return &DroneRepository{drones: drones, nextID: maxID + 1}
}

// List 获取全部商品的副本
func (r *DroneRepository) List(ctx context.Context) ([]model.Drone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Drone, len(r.drones))
	copy(out, r.drones)
	return out, nil
}

// GetByID 根据ID获取商品
func (r *DroneRepository) GetByID(ctx context.Context, id int64) (*model.Drone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.drones {
		if d.ID == id {
			out := d
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建商品并分配ID
func (r *DroneRepository) Create(ctx context.Context, drone *model.Drone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	drone.ID = r.nextID
	r.nextID++
	if drone.PostedAt.IsZero() {
		drone.PostedAt = time.Now()
	}
	r.drones = append(r.drones, *drone)
	return nil
}

// UpdateStatus 更新在售状态
func (r *DroneRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.drones {
		if r.drones[i].ID == id {
			r.drones[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// Delete 删除商品
func (r *DroneRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.drones {
		if r.drones[i].ID == id {
			r.drones = append(r.drones[:i], r.drones[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
