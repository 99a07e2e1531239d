package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"dronemarket/internal/model"
)

// FavoriteRepository 收藏夹仓库接口。收藏夹是系统里唯一持久化的资源，
// 按用户隔离，配置了MySQL时落库，否则退化为内存存储。
type FavoriteRepository interface {
	Add(ctx context.Context, fav *model.Favorite) error
	Remove(ctx context.Context, userID, droneID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
	Exists(ctx context.Context, userID, droneID int64) (bool, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// mysqlFavoriteRepository MySQL收藏夹仓库
type mysqlFavoriteRepository struct {
	db *sqlx.DB
}

// favoriteRow favorites表行结构，商品快照以JSON存储
type favoriteRow struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	DroneID   int64     `db:"drone_id"`
	Snapshot  []byte    `db:"snapshot"`
	CreatedAt time.Time `db:"created_at"`
}

// NewMySQLFavoriteRepository 创建MySQL收藏夹仓库，并确保表存在
func NewMySQLFavoriteRepository(db *sqlx.DB) (FavoriteRepository, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS favorites (
			id VARCHAR(32) PRIMARY KEY,
			user_id BIGINT NOT NULL,
			drone_id BIGINT NOT NULL,
			snapshot JSON NOT NULL,
			created_at DATETIME NOT NULL,
			UNIQUE KEY uniq_user_drone (user_id, drone_id),
			KEY idx_user (user_id)
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &mysqlFavoriteRepository{db: db}, nil
}

// Add 新增收藏
func (r *mysqlFavoriteRepository) Add(ctx context.Context, fav *model.Favorite) error {
	snapshot, err := json.Marshal(fav.Drone)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO favorites (id, user_id, drone_id, snapshot, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query, fav.ID, fav.UserID, fav.DroneID, snapshot, fav.CreatedAt)
	return err
}

// Remove 取消收藏
func (r *mysqlFavoriteRepository) Remove(ctx context.Context, userID, droneID int64) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND drone_id = ?`
	res, err := r.db.ExecContext(ctx, query, userID, droneID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser 获取用户的收藏列表
func (r *mysqlFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	var rows []favoriteRow
	query := `SELECT * FROM favorites WHERE user_id = ? ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	favorites := make([]model.Favorite, 0, len(rows))
	for _, row := range rows {
		fav := model.Favorite{
			ID:        row.ID,
			UserID:    row.UserID,
			DroneID:   row.DroneID,
			CreatedAt: row.CreatedAt,
		}
		if err := json.Unmarshal(row.Snapshot, &fav.Drone); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// Exists 是否已收藏
func (r *mysqlFavoriteRepository) Exists(ctx context.Context, userID, droneID int64) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND drone_id = ?`
	err := r.db.GetContext(ctx, &count, query, userID, droneID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	return count > 0, nil
}

// CountByUser 用户收藏数量
func (r *mysqlFavoriteRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = ?`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

// memoryFavoriteRepository 内存收藏夹仓库（未配置数据库时的回退实现）
type memoryFavoriteRepository struct {
	mu        sync.RWMutex
	favorites map[int64][]model.Favorite // 按用户隔离
}

// NewMemoryFavoriteRepository 创建内存收藏夹仓库
func NewMemoryFavoriteRepository() FavoriteRepository {
	return &memoryFavoriteRepository{favorites: make(map[int64][]model.Favorite)}
}

func (r *memoryFavoriteRepository) Add(ctx context.Context, fav *model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.favorites[fav.UserID] {
		if f.DroneID == fav.DroneID {
			return ErrDuplicate
		}
	}
	r.favorites[fav.UserID] = append(r.favorites[fav.UserID], *fav)
	return nil
}

func (r *memoryFavoriteRepository) Remove(ctx context.Context, userID, droneID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.favorites[userID]
	for i, f := range list {
		if f.DroneID == droneID {
			r.favorites[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.favorites[userID]
	out := make([]model.Favorite, len(list))
	copy(out, list)
	// 与MySQL实现保持一致，按收藏时间倒序
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *memoryFavoriteRepository) Exists(ctx context.Context, userID, droneID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.favorites[userID] {
		if f.DroneID == droneID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFavoriteRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.favorites[userID]), nil
}
