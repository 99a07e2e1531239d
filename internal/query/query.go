// Package query 实现商品与帖子的内存过滤、排序、分页。
// 所有函数均为纯函数，不修改传入的切片，重复调用结果一致。
package query

import (
	"sort"
	"strings"

	"dronemarket/internal/model"
)

// 排序方式
const (
	SortLatest    = "latest"    // 按发布时间倒序
	SortPopular   = "popular"   // 按热度倒序
	SortViews     = "views"     // 按浏览量倒序
	SortPriceAsc  = "priceAsc"  // 按价格升序
	SortPriceDesc = "priceDesc" // 按价格降序
)

// DroneFilter 商品过滤条件，零值字段表示不限制
type DroneFilter struct {
	Brand       string  // 品牌精确匹配
	Level       string  // 适用级别精确匹配
	MinPrice    int64   // 价格下限（含）
	MaxPrice    int64   // 价格上限（含），0表示不限
	MinDistance float64 // 最大飞行距离下限（含）
	MaxDistance float64 // 最大飞行距离上限（含），0表示不限
	Keyword     string  // 关键词，对名称/品牌/描述/地区做不区分大小写的子串匹配
	Status      string  // 在售状态，浏览场景传active，卖家管理场景留空
	SellerID    int64   // 卖家ID，0表示不限
}

// Matches 商品是否满足所有过滤条件（各条件为与关系）
func (f DroneFilter) Matches(d model.Drone) bool {
	if f.Brand != "" && d.Brand != f.Brand {
		return false
	}
	if f.Level != "" && d.Level != f.Level {
		return false
	}
	if d.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && d.Price > f.MaxPrice {
		return false
	}
	if d.FlightDistance < f.MinDistance {
		return false
	}
	if f.MaxDistance > 0 && d.FlightDistance > f.MaxDistance {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.SellerID != 0 && d.SellerID != f.SellerID {
		return false
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		// 关键词在任意一个文本字段命中即可
		if !strings.Contains(strings.ToLower(d.Name), kw) &&
			!strings.Contains(strings.ToLower(d.Brand), kw) &&
			!strings.Contains(strings.ToLower(d.Description), kw) &&
			!strings.Contains(strings.ToLower(d.Location), kw) {
			return false
		}
	}
	return true
}

// DroneSort 商品排序方式
type DroneSort struct {
	Key          string
	PremiumFirst bool // 置顶推广商品，推广与普通各自内部保持Key的顺序
}

// Drones 过滤并排序商品，返回新切片，不修改corpus
func Drones(corpus []model.Drone, f DroneFilter, s DroneSort) []model.Drone {
	result := make([]model.Drone, 0, len(corpus))
	for _, d := range corpus {
		if f.Matches(d) {
			result = append(result, d)
		}
	}

	less := droneLess(s.Key)
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if s.PremiumFirst && a.IsPremium != b.IsPremium {
			return a.IsPremium
		}
		return less(a, b)
	})
	return result
}

// droneLess 返回排序比较函数，相等时返回false以保持稳定性
func droneLess(key string) func(a, b model.Drone) bool {
	switch key {
	case SortPriceAsc:
		return func(a, b model.Drone) bool { return a.Price < b.Price }
	case SortPriceDesc:
		return func(a, b model.Drone) bool { return a.Price > b.Price }
	case SortLatest, SortPopular, "":
		// 商品没有点赞数，热度排序退化为发布时间倒序，推广置顶由PremiumFirst承担
		return func(a, b model.Drone) bool { return a.PostedAt.After(b.PostedAt) }
	default:
		return func(a, b model.Drone) bool { return a.PostedAt.After(b.PostedAt) }
	}
}

// PostFilter 帖子过滤条件，零值字段表示不限制
type PostFilter struct {
	Category string // 板块类别，"전체"或"all"表示不限
	Keyword  string // 对标题/内容/作者做不区分大小写的子串匹配
	AuthorID int64  // 作者ID，0表示不限
}

// Matches 帖子是否满足所有过滤条件
func (f PostFilter) Matches(p model.Post) bool {
	if f.Category != "" && f.Category != model.CategoryAll && f.Category != "all" &&
		p.Category != f.Category {
		return false
	}
	if f.AuthorID != 0 && p.AuthorID != f.AuthorID {
		return false
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(p.Title), kw) &&
			!strings.Contains(strings.ToLower(p.Content), kw) &&
			!strings.Contains(strings.ToLower(p.Author), kw) {
			return false
		}
	}
	return true
}

// PostSort 帖子排序方式
type PostSort struct {
	Key             string
	ViewsByComments bool // views排序以评论数为依据而非浏览量
}

// Posts 过滤并排序帖子，返回新切片，不修改corpus
func Posts(corpus []model.Post, f PostFilter, s PostSort) []model.Post {
	result := make([]model.Post, 0, len(corpus))
	for _, p := range corpus {
		if f.Matches(p) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch s.Key {
		case SortPopular:
			return a.Likes > b.Likes
		case SortViews:
			if s.ViewsByComments {
				return a.Comments > b.Comments
			}
			return a.Views > b.Views
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return result
}

// Paginate 对已排序结果做分页切片，page从1开始
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
