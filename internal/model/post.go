package model

import "time"

// CategoryAll 表示不限类别的哨兵值
const CategoryAll = "전체"

// PostCategories 社区板块类别
var PostCategories = []string{CategoryAll, "자유게시판", "구인", "기타"}

// Post 社区帖子
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int64     `json:"likes"`
	Views     int64     `json:"views"`
	Comments  int64     `json:"comments"`
	Image     string    `json:"image,omitempty"`
}

// ValidCategory 类别是否在板块列表中（不含哨兵值）
func ValidCategory(category string) bool {
	for _, c := range PostCategories {
		if c == category && c != CategoryAll {
			return true
		}
	}
	return false
}

// PaginatedPosts 分页帖子列表
type PaginatedPosts struct {
	Total int    `json:"total"`
	Items []Post `json:"items"`
}
