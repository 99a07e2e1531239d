package query

import (
	"testing"
	"time"

	"dronemarket/internal/model"
)

func testDrones() []model.Drone {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []model.Drone{
		{ID: 1, Name: "Mavic 3 Pro", Brand: "DJI", Price: 1500000, FlightDistance: 15, Level: model.LevelProfessional, Status: model.StatusActive, PostedAt: base.Add(4 * 24 * time.Hour)},
		{ID: 2, Name: "Mini 4 Pro", Brand: "DJI", Price: 700000, FlightDistance: 10, Level: model.LevelBeginner, Status: model.StatusActive, PostedAt: base.Add(3 * 24 * time.Hour)},
		{ID: 3, Name: "EVO Lite+", Brand: "Autel", Price: 900000, FlightDistance: 12, Level: model.LevelIntermediate, Status: model.StatusActive, PostedAt: base.Add(2 * 24 * time.Hour), IsPremium: true},
		{ID: 4, Name: "Anafi", Brand: "Parrot", Price: 500000, FlightDistance: 4, Level: model.LevelBeginner, Status: model.StatusSold, PostedAt: base.Add(24 * time.Hour)},
		{ID: 5, Name: "Air 3", Brand: "DJI", Price: 900000, FlightDistance: 20, Level: model.LevelIntermediate, Status: model.StatusActive, PostedAt: base},
	}
}

func TestDroneFilterConjunction(t *testing.T) {
	corpus := testDrones()
	f := DroneFilter{
		Brand:    "DJI",
		MinPrice: 600000,
		MaxPrice: 1000000,
		Status:   model.StatusActive,
	}

	got := Drones(corpus, f, DroneSort{Key: SortLatest})
	if len(got) != 2 {
		t.Fatalf("期望2条结果，实际%d条", len(got))
	}
	for _, d := range got {
		if d.Brand != "DJI" || d.Price < 600000 || d.Price > 1000000 {
			t.Errorf("商品%d不满足过滤条件", d.ID)
		}
	}
}

func TestDroneFilterZeroValueMeansUnbounded(t *testing.T) {
	corpus := testDrones()
	got := Drones(corpus, DroneFilter{}, DroneSort{Key: SortLatest})
	if len(got) != len(corpus) {
		t.Fatalf("空过滤条件应返回全部%d条，实际%d条", len(corpus), len(got))
	}
}

func TestDroneFilterMinAboveMax(t *testing.T) {
	corpus := testDrones()
	got := Drones(corpus, DroneFilter{MinPrice: 2000000, MaxPrice: 1000000}, DroneSort{})
	if len(got) != 0 {
		t.Fatalf("下限高于上限时应返回空结果，实际%d条", len(got))
	}
}

func TestDroneFilterKeyword(t *testing.T) {
	corpus := testDrones()
	got := Drones(corpus, DroneFilter{Keyword: "mavic"}, DroneSort{})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("关键词匹配应不区分大小写且命中商品1，实际%v", got)
	}
}

func TestDroneSortPriceStable(t *testing.T) {
	corpus := testDrones()
	got := Drones(corpus, DroneFilter{Status: model.StatusActive}, DroneSort{Key: SortPriceAsc})

	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("价格升序被破坏: %d在%d之前", got[i-1].Price, got[i].Price)
		}
	}
	// 商品3和5价格相同，稳定排序应保持原始相对顺序
	var first, second int64
	for _, d := range got {
		if d.Price == 900000 {
			if first == 0 {
				first = d.ID
			} else {
				second = d.ID
			}
		}
	}
	if first != 3 || second != 5 {
		t.Errorf("相同价格应保持输入顺序3,5，实际%d,%d", first, second)
	}
}

func TestDroneSortPremiumFirst(t *testing.T) {
	corpus := testDrones()
	got := Drones(corpus, DroneFilter{Status: model.StatusActive}, DroneSort{Key: SortPriceAsc, PremiumFirst: true})

	if !got[0].IsPremium {
		t.Fatal("推广商品应排在最前")
	}
	// 推广分区之后的普通商品仍按价格升序
	rest := got[1:]
	for i := 1; i < len(rest); i++ {
		if rest[i-1].Price > rest[i].Price {
			t.Errorf("普通商品分区内价格升序被破坏")
		}
	}
}

func TestDronesDoesNotMutateCorpus(t *testing.T) {
	corpus := testDrones()
	firstID := corpus[0].ID
	Drones(corpus, DroneFilter{}, DroneSort{Key: SortPriceAsc})
	if corpus[0].ID != firstID {
		t.Fatal("排序不应修改原始切片")
	}
}

func testPosts() []model.Post {
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return []model.Post{
		{ID: 1, Title: "드론 입문 질문", Author: "김철수", Category: "자유게시판", Likes: 5, Views: 100, Comments: 3, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, Title: "촬영 기사 구합니다", Author: "이영희", Category: "구인", Likes: 10, Views: 50, Comments: 8, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Title: "중고 거래 후기", Author: "박민수", Category: "기타", Likes: 2, Views: 200, Comments: 1, CreatedAt: base},
	}
}

func TestPostFilterCategorySentinel(t *testing.T) {
	corpus := testPosts()
	if got := Posts(corpus, PostFilter{Category: model.CategoryAll}, PostSort{}); len(got) != len(corpus) {
		t.Errorf("全部板块应返回所有帖子，实际%d条", len(got))
	}
	if got := Posts(corpus, PostFilter{Category: "구인"}, PostSort{}); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("板块筛选应只命中帖子2")
	}
}

func TestPostSortKeys(t *testing.T) {
	corpus := testPosts()

	latest := Posts(corpus, PostFilter{}, PostSort{Key: SortLatest})
	if latest[0].ID != 1 {
		t.Errorf("最新排序首位应为帖子1，实际%d", latest[0].ID)
	}

	popular := Posts(corpus, PostFilter{}, PostSort{Key: SortPopular})
	if popular[0].ID != 2 {
		t.Errorf("热度排序首位应为帖子2，实际%d", popular[0].ID)
	}

	views := Posts(corpus, PostFilter{}, PostSort{Key: SortViews})
	if views[0].ID != 3 {
		t.Errorf("浏览量排序首位应为帖子3，实际%d", views[0].ID)
	}

	byComments := Posts(corpus, PostFilter{}, PostSort{Key: SortViews, ViewsByComments: true})
	if byComments[0].ID != 2 {
		t.Errorf("评论数排序首位应为帖子2，实际%d", byComments[0].ID)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := Paginate(items, 1, 2); len(got) != 2 || got[0] != 1 {
		t.Errorf("第1页应为[1 2]，实际%v", got)
	}
	if got := Paginate(items, 3, 2); len(got) != 1 || got[0] != 5 {
		t.Errorf("第3页应为[5]，实际%v", got)
	}
	if got := Paginate(items, 4, 2); len(got) != 0 {
		t.Errorf("越界页应返回空切片，实际%v", got)
	}
	if got := Paginate(items, 0, 0); len(got) != 5 {
		t.Errorf("非法分页参数应回退默认值，实际%v", got)
	}
}
