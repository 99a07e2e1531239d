package seed

import (
	"time"

	"dronemarket/internal/model"
)

// Posts 社区帖子样例语料
func Posts() []model.Post {
	return []model.Post{
		{
			ID: 1, AuthorID: 1, Author: "김드론",
			Title:    "드론 입문자를 위한 기체 추천",
			Content:  "처음 시작하신다면 250g 미만 기체로 시작하는 것을 추천합니다. 신고 의무가 없고 다루기 쉽습니다.",
			Category: "자유게시판",
			CreatedAt: time.Date(2024, 5, 22, 9, 30, 0, 0, time.UTC),
			Likes:     42, Views: 530, Comments: 18,
		},
		{
			ID: 2, AuthorID: 2, Author: "하늘사랑",
			Title:    "한강 드론 비행 가능 구역 정리",
			Content:  "한강공원 드론 비행장 위치와 이용 수칙을 정리했습니다. 비행 전 꼭 확인하세요.",
			Category: "자유게시판",
			CreatedAt: time.Date(2024, 5, 21, 18, 0, 0, 0, time.UTC),
			Likes:     77, Views: 1240, Comments: 35,
		},
		{
			ID: 3, AuthorID: 4, Author: "산업드론몰",
			Title:    "방제 드론 조종 인력 구합니다",
			Content:  "1종 자격 보유자 우대, 지방 출장 가능하신 분. 경력 무관.",
			Category: "구인",
			CreatedAt: time.Date(2024, 5, 20, 11, 0, 0, 0, time.UTC),
			Likes:     5, Views: 310, Comments: 7,
		},
		{
			ID: 4, AuthorID: 3, Author: "비행소년",
			Title:    "중고 거래 시 배터리 사이클 확인법",
			Content:  "앱에서 배터리 충전 횟수를 확인하는 방법과 교체 기준을 공유합니다.",
			Category: "기타",
			CreatedAt: time.Date(2024, 5, 19, 20, 15, 0, 0, time.UTC),
			Likes:     63, Views: 890, Comments: 22,
		},
		{
			ID: 5, AuthorID: 2, Author: "하늘사랑",
			Title:    "촬영 보조 단기 알바 모집",
			Content:  "주말 행사 촬영 보조 구합니다. 드론 경험 없어도 됩니다.",
			Category: "구인",
			CreatedAt: time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC),
			Likes:     3, Views: 150, Comments: 2,
		},
		{
			ID: 6, AuthorID: 1, Author: "김드론",
			Title:    "기체 등록 절차 후기",
			Content:  "2kg 초과 기체 등록해봤습니다. 서류 준비부터 승인까지 일주일 걸렸네요.",
			Category: "기타",
			CreatedAt: time.Date(2024, 5, 12, 15, 40, 0, 0, time.UTC),
			Likes:     28, Views: 460, Comments: 11,
		},
	}
}
