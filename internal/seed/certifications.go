package seed

import "dronemarket/internal/model"

// Certifications 无人机驾驶资质静态参考数据
func Certifications() []model.Certification {
	return []model.Certification{
		{
			ID: 4, Name: "4종 (무인동력비행장치 4종조종자)",
			Weight:      "최대이륙중량 250g 초과 ~ 2kg 이하",
			Age:         "만 10세 이상",
			FlightHours: "없음",
			Test:        "없음",
			Education:   "온라인 교육 6시간",
			Icon:        "🎓", Color: "bg-green-500",
			Description: "취미용 소형 드론을 비행하는 분들에게 적합한 가장 기초적인 자격입니다. 별도의 시험 없이 온라인 교육만 이수하면 취득할 수 있습니다.",
		},
		{
			ID: 3, Name: "3종 (무인동력비행장치 3종조종자)",
			Weight:      "최대이륙중량 2kg 초과 ~ 7kg 이하",
			Age:         "만 14세 이상",
			FlightHours: "비행경력 6시간",
			Test:        "필기시험",
			Education:   "없음",
			Icon:        "✍️", Color: "bg-blue-500",
			Description: "조금 더 크고 무거운 기체를 다루기 위한 자격입니다. 필기시험에 합격하고, 전문교육기관에서 비행경력을 증명해야 합니다.",
		},
		{
			ID: 2, Name: "2종 (무인동력비행장치 2종조종자)",
			Weight:      "최대이륙중량 7kg 초과 ~ 25kg 이하",
			Age:         "만 14세 이상",
			FlightHours: "비행경력 10시간",
			Test:        "필기시험 + 실기시험",
			Education:   "없음",
			Icon:        "✈️", Color: "bg-purple-500",
			Description: "준전문가 수준의 자격으로, 방제, 항공측량 등 일부 상업적 활동에 사용될 수 있는 기체를 조종할 수 있습니다. 실기시험이 추가됩니다.",
		},
		{
			ID: 1, Name: "1종 (무인동력비행장치 1종조종자)",
			Weight:      "최대이륙중량 25kg 초과 ~ 150kg 이하",
			Age:         "만 14세 이상",
			FlightHours: "비행경력 20시간",
			Test:        "필기시험 + 실기시험",
			Education:   "없음",
			Icon:        "🚀", Color: "bg-red-500",
			Description: "모든 무인동력비행장치를 조종할 수 있는 최상위 자격입니다. 상업 운용과 교관 활동의 기본 요건입니다.",
		},
	}
}
