package models

import "github.com/shopspring/decimal"

// Actor identifies who performed/registered a ledger action.
type Actor struct {
	ID   string
	Name string
}

var (
	StaffActor = Actor{ID: "badbergjr", Name: "박대리"}
	AdminActor = Actor{ID: "hyl0610", Name: "황팀장"}
)

func price(won int64) decimal.Decimal { return decimal.NewFromInt(won) }

// DefaultCatalogue is the embedded G2B item master (18 generic entries).
// The enterprise server is kept separate: it bypasses the generic simulation.
var DefaultCatalogue = []CatalogueItem{
	// IT / computing
	{ClassificationCode: "43211503", IdentifierCode: "24343967", DisplayName: "노트북컴퓨터", ModelDescription: "노트북컴퓨터, Dell, (CN)Latitude 3520-5110H, Intel Core i5 1135G7(2.4GHz), 액세서리별도", DepreciationYears: 6, BaseUnitPrice: price(1133000)},
	{ClassificationCode: "43211503", IdentifierCode: "24510198", DisplayName: "노트북컴퓨터", ModelDescription: "노트북컴퓨터, Lenovo, (CN)82JBS00300, Intel Celeron N5100(1.1GHz), 액세서리별도", DepreciationYears: 6, BaseUnitPrice: price(555000)},
	{ClassificationCode: "43211507", IdentifierCode: "24355228", DisplayName: "데스크톱컴퓨터", ModelDescription: "데스크톱컴퓨터, Dell, (CN)OptiPlex 5090, Intel Core i5 10505(3.1GHz)", DepreciationYears: 5, BaseUnitPrice: price(2627000)},
	{ClassificationCode: "43211507", IdentifierCode: "24158946", DisplayName: "데스크톱컴퓨터", ModelDescription: "데스크톱컴퓨터, 서버앤컴퓨터, DECA-N3802, Intel Core i3 10100(3.6GHz)", DepreciationYears: 5, BaseUnitPrice: price(546000)},
	{ClassificationCode: "43211902", IdentifierCode: "24407366", DisplayName: "액정모니터", ModelDescription: "액정모니터, 엘지전자, 27MP500W, 68.6cm", DepreciationYears: 5, BaseUnitPrice: price(513000)},
	{ClassificationCode: "43212105", IdentifierCode: "23858386", DisplayName: "레이저프린터", ModelDescription: "레이저프린터, HP, (JP)HP Color LaserJet Enterprise M856dn, A3/컬러56/흑백56ppm", DepreciationYears: 6, BaseUnitPrice: price(3465000)},
	{ClassificationCode: "43211711", IdentifierCode: "24204348", DisplayName: "스캐너", ModelDescription: "스캐너, Kodak alaris, (CN)S3100F, 600dpi", DepreciationYears: 6, BaseUnitPrice: price(5500000)},
	{ClassificationCode: "43222609", IdentifierCode: "23908131", DisplayName: "네트워크라우터", ModelDescription: "43222609 네트워크라우터", DepreciationYears: 9, BaseUnitPrice: price(542000)},
	{ClassificationCode: "43201803", IdentifierCode: "23809899", DisplayName: "하드디스크드라이브", ModelDescription: "하드디스크드라이브, Hitachi vantara, (US)R2H-H10RSS, 10TB", DepreciationYears: 7, BaseUnitPrice: price(5340000)},
	{ClassificationCode: "43223308", IdentifierCode: "22060848", DisplayName: "네트워크시스템장비용랙", ModelDescription: "네트워크시스템장비용랙, 600×2000×750mm", DepreciationYears: 10, BaseUnitPrice: price(891700)},

	// Office / instructional / furniture
	{ClassificationCode: "56101703", IdentifierCode: "25114372", DisplayName: "책상", ModelDescription: "책상, 우드림, WD-WIZDE100, 2700×2150×750mm, 1인용", DepreciationYears: 9, BaseUnitPrice: price(6000000)},
	{ClassificationCode: "56112102", IdentifierCode: "24128496", DisplayName: "작업용의자", ModelDescription: "작업용의자, 오피스안건사, AC-051, 513×520×783mm", DepreciationYears: 8, BaseUnitPrice: price(93000)},
	{ClassificationCode: "56112108", IdentifierCode: "24917370", DisplayName: "책상용콤비의자", ModelDescription: "책걸상, 애니체, AMD-WT100A, 617×790×850mm", DepreciationYears: 10, BaseUnitPrice: price(465000)},
	{ClassificationCode: "56121798", IdentifierCode: "25616834", DisplayName: "칠판보조장", ModelDescription: "칠판보조장, 우드림, WR-BSC7040, 7000×300×3000mm", DepreciationYears: 7, BaseUnitPrice: price(10500000)},
	{ClassificationCode: "44111911", IdentifierCode: "25460962", DisplayName: "인터랙티브화이트보드및액세서리", ModelDescription: "인터랙티브화이트보드, 미래디스플레이, MDI86110, 279.4cm, IR센서/손/도구/LED", DepreciationYears: 7, BaseUnitPrice: price(24200000)},

	// Small / misc electronics
	{ClassificationCode: "45121504", IdentifierCode: "25468676", DisplayName: "디지털카메라", ModelDescription: "디지털카메라, Nikon, (TH)Z6 III, 2450만화소", DepreciationYears: 8, BaseUnitPrice: price(2980000)},
	{ClassificationCode: "44101503", IdentifierCode: "25652906", DisplayName: "다기능복사기", ModelDescription: "다기능복사기, Brother, (PH)DCP-T830DW, A4/흑백17/컬러16.5ipm", DepreciationYears: 8, BaseUnitPrice: price(450000)},
	{ClassificationCode: "40161602", IdentifierCode: "25676461", DisplayName: "공기청정기", ModelDescription: "공기청정기, 엘지전자, AS235DWSP, 74.7㎡, 51W", DepreciationYears: 9, BaseUnitPrice: price(840000)},
}

// ServerItem is the special-cased enterprise server hardware.
var ServerItem = CatalogueItem{
	ClassificationCode: "43232902",
	IdentifierCode:     "25461942",
	DisplayName:        "통신서버소프트웨어",
	ModelDescription:   "통신소프트웨어, 세인트로그, SMART-CM V1.5, 통합방송솔루션, 1~4Core(Server)",
	DepreciationYears:  6,
	BaseUnitPrice:      price(60000000),
}

// DefaultDepartments is the embedded department registry. Scale weight drives
// how much of each item category the department owns.
var DefaultDepartments = []Department{
	{Code: "C354", Name: "소프트웨어융합대학RC행정팀(ERICA)", ScaleWeight: 1.8},
	{Code: "C352", Name: "공학대학RC행정팀(ERICA)", ScaleWeight: 1.6},
	{Code: "C364", Name: "경상대학RC행정팀(ERICA)", ScaleWeight: 1.2},
	{Code: "C360", Name: "글로벌문화통상대학RC행정팀(ERICA)", ScaleWeight: 1.2},
	{Code: "A351", Name: "시설팀(ERICA)", ScaleWeight: 1.0},
	{Code: "A320", Name: "학생지원팀(ERICA)", ScaleWeight: 1.2},
}

// ServerAllocation pins the special-case server fleet to departments.
type ServerAllocation struct {
	DepartmentCode string
	Quantity       int
}

var DefaultServerAllocations = []ServerAllocation{
	{DepartmentCode: "A351", Quantity: 2},
	{DepartmentCode: "A320", Quantity: 1},
}

// Remark templates by item display name, used for small (non-bulk) purchases.
var RemarkTemplatesByItem = map[string][]string{
	"노트북컴퓨터":  {"AI 실습 수업용 노트북", "전산 실습실 공용 장비", "교수·연구원 업무용", "학과 공용 전산 자산"},
	"데스크톱컴퓨터": {"전산 실습실 고정형 PC", "연구실 분석 업무용", "행정 업무용 데스크톱"},
	"액정모니터":   {"전산 실습실 보조 모니터", "사무환경 개선용", "연구실 다중 화면 구성용"},
	"허브":      {"전산망 확충용", "실습실 네트워크 구성용"},
	"네트워크라우터": {"실습실 네트워크 증설", "학과 전산망 고도화"},
	"하드디스크드라이브":  {"연구 데이터 저장용", "서버 증설용 스토리지"},
	"플래시메모리저장장치": {"교육 자료 배포용", "백업 매체"},
	"스캐너":       {"행정 문서 전산화", "자료 디지털 아카이빙"},
	"레이저프린터":    {"행정 문서 출력용", "학과 공용 프린터"},
	"책상":        {"강의실 환경 개선", "연구실 집기 교체", "신규 연구실 구축"},
	"작업용의자":     {"사무환경 개선", "노후 집기 교체"},
	"책상용콤비의자":   {"강의실 집기 교체", "노후 책걸상 교체"},
	"서랍형수납장":    {"연구실 문서 보관용", "행정 자료 수납용"},
	"칠판보조장":     {"강의실 기자재 보강", "노후 기자재 교체"},
	"인터랙티브화이트보드및액세서리": {"스마트 강의실 구축", "디지털 강의 환경 개선"},
	"다기능복사기": {"보안 문서 파기용", "사무실 비치용"},
	"디지털카메라": {"홍보팀 촬영 지원", "현장 기록용", "행사 기록용"},
	"공기청정기":  {"사무실 환경 개선", "강의실 미세먼지 관리"},
}

// RejectionReasons a procurement request may bounce with.
var RejectionReasons = []string{"예산 초과", "규격 불일치", "재고 활용 권고", "사업 타당성 재검토"}

// BulkComputingSites flavor bulk PC/monitor purchase remarks.
var BulkComputingSites = []string{"제1실습실", "제2실습실", "AI센터", "SW교육실", "종합설계실"}

const (
	BulkFurnitureRemark = "노후 강의실 집기 일괄 교체"
	BulkGenericRemark   = "학과 공용 기자재 확충"
)

// Return reasons (administrative triggers) and their draw weights.
var (
	ReturnReasonProjectEnd = "사업종료"
	ReturnReasonSurplus    = "잉여물품"
	ReturnReasonShared     = "공용전환"

	ReturnReasons       = []string{ReturnReasonProjectEnd, ReturnReasonSurplus, ReturnReasonShared}
	ReturnReasonWeights = []float64{0.6, 0.15, 0.25}
)

// Disuse reasons: physical ones fire on natural end-of-life, administrative
// ones on return cascades.
var (
	DisuseReasonBroken     = "고장/파손"
	DisuseReasonAging      = "노후화(성능저하)"
	DisuseReasonRepairCost = "수리비용과다"

	PhysicalDisuseReasons = []string{DisuseReasonBroken, DisuseReasonAging, DisuseReasonRepairCost}

	DisuseReasonNoReceiver = "활용부서부재"
	DisuseReasonObsolete   = "구형화"

	ServerDisuseReason = "내구연한 경과(노후화)"
)
