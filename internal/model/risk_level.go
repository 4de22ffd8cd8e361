package model

// RiskLevel phân loại kết quả khảo sát của một học sinh.
// NONE chỉ dùng làm placeholder trước khi nộp bài, không bao giờ được lưu.
type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskSafe
	RiskMedium
	RiskHigh
)

func (l RiskLevel) Valid() bool {
	return l >= RiskSafe && l <= RiskHigh
}

// Label trả về nhãn tiếng Việt hiển thị cho giáo viên và file xuất.
func (l RiskLevel) Label() string {
	switch l {
	case RiskSafe:
		return "An Toàn"
	case RiskMedium:
		return "Rủi ro TB"
	case RiskHigh:
		return "Rủi ro Cao"
	default:
		return "Không xác định"
	}
}
