package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"

	// ExportTimeFormat: định dạng thời gian kiểu vi-VN trong file xuất.
	ExportTimeFormat = "02/01/2006 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// AdviceFallbackMessage hiển thị khi dịch vụ sinh lời khuyên lỗi; giọng
// điệu thông cảm, không lộ chi tiết kỹ thuật.
const AdviceFallbackMessage = "Rất tiếc, đã có lỗi xảy ra khi tạo lời khuyên. Vui lòng thử lại sau hoặc liên hệ giáo viên để được tư vấn trực tiếp."
