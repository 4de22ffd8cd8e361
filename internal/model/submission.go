package model

import (
	"gorm.io/gorm"
)

// StudentInfo là thông tin học sinh khai trước khi làm khảo sát.
// Các trường đều bắt buộc (sau khi trim).
type StudentInfo struct {
	Name      string `gorm:"size:255;not null" json:"name"`
	ClassName string `gorm:"size:100;not null" json:"className"`
	School    string `gorm:"size:255;not null" json:"school"`
	Province  string `gorm:"size:100;not null" json:"province"`
}

// Submission là một bài khảo sát đã hoàn thành. Tạo đúng một lần khi nộp
// bài và không bao giờ sửa sau đó; RiskLevel không bao giờ là NONE.
type Submission struct {
	ID string `gorm:"primaryKey;type:varchar(40)" json:"id"`
	StudentInfo
	Score     int       `gorm:"not null" json:"score"`
	RiskLevel RiskLevel `gorm:"not null" json:"riskLevel"`
	// Timestamp là thời điểm nộp bài, epoch milliseconds.
	Timestamp int64 `gorm:"not null;index" json:"timestamp"`
	// SchemaVersion để dành cho migration lược đồ về sau.
	SchemaVersion int `gorm:"default:1" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewSubmissionID()
	}
	return nil
}
