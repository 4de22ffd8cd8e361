package repository

import (
	"sync"

	"antoanmang_backend/internal/model"

	"gorm.io/gorm"
)

// SubmissionStore là giao diện hẹp của kho bài khảo sát: chỉ ghi thêm và
// đọc toàn bộ. Không có sửa/xoá — một bài đã nộp là sự kiện đã xảy ra.
type SubmissionStore interface {
	Append(sub *model.Submission) error
	FindAll() ([]model.Submission, error)
}

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Append(sub *model.Submission) error {
	return r.DB.Create(sub).Error
}

// FindAll trả về theo thứ tự ghi; sắp xếp mới-nhất-trước là việc của
// tầng hiển thị.
func (r *SubmissionRepository) FindAll() ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Order("timestamp asc").Find(&subs).Error
	return subs, err
}

// MemorySubmissionStore là kho dự phòng trong bộ nhớ, dùng khi CSDL
// không ghi được: luồng làm khảo sát vẫn chạy tiếp, dữ liệu chỉ sống
// trong vòng đời tiến trình.
type MemorySubmissionStore struct {
	mu   sync.Mutex
	subs []model.Submission
}

func NewMemorySubmissionStore() *MemorySubmissionStore {
	return &MemorySubmissionStore{}
}

func (s *MemorySubmissionStore) Append(sub *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub.ID == "" {
		sub.ID = model.NewSubmissionID()
	}
	s.subs = append(s.subs, *sub)
	return nil
}

func (s *MemorySubmissionStore) FindAll() ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Submission, len(s.subs))
	copy(out, s.subs)
	return out, nil
}
