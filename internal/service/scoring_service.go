package service

import (
	"sync"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/util"
)

// ScoringService chấm một bộ trả lời hoàn chỉnh thành tổng điểm và mức
// rủi ro. Hàm thuần: cùng một bộ trả lời luôn cho cùng một kết quả.
type ScoringService struct {
	Bank *model.QuestionBank

	mu              sync.RWMutex
	safeThreshold   int
	mediumThreshold int
}

func NewScoringService(bank *model.QuestionBank, safeThreshold, mediumThreshold int) *ScoringService {
	return &ScoringService{
		Bank:            bank,
		safeThreshold:   safeThreshold,
		mediumThreshold: mediumThreshold,
	}
}

// SetThresholds cập nhật ngưỡng khi config được nạp lại.
func (s *ScoringService) SetThresholds(safe, medium int) {
	if safe >= medium {
		return
	}
	s.mu.Lock()
	s.safeThreshold = safe
	s.mediumThreshold = medium
	s.mu.Unlock()
}

// Score yêu cầu answers có đúng một entry cho từng câu hỏi trong bộ đề
// và điểm phải là trọng số của một lựa chọn thuộc câu hỏi đó. Bộ trả
// lời dở dang là lỗi hợp đồng của phía gọi (UI phải chặn từ trước).
func (s *ScoringService) Score(answers map[string]int) (int, model.RiskLevel, error) {
	if len(answers) != len(s.Bank.Questions) {
		return 0, model.RiskNone, util.ErrIncompleteAnswerSet
	}

	total := 0
	for _, q := range s.Bank.Questions {
		score, ok := answers[q.ID]
		if !ok {
			return 0, model.RiskNone, util.ErrIncompleteAnswerSet
		}

		valid := false
		for _, opt := range q.Options {
			if opt.Score == score {
				valid = true
				break
			}
		}
		if !valid {
			return 0, model.RiskNone, util.ErrInvalidAnswer
		}

		total += score
	}

	return total, s.Classify(total), nil
}

// Classify ánh xạ tổng điểm vào mức rủi ro. Giá trị đúng bằng ngưỡng
// luôn rơi về mức thấp hơn.
func (s *ScoringService) Classify(total int) model.RiskLevel {
	s.mu.RLock()
	safe, medium := s.safeThreshold, s.mediumThreshold
	s.mu.RUnlock()

	switch {
	case total <= safe:
		return model.RiskSafe
	case total <= medium:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}
