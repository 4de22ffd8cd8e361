package service

import "antoanmang_backend/internal/model"

// QuestionBankService phục vụ bộ đề read-only cho phía học sinh.
// Nhóm theo mục được tính một lần lúc khởi động vì bộ đề bất biến.
type QuestionBankService struct {
	bank     *model.QuestionBank
	sections []model.QuestionSection
}

func NewQuestionBankService(bank *model.QuestionBank) *QuestionBankService {
	return &QuestionBankService{
		bank:     bank,
		sections: bank.GroupedBySection(),
	}
}

func (s *QuestionBankService) Sections() []model.QuestionSection {
	return s.sections
}

func (s *QuestionBankService) Bank() *model.QuestionBank {
	return s.bank
}
