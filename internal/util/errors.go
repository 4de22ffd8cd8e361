package util

import "errors"

var (
	// ErrIncompleteAnswerSet: bộ câu trả lời thiếu hoặc thừa câu hỏi so
	// với bộ đề. Đây là lỗi hợp đồng của phía gọi, engine không chấm
	// bộ trả lời dở dang.
	ErrIncompleteAnswerSet = errors.New("answer set does not cover every question exactly once")

	// ErrInvalidAnswer: điểm trả lời không khớp lựa chọn nào của câu hỏi.
	ErrInvalidAnswer = errors.New("answer score does not match any option of the question")

	ErrInvalidStudentInfo = errors.New("thông tin học sinh chưa đầy đủ")
	ErrWrongPassword      = errors.New("mật khẩu không chính xác")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrMissingAPIKey      = errors.New("server configuration error: API key is missing")
)
