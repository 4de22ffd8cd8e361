package model

import "github.com/google/uuid"

// NewSubmissionID sinh id dạng "sub_<uuid>". UUID đảm bảo không trùng
// kể cả khi nhiều bài được nộp trong cùng một mili giây.
func NewSubmissionID() string {
	return "sub_" + uuid.New().String()
}
