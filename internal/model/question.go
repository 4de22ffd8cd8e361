package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnswerOption là một lựa chọn trả lời với trọng số rủi ro không âm.
type AnswerOption struct {
	Text  string `yaml:"text" json:"text"`
	Score int    `yaml:"score" json:"score"`
}

// Question là một câu hỏi trong bộ đề, bất biến sau khi nạp.
type Question struct {
	ID      string         `yaml:"id" json:"id"`
	Section string         `yaml:"section" json:"section"`
	Text    string         `yaml:"text" json:"text"`
	Options []AnswerOption `yaml:"options" json:"options"`
}

// QuestionBank giữ toàn bộ bộ đề theo đúng thứ tự khai báo trong file.
type QuestionBank struct {
	Questions []Question `yaml:"questions"`
}

// QuestionSection gom các câu hỏi theo mục, giữ nguyên thứ tự khai báo
// của mục lẫn câu hỏi (không sắp xếp theo bảng chữ cái).
type QuestionSection struct {
	Section   string     `json:"section"`
	Questions []Question `json:"questions"`
}

// LoadQuestionBank đọc và kiểm tra bộ đề từ file YAML.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question bank YAML: %w", err)
	}

	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &bank, nil
}

// Validate kiểm tra các bất biến của bộ đề: id duy nhất, mỗi câu có ít
// nhất một lựa chọn, không có trọng số âm.
func (b *QuestionBank) Validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}

	seen := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %q has no id", q.Text)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}
		for _, opt := range q.Options {
			if opt.Score < 0 {
				return fmt.Errorf("question %q has a negative option score", q.ID)
			}
		}
	}
	return nil
}

func (b *QuestionBank) FindByID(id string) (*Question, bool) {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i], true
		}
	}
	return nil, false
}

// GroupedBySection trả về bộ đề theo mục, thứ tự khai báo.
func (b *QuestionBank) GroupedBySection() []QuestionSection {
	var sections []QuestionSection
	index := make(map[string]int)
	for _, q := range b.Questions {
		i, ok := index[q.Section]
		if !ok {
			i = len(sections)
			index[q.Section] = i
			sections = append(sections, QuestionSection{Section: q.Section})
		}
		sections[i].Questions = append(sections[i].Questions, q)
	}
	return sections
}
