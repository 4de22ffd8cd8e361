package service

import (
	"errors"
	"testing"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/util"
)

// scoringBank: 3 câu, trọng số đủ rộng để chạm mọi ngưỡng với ngưỡng
// thu nhỏ safe=5, medium=10.
func scoringBank() *model.QuestionBank {
	return &model.QuestionBank{
		Questions: []model.Question{
			{ID: "q1", Text: "Câu 1", Options: []model.AnswerOption{{Score: 0}, {Score: 2}, {Score: 5}}},
			{ID: "q2", Text: "Câu 2", Options: []model.AnswerOption{{Score: 0}, {Score: 3}, {Score: 5}}},
			{ID: "q3", Text: "Câu 3", Options: []model.AnswerOption{{Score: 0}, {Score: 1}, {Score: 5}}},
		},
	}
}

func TestScoreClassification(t *testing.T) {
	s := NewScoringService(scoringBank(), 5, 10)

	cases := []struct {
		name      string
		answers   map[string]int
		wantScore int
		wantLevel model.RiskLevel
	}{
		{
			name:      "toàn câu an toàn",
			answers:   map[string]int{"q1": 0, "q2": 0, "q3": 0},
			wantScore: 0,
			wantLevel: model.RiskSafe,
		},
		{
			name:      "đúng bằng ngưỡng an toàn",
			answers:   map[string]int{"q1": 2, "q2": 3, "q3": 0},
			wantScore: 5,
			wantLevel: model.RiskSafe,
		},
		{
			name:      "vượt ngưỡng an toàn một điểm",
			answers:   map[string]int{"q1": 2, "q2": 3, "q3": 1},
			wantScore: 6,
			wantLevel: model.RiskMedium,
		},
		{
			name:      "đúng bằng ngưỡng trung bình",
			answers:   map[string]int{"q1": 2, "q2": 3, "q3": 5},
			wantScore: 10,
			wantLevel: model.RiskMedium,
		},
		{
			name:      "vượt ngưỡng trung bình",
			answers:   map[string]int{"q1": 5, "q2": 5, "q3": 1},
			wantScore: 11,
			wantLevel: model.RiskHigh,
		},
		{
			name:      "điểm tối đa",
			answers:   map[string]int{"q1": 5, "q2": 5, "q3": 5},
			wantScore: 15,
			wantLevel: model.RiskHigh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, level, err := s.Score(tc.answers)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if score != tc.wantScore {
				t.Errorf("score = %d, want %d", score, tc.wantScore)
			}
			if level != tc.wantLevel {
				t.Errorf("level = %v, want %v", level, tc.wantLevel)
			}
		})
	}
}

func TestClassifyDefaultThresholds(t *testing.T) {
	s := NewScoringService(scoringBank(), 18, 36)

	cases := []struct {
		total int
		want  model.RiskLevel
	}{
		{0, model.RiskSafe},
		{18, model.RiskSafe},
		{19, model.RiskMedium},
		{36, model.RiskMedium},
		{37, model.RiskHigh},
		{60, model.RiskHigh},
	}
	for _, tc := range cases {
		if got := s.Classify(tc.total); got != tc.want {
			t.Errorf("Classify(%d) = %v, want %v", tc.total, got, tc.want)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScoringService(scoringBank(), 5, 10)
	answers := map[string]int{"q1": 2, "q2": 3, "q3": 1}

	first, firstLevel, err := s.Score(answers)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		score, level, err := s.Score(answers)
		if err != nil || score != first || level != firstLevel {
			t.Fatalf("run %d: got (%d, %v, %v), want (%d, %v, nil)", i, score, level, err, first, firstLevel)
		}
	}
}

func TestScoreRejectsIncompleteAnswers(t *testing.T) {
	s := NewScoringService(scoringBank(), 5, 10)

	cases := []struct {
		name    string
		answers map[string]int
	}{
		{"thiếu câu", map[string]int{"q1": 0, "q2": 0}},
		{"rỗng", map[string]int{}},
		{"đủ số lượng nhưng sai id", map[string]int{"q1": 0, "q2": 0, "q9": 0}},
		{"thừa câu", map[string]int{"q1": 0, "q2": 0, "q3": 0, "q4": 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, level, err := s.Score(tc.answers)
			if !errors.Is(err, util.ErrIncompleteAnswerSet) {
				t.Fatalf("error = %v, want ErrIncompleteAnswerSet", err)
			}
			if level != model.RiskNone {
				t.Errorf("level = %v, want RiskNone", level)
			}
		})
	}
}

func TestScoreRejectsForeignScore(t *testing.T) {
	s := NewScoringService(scoringBank(), 5, 10)

	// 4 không phải trọng số của lựa chọn nào thuộc q1.
	_, _, err := s.Score(map[string]int{"q1": 4, "q2": 0, "q3": 0})
	if !errors.Is(err, util.ErrInvalidAnswer) {
		t.Fatalf("error = %v, want ErrInvalidAnswer", err)
	}
}

func TestSetThresholds(t *testing.T) {
	s := NewScoringService(scoringBank(), 5, 10)

	s.SetThresholds(2, 8)
	if got := s.Classify(3); got != model.RiskMedium {
		t.Errorf("after reload, Classify(3) = %v, want RiskMedium", got)
	}

	// Cặp ngưỡng đảo không được áp dụng.
	s.SetThresholds(9, 4)
	if got := s.Classify(3); got != model.RiskMedium {
		t.Errorf("invalid thresholds must be ignored, Classify(3) = %v", got)
	}
}
