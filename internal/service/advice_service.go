package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/util"
)

// AdviceService gọi dịch vụ sinh lời khuyên (API tương thích
// chat-completions) cho các bài khảo sát không ở mức An Toàn.
// Một request duy nhất, không tự retry.
type AdviceService struct {
	Bank *model.QuestionBank

	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAdviceService(cfg config.AIConfig, bank *model.QuestionBank) *AdviceService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AdviceService{
		Bank:   bank,
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// SetConfig cập nhật thông số AI khi config được nạp lại.
func (s *AdviceService) SetConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *AdviceService) cfg() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateAdvice trả về lời khuyên cho một kết quả khảo sát. Mức An
// Toàn không cần lời khuyên: trả về chuỗi rỗng ngay, không gọi ra ngoài.
func (s *AdviceService) GenerateAdvice(ctx context.Context, level model.RiskLevel, score int, answerScores map[string]int) (string, error) {
	if level == model.RiskSafe {
		return "", nil
	}

	cfg := s.cfg()
	if cfg.APIKey == "" {
		return "", util.ErrMissingAPIKey
	}

	prompt := s.buildPrompt(level, score, answerScores)

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{
				Role:    "system",
				Content: "Bạn là một chuyên gia an toàn mạng, tư vấn cho học sinh bằng tiếng Việt với giọng điệu thân thiện, động viên, không phán xét.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// buildPrompt ghép ngữ cảnh từ các câu trả lời mang trọng số dương
// (bỏ qua câu trả lời 0 điểm), kèm mức rủi ro và tổng điểm.
func (s *AdviceService) buildPrompt(level model.RiskLevel, score int, answerScores map[string]int) string {
	var details []string
	for _, q := range s.Bank.Questions {
		questionScore, ok := answerScores[q.ID]
		if !ok || questionScore <= 0 {
			continue
		}

		answerText := "Không rõ"
		for _, opt := range q.Options {
			if opt.Score == questionScore {
				answerText = opt.Text
				break
			}
		}

		details = append(details, fmt.Sprintf("- Câu hỏi: %q\n  - Trả lời: %q (Điểm rủi ro: %d)", q.Text, answerText, questionScore))
	}

	levelText := "CAO"
	if level == model.RiskMedium {
		levelText = "TRUNG BÌNH"
	}

	return fmt.Sprintf(`Một học sinh vừa hoàn thành bài khảo sát về an toàn mạng và có kết quả sau:
- Mức độ rủi ro: %s.
- Tổng điểm: %d (càng cao càng rủi ro).
- Chi tiết các câu trả lời tiềm ẩn rủi ro:
%s

Dựa vào thông tin trên, hãy đưa ra lời khuyên cụ thể, cá nhân hóa, và mang tính xây dựng cho học sinh này bằng tiếng Việt.
Lời khuyên cần:
1. Giải thích ngắn gọn tại sao các câu trả lời của họ lại tiềm ẩn rủi ro.
2. Đưa ra các bước hành động cụ thể, dễ hiểu mà học sinh có thể áp dụng ngay để cải thiện.
3. Sử dụng ngôn ngữ thân thiện, động viên, không phán xét.
4. Cấu trúc rõ ràng, chuyên nghiệp, dùng gạch đầu dòng hoặc đánh số.
5. Đi thẳng vào vấn đề, không cần lời chào hỏi. Bắt đầu bằng một câu tóm tắt về tình hình của học sinh.`,
		levelText, score, strings.Join(details, "\n\n"))
}
