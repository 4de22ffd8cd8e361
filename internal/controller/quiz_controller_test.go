package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/repository"
	"antoanmang_backend/internal/service"
	"antoanmang_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type instantAdvice struct {
	text string
}

func (a instantAdvice) GenerateAdvice(ctx context.Context, level model.RiskLevel, score int, answerScores map[string]int) (string, error) {
	return a.text, nil
}

func quizTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	bank := &model.QuestionBank{Questions: []model.Question{
		{ID: "q1", Section: "Thói quen", Text: "Câu 1", Options: []model.AnswerOption{{Text: "A", Score: 0}, {Text: "B", Score: 5}}},
		{ID: "q2", Section: "Bảo mật", Text: "Câu 2", Options: []model.AnswerOption{{Text: "A", Score: 0}, {Text: "B", Score: 5}}},
	}}

	subs := service.NewSubmissionService(
		repository.NewMemorySubmissionStore(),
		service.NewScoringService(bank, 3, 7),
		instantAdvice{text: "lời khuyên test"},
	)

	c := NewQuizController(service.NewQuestionBankService(bank), subs)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/questions", c.GetQuestions)
	api.POST("/submissions", c.Submit)
	api.GET("/submissions/:id/advice", c.GetAdvice)
	api.DELETE("/submissions/:id/advice", c.ResetAdvice)
	return router
}

func TestGetQuestions(t *testing.T) {
	router := quizTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data []model.QuestionSection `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d sections, want 2", len(resp.Data))
	}
	if resp.Data[0].Section != "Thói quen" {
		t.Errorf("first section = %q", resp.Data[0].Section)
	}
}

func TestSubmitEndpoint(t *testing.T) {
	router := quizTestRouter()

	body := `{
		"name": "Nguyễn Văn A",
		"className": "10A1",
		"school": "THPT Chu Văn An",
		"province": "Hà Nội",
		"answers": {"q1": 5, "q2": 0}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data service.SubmitResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Score != 5 || resp.Data.RiskLevel != model.RiskMedium {
		t.Errorf("score/level = %d/%v", resp.Data.Score, resp.Data.RiskLevel)
	}
	if resp.Data.ID == "" {
		t.Fatal("submission id missing")
	}

	// Thăm dò tới khi lời khuyên sẵn sàng.
	deadline := time.After(2 * time.Second)
	for {
		req = httptest.NewRequest(http.MethodGet, "/api/submissions/"+resp.Data.ID+"/advice", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("poll status = %d", w.Code)
		}

		var poll struct {
			Data service.AdviceResult `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &poll)
		if poll.Data.Status == service.AdviceReady {
			if poll.Data.Advice != "lời khuyên test" {
				t.Errorf("advice = %q", poll.Data.Advice)
			}
			break
		}

		select {
		case <-deadline:
			t.Fatalf("advice never became ready, last status %q", poll.Data.Status)
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Reset xong thì phiên biến mất.
	req = httptest.NewRequest(http.MethodDelete, "/api/submissions/"+resp.Data.ID+"/advice", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/submissions/"+resp.Data.ID+"/advice", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("poll after reset = %d, want 404", w.Code)
	}
}

func TestSubmitEndpointBadRequests(t *testing.T) {
	router := quizTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"body hỏng", `{not json`},
		{"thiếu trường bắt buộc", `{"name": "A"}`},
		{"thiếu câu trả lời", `{"name": "A", "className": "10A", "school": "X", "province": "HN", "answers": {"q1": 0}}`},
		{"điểm không thuộc lựa chọn", `{"name": "A", "className": "10A", "school": "X", "province": "HN", "answers": {"q1": 2, "q2": 0}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetAdviceUnknownSubmission(t *testing.T) {
	router := quizTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/submissions/sub_khong_co/advice", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
