package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/util"
)

func adviceBank() *model.QuestionBank {
	return &model.QuestionBank{
		Questions: []model.Question{
			{ID: "q1", Text: "Em có dùng chung mật khẩu không?", Options: []model.AnswerOption{
				{Text: "Không bao giờ", Score: 0},
				{Text: "Luôn luôn", Score: 5},
			}},
			{ID: "q2", Text: "Em có bấm link lạ không?", Options: []model.AnswerOption{
				{Text: "Không", Score: 0},
				{Text: "Thỉnh thoảng", Score: 3},
			}},
		},
	}
}

func newAdviceServer(t *testing.T, calls *int64, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		handler(w, r)
	}))
}

func adviceConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 5,
	}
}

func TestGenerateAdviceSafeSkipsCall(t *testing.T) {
	var calls int64
	srv := newAdviceServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		t.Error("safe level must not call the AI service")
	})
	defer srv.Close()

	s := NewAdviceService(adviceConfig(srv.URL), adviceBank())

	advice, err := s.GenerateAdvice(context.Background(), model.RiskSafe, 0, map[string]int{"q1": 0, "q2": 0})
	if err != nil {
		t.Fatalf("GenerateAdvice() error = %v", err)
	}
	if advice != "" {
		t.Errorf("advice = %q, want empty", advice)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Errorf("AI service was called %d times, want 0", calls)
	}
}

func TestGenerateAdviceMissingAPIKey(t *testing.T) {
	cfg := adviceConfig("http://localhost:1")
	cfg.APIKey = ""
	s := NewAdviceService(cfg, adviceBank())

	_, err := s.GenerateAdvice(context.Background(), model.RiskHigh, 8, map[string]int{"q1": 5, "q2": 3})
	if !errors.Is(err, util.ErrMissingAPIKey) {
		t.Fatalf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestGenerateAdviceSuccess(t *testing.T) {
	var calls int64
	var gotAuth string
	var gotReq ChatCompletionRequest

	srv := newAdviceServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Em nên cẩn thận hơn."}},
			},
		})
	})
	defer srv.Close()

	s := NewAdviceService(adviceConfig(srv.URL), adviceBank())

	// q1 = 0 điểm nên không được đưa vào prompt, chỉ q2 xuất hiện.
	advice, err := s.GenerateAdvice(context.Background(), model.RiskMedium, 3, map[string]int{"q1": 0, "q2": 3})
	if err != nil {
		t.Fatalf("GenerateAdvice() error = %v", err)
	}
	if advice != "Em nên cẩn thận hơn." {
		t.Errorf("advice = %q", advice)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(gotReq.Messages))
	}

	prompt := gotReq.Messages[1].Content
	if !strings.Contains(prompt, "TRUNG BÌNH") {
		t.Errorf("prompt missing level text: %q", prompt)
	}
	if !strings.Contains(prompt, "Em có bấm link lạ không?") {
		t.Errorf("prompt missing risky answer context: %q", prompt)
	}
	if !strings.Contains(prompt, "Thỉnh thoảng") {
		t.Errorf("prompt missing matched option text: %q", prompt)
	}
	if strings.Contains(prompt, "Em có dùng chung mật khẩu không?") {
		t.Errorf("zero-score answer must be filtered out of prompt: %q", prompt)
	}
}

func TestGenerateAdviceHighLevelText(t *testing.T) {
	var calls int64
	var gotReq ChatCompletionRequest
	srv := newAdviceServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	})
	defer srv.Close()

	s := NewAdviceService(adviceConfig(srv.URL), adviceBank())
	if _, err := s.GenerateAdvice(context.Background(), model.RiskHigh, 8, map[string]int{"q1": 5, "q2": 3}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "CAO") {
		t.Errorf("prompt missing CAO level text")
	}
}

func TestGenerateAdviceUpstreamFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "status khác 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "body không phải JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "trường error trong body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"message": "invalid model"},
				})
			},
		},
		{
			name: "không có choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls int64
			srv := newAdviceServer(t, &calls, tc.handler)
			defer srv.Close()

			s := NewAdviceService(adviceConfig(srv.URL), adviceBank())
			if _, err := s.GenerateAdvice(context.Background(), model.RiskHigh, 8, map[string]int{"q1": 5, "q2": 3}); err == nil {
				t.Fatal("expected error")
			}
			// Một request duy nhất, không retry.
			if got := atomic.LoadInt64(&calls); got != 1 {
				t.Errorf("AI service called %d times, want 1", got)
			}
		})
	}
}

func TestGenerateAdviceRespectsContextCancel(t *testing.T) {
	release := make(chan struct{})
	var calls int64
	srv := newAdviceServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer srv.Close()
	defer close(release)

	s := NewAdviceService(adviceConfig(srv.URL), adviceBank())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.GenerateAdvice(ctx, model.RiskHigh, 8, map[string]int{"q1": 5, "q2": 3}); err == nil {
		t.Fatal("expected error after context cancel")
	}
}
