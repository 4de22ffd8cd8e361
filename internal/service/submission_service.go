package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/repository"
	"antoanmang_backend/internal/util"
	"antoanmang_backend/pkg/logger"
	"antoanmang_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// AdviceGenerator là phần SubmissionService cần từ AdviceService; tách
// interface để test luồng nộp bài với generator giả.
type AdviceGenerator interface {
	GenerateAdvice(ctx context.Context, level model.RiskLevel, score int, answerScores map[string]int) (string, error)
}

type AdviceStatus string

const (
	AdviceGenerating AdviceStatus = "generating"
	AdviceReady      AdviceStatus = "ready"
	AdviceError      AdviceStatus = "error"
	AdviceSkipped    AdviceStatus = "skipped"
)

// adviceSession theo dõi một lượt sinh lời khuyên đang chạy nền.
// token tăng mỗi lần reset; goroutine chỉ được ghi kết quả khi token
// còn khớp, nhờ đó phản hồi về muộn sau reset bị loại bỏ.
type adviceSession struct {
	token  int64
	status AdviceStatus
	text   string
	errMsg string
	cancel context.CancelFunc
}

// SubmissionService điều phối luồng nộp bài: kiểm tra, chấm điểm, lưu
// kết quả và khởi động sinh lời khuyên chạy nền.
type SubmissionService struct {
	Scoring *ScoringService
	Advice  AdviceGenerator

	store    repository.SubmissionStore
	fallback *repository.MemorySubmissionStore

	// OnAppend được gọi sau mỗi lần ghi thành công (vd. xoá cache báo cáo).
	OnAppend func()

	appendMu sync.Mutex
	degraded bool

	sessionMu sync.Mutex
	sessions  map[string]*adviceSession
}

func NewSubmissionService(store repository.SubmissionStore, scoring *ScoringService, advice AdviceGenerator) *SubmissionService {
	return &SubmissionService{
		Scoring:  scoring,
		Advice:   advice,
		store:    store,
		fallback: repository.NewMemorySubmissionStore(),
		sessions: make(map[string]*adviceSession),
	}
}

type SubmitRequest struct {
	Name      string         `json:"name" binding:"required"`
	ClassName string         `json:"className" binding:"required"`
	School    string         `json:"school" binding:"required"`
	Province  string         `json:"province" binding:"required"`
	Answers   map[string]int `json:"answers" binding:"required"`
}

type SubmitResult struct {
	ID           string          `json:"id"`
	Score        int             `json:"score"`
	RiskLevel    model.RiskLevel `json:"riskLevel"`
	RiskLabel    string          `json:"riskLabel"`
	AdviceStatus AdviceStatus    `json:"adviceStatus"`
}

// Submit chấm bài và lưu kết quả. Kết quả điểm/mức rủi ro trả về ngay;
// lời khuyên (nếu cần) sinh nền và client thăm dò qua AdviceStatus.
func (s *SubmissionService) Submit(req SubmitRequest) (*SubmitResult, error) {
	info := model.StudentInfo{
		Name:      strings.TrimSpace(req.Name),
		ClassName: strings.TrimSpace(req.ClassName),
		School:    strings.TrimSpace(req.School),
		Province:  strings.TrimSpace(req.Province),
	}
	if info.Name == "" || info.ClassName == "" || info.School == "" || info.Province == "" {
		return nil, util.ErrInvalidStudentInfo
	}

	total, level, err := s.Scoring.Score(req.Answers)
	if err != nil {
		return nil, err
	}

	sub := &model.Submission{
		ID:          model.NewSubmissionID(),
		StudentInfo: info,
		Score:       total,
		RiskLevel:   level,
		Timestamp:   time.Now().UnixMilli(),
	}

	s.append(sub)
	monitoring.SubmissionCounter.WithLabelValues(level.Label()).Inc()

	status := s.startAdvice(sub.ID, level, total, req.Answers)

	return &SubmitResult{
		ID:           sub.ID,
		Score:        total,
		RiskLevel:    level,
		RiskLabel:    level.Label(),
		AdviceStatus: status,
	}, nil
}

// append ghi vào kho chính; nếu kho hỏng thì chuyển hẳn sang kho bộ nhớ
// cho phần đời còn lại của tiến trình. Không bao giờ làm hỏng luồng nộp.
func (s *SubmissionService) append(sub *model.Submission) {
	s.appendMu.Lock()
	defer s.appendMu.Unlock()

	if !s.degraded {
		if err := s.store.Append(sub); err != nil {
			logger.Log.Warn("submission store unavailable, switching to in-memory store",
				zap.Error(err), zap.String("submission_id", sub.ID))
			s.degraded = true
		}
	}
	if s.degraded {
		s.fallback.Append(sub)
	}

	if s.OnAppend != nil {
		s.OnAppend()
	}
}

// FindAll đọc toàn bộ bài đã nộp; kho không đọc được thì trả danh sách
// rỗng thay vì lỗi.
func (s *SubmissionService) FindAll() []model.Submission {
	s.appendMu.Lock()
	degraded := s.degraded
	s.appendMu.Unlock()

	if degraded {
		subs, _ := s.fallback.FindAll()
		return subs
	}

	subs, err := s.store.FindAll()
	if err != nil {
		logger.Log.Warn("failed to read submission store", zap.Error(err))
		return []model.Submission{}
	}
	return subs
}

func (s *SubmissionService) startAdvice(subID string, level model.RiskLevel, score int, answers map[string]int) AdviceStatus {
	if level == model.RiskSafe {
		s.sessionMu.Lock()
		s.sessions[subID] = &adviceSession{status: AdviceSkipped}
		s.sessionMu.Unlock()
		monitoring.AdviceRequests.WithLabelValues("skipped").Inc()
		return AdviceSkipped
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &adviceSession{status: AdviceGenerating, cancel: cancel}

	s.sessionMu.Lock()
	s.sessions[subID] = sess
	token := sess.token
	s.sessionMu.Unlock()

	go s.generate(ctx, subID, token, level, score, answers)
	return AdviceGenerating
}

func (s *SubmissionService) generate(ctx context.Context, subID string, token int64, level model.RiskLevel, score int, answers map[string]int) {
	text, err := s.Advice.GenerateAdvice(ctx, level, score, answers)

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	sess, ok := s.sessions[subID]
	if !ok || sess.token != token {
		// Phiên đã bị reset trong lúc chờ; kết quả về muộn bị bỏ.
		monitoring.AdviceRequests.WithLabelValues("stale").Inc()
		return
	}

	if err != nil {
		logger.Log.Warn("advice generation failed", zap.String("submission_id", subID), zap.Error(err))
		sess.status = AdviceError
		sess.errMsg = util.AdviceFallbackMessage
		monitoring.AdviceRequests.WithLabelValues("error").Inc()
		return
	}

	sess.status = AdviceReady
	sess.text = text
	monitoring.AdviceRequests.WithLabelValues("ok").Inc()
}

type AdviceResult struct {
	Status AdviceStatus `json:"status"`
	Advice string       `json:"advice,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// AdviceStatus trả về trạng thái lời khuyên của một bài đã nộp.
func (s *SubmissionService) AdviceStatus(subID string) (*AdviceResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	sess, ok := s.sessions[subID]
	if !ok {
		return nil, util.ErrSubmissionNotFound
	}
	return &AdviceResult{Status: sess.status, Advice: sess.text, Error: sess.errMsg}, nil
}

// ResetAdvice huỷ phiên lời khuyên của một bài nộp (học sinh quay về
// màn hình đầu). Lượt sinh đang chạy bị huỷ; nếu phản hồi vẫn về, token
// không còn khớp nên bị loại.
func (s *SubmissionService) ResetAdvice(subID string) {
	s.sessionMu.Lock()
	sess, ok := s.sessions[subID]
	if ok {
		sess.token++
		if sess.cancel != nil {
			sess.cancel()
		}
		delete(s.sessions, subID)
	}
	s.sessionMu.Unlock()
}
