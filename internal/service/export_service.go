package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/util"
	"antoanmang_backend/pkg/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	exportSheetName   = "Kết quả khảo sát"
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// exportColumns cố định thứ tự cột trong file xuất; giáo viên đã quen
// với bố cục này, không đổi thứ tự.
var exportColumns = []string{
	"Họ và Tên",
	"Lớp",
	"Trường",
	"Tỉnh thành",
	"Điểm số",
	"Mức độ Rủi ro",
	"Thời gian nộp",
}

// ExportService sinh file Excel danh sách bài khảo sát cho giáo viên.
// Mỗi file xuất cũng được lưu một bản qua StorageService.
type ExportService struct {
	Submissions *SubmissionService
	Storage     *StorageService
}

func NewExportService(subs *SubmissionService, storage *StorageService) *ExportService {
	return &ExportService{Submissions: subs, Storage: storage}
}

// Export trả về nội dung file xlsx và tên file gợi ý. Danh sách xuất
// theo thứ tự mới nhất trước, khớp với bảng trên dashboard.
func (s *ExportService) Export(ctx context.Context) ([]byte, string, error) {
	subs := s.Submissions.FindAll()
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].Timestamp > subs[j].Timestamp
	})

	data, err := buildWorkbook(subs)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("KetQuaKhaoSat_AnToanMang_%s.xlsx", time.Now().Format("20060102_150405"))

	// Lưu bản sao phía server; lỗi lưu trữ không chặn việc tải về.
	if s.Storage != nil {
		if _, err := s.Storage.Upload(ctx, filename, bytes.NewReader(data), int64(len(data)), exportContentType); err != nil {
			logger.Log.Warn("failed to store export copy", zap.String("filename", filename), zap.Error(err))
		}
	}

	return data, filename, nil
}

func buildWorkbook(subs []model.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, col); err != nil {
			return nil, err
		}
	}

	for row, sub := range subs {
		values := []interface{}{
			sub.Name,
			sub.ClassName,
			sub.School,
			sub.Province,
			sub.Score,
			sub.RiskLevel.Label(),
			time.UnixMilli(sub.Timestamp).Format(util.ExportTimeFormat),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
