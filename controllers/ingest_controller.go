package controllers

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"betenlace/dto"
	"betenlace/errors"
	"betenlace/response"
	"betenlace/services/ingest"
)

// IngestService là phần của ingest.Service mà controller dùng
type IngestService interface {
	IngestAccount(ctx context.Context, upload ingest.AccountUpload) (*dto.UploadSummary, error)
	IngestNetrefer(ctx context.Context, upload ingest.NetreferUpload) (*dto.UploadSummary, error)
	Status(ctx context.Context, campaign string) (*dto.UploadSummary, error)
	Watchdog(ctx context.Context) error
}

type IngestController struct {
	service IngestService
}

func NewIngestController(service IngestService) *IngestController {
	return &IngestController{service: service}
}

// UploadAccount nhận account_csv_file và/hoặc member_csv_file cho ingestor loại account
func (ctrl *IngestController) UploadAccount(c *gin.Context) {
	var req dto.AccountUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	account, err := formFile(c, "account_csv_file")
	if err != nil {
		response.FromError(c, err)
		return
	}
	member, err := formFile(c, "member_csv_file")
	if err != nil {
		response.FromError(c, err)
		return
	}

	summary, err := ctrl.service.IngestAccount(c.Request.Context(), ingest.AccountUpload{
		Ingestor:      c.Param("ingestor"),
		CampaignTitle: req.CampaignTitle,
		Date:          req.Date,
		Account:       account,
		Member:        member,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}

// UploadNetrefer nhận file csv_data (số lũy kế tháng) của một campaign netrefer
func (ctrl *IngestController) UploadNetrefer(c *gin.Context) {
	var req dto.NetreferUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	data, err := formFile(c, "csv_data")
	if err != nil {
		response.FromError(c, err)
		return
	}

	summary, err := ctrl.service.IngestNetrefer(c.Request.Context(), ingest.NetreferUpload{
		Ingestor:      c.Param("ingestor"),
		CampaignTitle: req.CampaignTitle,
		UploadDate:    req.UploadDate,
		Data:          data,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}

// GetStatus trả về kết quả upload gần nhất của campaign
func (ctrl *IngestController) GetStatus(c *gin.Context) {
	campaign := strings.TrimSpace(c.Param("campaign"))
	if campaign == "" {
		response.BadRequest(c, "campaign là bắt buộc")
		return
	}

	summary, err := ctrl.service.Status(c.Request.Context(), campaign)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}

// RunWatchdog chạy kiểm tra thiếu báo cáo ngay lập tức
func (ctrl *IngestController) RunWatchdog(c *gin.Context) {
	if err := ctrl.service.Watchdog(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// formFile đọc file multipart; không có field thì trả về nil
func formFile(c *gin.Context, field string) (*ingest.File, error) {
	header, err := c.FormFile(field)
	if stderrors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "request không phải multipart hợp lệ", err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "không mở được file "+field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "không đọc được file "+field, err)
	}
	return &ingest.File{Name: header.Filename, Data: data}, nil
}
