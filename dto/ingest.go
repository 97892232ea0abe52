package dto

import "time"

type AccountUploadRequest struct {
	CampaignTitle string `form:"campaign_title"`
	Date          string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type NetreferUploadRequest struct {
	CampaignTitle string `form:"campaign_title" binding:"required"`
	UploadDate    string `form:"upload_date" binding:"omitempty,datetime=2006-01-02"`
}

// UploadSummary là kết quả một lần upload, cũng được cache trong redis
type UploadSummary struct {
	RunID            string    `json:"runId"`
	Ingestor         string    `json:"ingestor"`
	Campaign         string    `json:"campaign"`
	Day              string    `json:"day"`
	AccountRows      int       `json:"accountRows"`
	MemberRows       int       `json:"memberRows"`
	ProcessedMembers int       `json:"processedMembers"`
	SkippedRows      int       `json:"skippedRows"`
	QualifiedCount   int       `json:"qualifiedCount"`
	ReUpload         bool      `json:"reUpload"`
	Message          string    `json:"message"`
	FinishedAt       time.Time `json:"finishedAt"`
}
