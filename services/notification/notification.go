package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"

	"betenlace/services/logger"
)

// Service gửi thông báo cuối mỗi lần upload; lỗi gửi không ảnh hưởng dữ liệu đã ghi
type Service interface {
	SendMessage(ctx context.Context, message string) error
}

// MelodyService broadcast tới các websocket đang kết nối ở /ws
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(_ context.Context, message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// WebhookService POST tin nhắn tới chat webhook dạng {"text": "..."}
type WebhookService struct {
	url    string
	client *http.Client
}

func NewWebhookService(url string) *WebhookService {
	return &WebhookService{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

func (s *WebhookService) SendMessage(ctx context.Context, message string) error {
	body, err := json.Marshal(webhookPayload{Text: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook trả về status %d", resp.StatusCode)
	}
	return nil
}

// MultiService gửi tới mọi kênh, chỉ log lỗi từng kênh
type MultiService struct {
	services []Service
	logger   logger.Logger
}

func NewMultiService(log logger.Logger, services ...Service) *MultiService {
	return &MultiService{services: services, logger: log}
}

func (s *MultiService) SendMessage(ctx context.Context, message string) error {
	for _, svc := range s.services {
		if err := svc.SendMessage(ctx, message); err != nil {
			s.logger.Warn("❌ Gửi thông báo thất bại (%T): %v", svc, err)
		}
	}
	return nil
}

// MessageBuilder tạo nội dung thông báo kết quả upload
type MessageBuilder struct {
	day       string
	campaign  string
	processed int
}

func NewMessageBuilder(day, campaign string) *MessageBuilder {
	return &MessageBuilder{day: day, campaign: campaign}
}

func (b *MessageBuilder) Processed(count int) *MessageBuilder {
	b.processed = count
	return b
}

func (b *MessageBuilder) Build() string {
	prefix := fmt.Sprintf("Report day: %s Member for Campaign %s", b.day, b.campaign)
	if b.processed == 0 {
		return prefix + " No Records/No data"
	}
	return fmt.Sprintf("%s processed count %d", prefix, b.processed)
}
