package services

import (
	"fmt"
	"sync"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/infrastructure/config"
	"dhiya-infra-service/pkg/logger"

	"gopkg.in/gomail.v2"
)

// 邮件发送队列容量。队列满时丢弃并记录日志，通知邮件是尽力而为的
const mailQueueSize = 64

// InterfaceMailerService defines the email notification service interface
type InterfaceMailerService interface {
	QueueTenderRequestNotifications(req *models.TenderRequest)
	QueueContactNotifications(msg *models.ContactMessage)
	Close()
}

// MailerService 异步发送通知邮件。HTTP处理流程只负责入队，实际
// 发送由后台worker完成，SMTP故障不影响请求的受理结果。
// SMTP未配置时服务处于禁用状态，入队调用只记录日志。
type MailerService struct {
	Config  *config.Config
	dialer  *gomail.Dialer
	queue   chan *gomail.Message
	wg      sync.WaitGroup
	closed  chan struct{}
	enabled bool
}

// NewMailerService 创建一个新的邮件通知服务并启动发送worker
func NewMailerService(cfg *config.Config) InterfaceMailerService {
	s := &MailerService{
		Config: cfg,
		queue:  make(chan *gomail.Message, mailQueueSize),
		closed: make(chan struct{}),
	}

	if cfg.SMTPHost == "" {
		logger.Warning("SMTP未配置，邮件通知已禁用")
		return s
	}

	s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	s.enabled = true

	s.wg.Add(1)
	go s.worker()

	return s
}

// worker 顺序消费发送队列，单封邮件发送失败只记录日志
func (s *MailerService) worker() {
	defer s.wg.Done()
	for m := range s.queue {
		if err := s.dialer.DialAndSend(m); err != nil {
			logger.Error("邮件发送失败 to=%v: %v", m.GetHeader("To"), err)
		}
	}
}

// Close 停止接收新邮件并等待队列清空
func (s *MailerService) Close() {
	select {
	case <-s.closed:
		return
	default:
	}
	close(s.closed)
	close(s.queue)
	s.wg.Wait()
}

// enqueue 非阻塞入队
func (s *MailerService) enqueue(m *gomail.Message) {
	if !s.enabled {
		return
	}
	select {
	case s.queue <- m:
	default:
		logger.Warning("邮件发送队列已满，丢弃一封通知邮件")
	}
}

// QueueTenderRequestNotifications 为新招标请求入队两封通知邮件：
// 给提交人的确认邮件和给管理员的提醒邮件
func (s *MailerService) QueueTenderRequestNotifications(req *models.TenderRequest) {
	if !s.enabled {
		logger.Info("邮件通知已禁用，跳过招标请求 %s 的通知", req.ReferenceNo)
		return
	}

	confirmation := gomail.NewMessage()
	confirmation.SetHeader("From", s.Config.EmailFrom)
	confirmation.SetHeader("To", req.Email)
	confirmation.SetHeader("Subject", fmt.Sprintf("Tender Request Received - %s", req.ReferenceNo))
	confirmation.SetBody("text/html", fmt.Sprintf(`
		<h2>Thank you for your tender request</h2>
		<p>Dear %s,</p>
		<p>We have received your tender request for the <strong>%s</strong> project. Our team will review it and get back to you shortly.</p>
		<p>Your reference number is <strong>%s</strong>. Please quote it in any further communication.</p>
		<p>Best regards,<br>Dhiya Infrastructure Team</p>
	`, req.ContactPerson, req.ProjectType, req.ReferenceNo))
	s.enqueue(confirmation)

	alert := gomail.NewMessage()
	alert.SetHeader("From", s.Config.EmailFrom)
	alert.SetHeader("To", s.Config.AdminEmail)
	alert.SetHeader("Subject", fmt.Sprintf("New Tender Request - %s", req.CompanyName))
	alert.SetBody("text/html", fmt.Sprintf(`
		<h2>New Tender Request</h2>
		<p><strong>Reference:</strong> %s</p>
		<p><strong>Company:</strong> %s</p>
		<p><strong>Contact Person:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Project Type:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Estimated Budget:</strong> %s</p>
		<p><strong>Preferred Timeline:</strong> %s</p>
		<p><strong>Description:</strong></p>
		<p>%s</p>
	`, req.ReferenceNo, req.CompanyName, req.ContactPerson, req.Email, req.Phone,
		req.ProjectType, req.ProjectLocation, req.EstimatedBudget, req.PreferredTimeline,
		req.ProjectDescription))
	s.enqueue(alert)
}

// QueueContactNotifications 为新联系消息入队管理员提醒邮件
func (s *MailerService) QueueContactNotifications(msg *models.ContactMessage) {
	if !s.enabled {
		logger.Info("邮件通知已禁用，跳过联系消息 %s 的通知", msg.ReferenceNo)
		return
	}

	alert := gomail.NewMessage()
	alert.SetHeader("From", s.Config.EmailFrom)
	alert.SetHeader("To", s.Config.AdminEmail)
	alert.SetHeader("Subject", fmt.Sprintf("New Contact Message - %s", msg.Subject))
	alert.SetBody("text/html", fmt.Sprintf(`
		<h2>New Contact Message</h2>
		<p><strong>Reference:</strong> %s</p>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, msg.ReferenceNo, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message))
	s.enqueue(alert)
}
