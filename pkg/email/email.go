package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"dronemarket/config"
	"dronemarket/pkg/logger"
)

// 欢迎邮件模板
const welcomeTemplate = `<html><body>
<h2>{{.ProductName}}</h2>
<p>{{.UserName}}，欢迎加入{{.ProductName}}！</p>
<p>现在可以浏览二手无人机、收藏心仪的机器并与卖家沟通。</p>
</body></html>`

// Data 邮件模板数据
type Data struct {
	To          string // 收件人
	Subject     string // 邮件主题
	ProductName string // 产品名称
	UserName    string // 用户名
}

// Service 邮件服务
type Service struct {
	config config.EmailConfig
	logger *logger.Logger
	tmpl   *template.Template
}

// NewService 创建邮件服务
func NewService(cfg config.EmailConfig, logger *logger.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
		tmpl:   template.Must(template.New("welcome").Parse(welcomeTemplate)),
	}
}

// Enabled SMTP是否已配置，未配置时发送为空操作
func (s *Service) Enabled() bool {
	return s.config.Host != ""
}

// SendWelcomeEmail 发送欢迎邮件
func (s *Service) SendWelcomeEmail(to, userName string) error {
	if !s.Enabled() {
		s.logger.Debug("未配置SMTP，跳过欢迎邮件", "to", to)
		return nil
	}

	data := Data{
		To:          to,
		UserName:    userName,
		ProductName: "드론마켓二手无人机市场",
		Subject:     "欢迎加入二手无人机市场",
	}

	buf := new(bytes.Buffer)
	if err := s.tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("渲染邮件模板失败: %w", err)
	}

	return s.send(data.To, data.Subject, buf.String())
}

// send 发送邮件
func (s *Service) send(to, subject, body string) error {
	// 设置邮件头
	header := make(map[string]string)
	header["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	header["To"] = to
	header["Subject"] = subject
	header["MIME-Version"] = "1.0"
	header["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for k, v := range header {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	// 配置TLS
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         s.config.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("创建TLS连接失败: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("创建SMTP客户端失败: %w", err)
	}
	defer client.Close()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP认证失败: %w", err)
	}

	if err = client.Mail(s.config.From); err != nil {
		return fmt.Errorf("设置发件人失败: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("设置收件人失败: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("准备发送数据失败: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("关闭数据写入失败: %w", err)
	}

	s.logger.Info(fmt.Sprintf("邮件已发送至 %s", to))
	return nil
}
