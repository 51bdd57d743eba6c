package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template 邮件模板
type Template struct {
	tmpl *template.Template
}

// NewTemplate 从 HTML 字符串创建模板
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render 渲染模板
func (t *Template) Render(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

// SendWithTemplate 使用模板发送邮件
func (c *Client) SendWithTemplate(to string, subject string, tmpl *Template, data interface{}) error {
	body, err := tmpl.Render(data)
	if err != nil {
		return err
	}
	return c.SendHTML(c.config.From, to, subject, body)
}

// ResetPasswordTemplate 重置密码邮件模板
const ResetPasswordTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #F44336; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .button { display: inline-block; padding: 12px 24px; background-color: #F44336;
                  color: white; text-decoration: none; border-radius: 4px; margin: 20px 0; }
        .warning { background-color: #ffebee; border-left: 4px solid #F44336; padding: 12px;
                   margin: 20px 0; font-size: 14px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>密码重置</h1>
        </div>
        <div class="content">
            <p>您好，</p>
            <p>我们收到了您重置 Collaboration Hub 账号密码的请求。点击下方按钮设置新密码：</p>
            <div style="text-align: center;">
                <a href="{{.ResetURL}}" class="button">重置密码</a>
            </div>
            <p style="text-align: center; color: #666; font-size: 14px;">
                链接有效期：{{.ExpireHours}} 小时，且只能使用一次
            </p>
            <div class="warning">
                <strong>⚠️ 重要提醒：</strong>
                <ul style="margin: 8px 0; padding-left: 20px;">
                    <li>如果您没有申请重置密码，请忽略此邮件</li>
                    <li>请勿将此链接转发给任何人</li>
                </ul>
            </div>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复。</p>
            <p style="margin-top: 10px;">© Collaboration Hub</p>
        </div>
    </div>
</body>
</html>
`

// ResetPasswordData 重置密码模板数据
type ResetPasswordData struct {
	ResetURL    string // 重置链接（带 token）
	ExpireHours int    // 过期时间（小时）
}

// SendResetPasswordLink 发送重置密码邮件
func (c *Client) SendResetPasswordLink(to string, resetURL string, expireHours int) error {
	tmpl, err := NewTemplate(ResetPasswordTemplate)
	if err != nil {
		return err
	}

	data := ResetPasswordData{
		ResetURL:    resetURL,
		ExpireHours: expireHours,
	}

	return c.SendWithTemplate(to, "【Collaboration Hub】密码重置", tmpl, data)
}
