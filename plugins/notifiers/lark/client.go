package lark

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"text/template"

	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
)

const (
	larkHost = "https://open.larksuite.com"

	tokenPath   = "/open-apis/auth/v3/tenant_access_token/internal/"
	messagePath = "/open-apis/im/v1/messages?receive_id_type=email"
)

type response struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Token string `json:"tenant_access_token"`
}

type tokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

type messageRequest struct {
	ReceiveID string `json:"receive_id"`
	MsgType   string `json:"msg_type"`
	Content   string `json:"content"`
}

type LarkWorkspace struct {
	WorkspaceName string `mapstructure:"workspace"`
	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	// Host defaults to the public Lark open platform
	Host string `mapstructure:"host" validate:"omitempty,url"`
}

type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Notifier struct {
	workspace           LarkWorkspace
	Messages            domain.NotificationMessages
	httpClient          httpClient
	defaultMessageFiles embed.FS
	logger              log.Logger
}

type Config struct {
	Workspace LarkWorkspace
	Messages  domain.NotificationMessages
}

//go:embed templates/*
var defaultTemplates embed.FS

func NewNotifier(config *Config, httpClient httpClient, logger log.Logger) *Notifier {
	ws := config.Workspace
	if ws.Host == "" {
		ws.Host = larkHost
	}
	ws.Host = strings.TrimRight(ws.Host, "/")
	return &Notifier{
		workspace:           ws,
		Messages:            config.Messages,
		httpClient:          httpClient,
		defaultMessageFiles: defaultTemplates,
		logger:              logger,
	}
}

// Notify sends every item as a text message to the Lark user with the item's email.
// A failed item does not stop the others.
func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	if len(items) == 0 {
		return nil
	}

	token, err := n.tenantAccessToken(ctx)
	if err != nil {
		return []error{fmt.Errorf("getting tenant access token for workspace %s: %w", n.workspace.WorkspaceName, err)}
	}

	var errs []error
	for _, item := range items {
		labels := labelSlice(item.Labels)
		n.logger.Debug(ctx, "sending lark notification", "user", item.User, "labels", labels)

		msg, err := ParseMessage(item.Message, n.Messages, n.defaultMessageFiles)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v | error parsing message: %w", labels, err))
			continue
		}
		if err := n.sendMessage(ctx, token, item.User, msg); err != nil {
			errs = append(errs, fmt.Errorf("%v | error sending message to user:%s in workspace:%s | %w", labels, item.User, n.workspace.WorkspaceName, err))
		}
	}
	return errs
}

func (n *Notifier) sendMessage(ctx context.Context, token, email, text string) error {
	content, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}
	data, err := json.Marshal(messageRequest{ReceiveID: email, MsgType: "text", Content: string(content)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.workspace.Host+messagePath, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	_, err = n.sendRequest(req)
	return err
}

func (n *Notifier) tenantAccessToken(ctx context.Context) (string, error) {
	data, err := json.Marshal(tokenRequest{
		AppID:     n.workspace.ClientID,
		AppSecret: n.workspace.ClientSecret,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.workspace.Host+tokenPath, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	result, err := n.sendRequest(req)
	if err != nil {
		return "", err
	}
	return result.Token, nil
}

func (n *Notifier) sendRequest(req *http.Request) (*response, error) {
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response with status %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || result.Code != 0 {
		return nil, fmt.Errorf("lark responded with status %d, code %d: %s", resp.StatusCode, result.Code, result.Msg)
	}
	return &result, nil
}

func getDefaultTemplate(messageType string, defaultTemplateFiles embed.FS) (string, error) {
	content, err := defaultTemplateFiles.ReadFile(fmt.Sprintf("templates/%s.tmpl", messageType))
	if err != nil {
		return "", fmt.Errorf("error finding default template for message type %s: %w", messageType, err)
	}
	return string(content), nil
}

// ParseMessage renders the configured template of the message type, or the built-in one
func ParseMessage(message domain.NotificationMessage, templates domain.NotificationMessages, defaultTemplateFiles embed.FS) (string, error) {
	messageTypeTemplateMap := map[string]string{
		domain.NotificationTypePendingApprovalsReminder: templates.PendingApprovalsReminder,
	}

	messageBlock, ok := messageTypeTemplateMap[message.Type]
	if !ok {
		return "", fmt.Errorf("template not found for message type %s", message.Type)
	}
	if messageBlock == "" {
		defaultMsgBlock, err := getDefaultTemplate(message.Type, defaultTemplateFiles)
		if err != nil {
			return "", err
		}
		messageBlock = defaultMsgBlock
	}

	t, err := template.New("notification_messages").Parse(messageBlock)
	if err != nil {
		return "", err
	}
	var buff bytes.Buffer
	if err := t.Execute(&buff, message.Variables); err != nil {
		return "", err
	}
	return strings.TrimSpace(buff.String()), nil
}

func labelSlice(labels map[string]string) []string {
	s := make([]string, 0, len(labels))
	for k, v := range labels {
		s = append(s, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(s)
	return s
}
