package imgbb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"walloffame_backend/internal/feature/wins/usecase"
)

// ErrNotConfigured はAPIキー未設定のままアップロードが要求された場合に返されます。
var ErrNotConfigured = errors.New("imgbb api key is not configured")

// Client はimgbb外部APIへ画像をアップロードするImageStore実装です。
// アップロードされた画像の永続的な公開URLを返します。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがImageStoreを実装していることをコンパイル時に検証します。
var _ usecase.ImageStore = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// uploadResponse はimgbbアップロードAPIのレスポンスです。
type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload は画像バイト列をimgbbへアップロードし、公開URLを返します。
func (c *Client) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	// multipart/form-dataボディを構築
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="upload"`)
	if mimeType != "" {
		h.Set("Content-Type", mimeType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	u := fmt.Sprintf("%s/1/upload?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("imgbb http %d", res.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if !out.Success || out.Data.URL == "" {
		return "", fmt.Errorf("imgbb upload rejected: status %d", out.Status)
	}

	return out.Data.URL, nil
}
