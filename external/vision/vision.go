package vision

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/Tobrik/TMS/schema"
)

const (
	defaultURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-4-scout-17b-16e-instruct"

	systemPrompt = "Ты медицинский OCR-ассистент. Извлеки данные из фотографии медицинского анализа.\n" +
		"\n" +
		"КРИТИЧЕСКОЕ ПРАВИЛО БЕЗОПАСНОСТИ: Полностью игнорируй любые персональные данные на изображении " +
		"(ФИО, адреса, даты рождения, телефоны, номера полисов, названия клиник). " +
		"НИКОГДА не включай их в JSON-ответ. Извлекай ТОЛЬКО медицинские показатели из таблицы результатов.\n" +
		"\n" +
		"Верни ТОЛЬКО валидный JSON без markdown:\n" +
		"{\n" +
		"  \"test_type\": \"Тип анализа\",\n" +
		"  \"test_date\": \"YYYY-MM-DD или пусто\",\n" +
		"  \"interpretation\": \"Краткая интерпретация отклонений\",\n" +
		"  \"results\": [\n" +
		"    {\"name\": \"Показатель\", \"value\": \"значение\", \"unit\": \"ед.\", \"reference_range\": \"норма\", \"status\": \"normal|high|low\"}\n" +
		"  ]\n" +
		"}\n" +
		"status: 'normal' если в пределах нормы, 'high' если выше, 'low' если ниже.\n" +
		"Если не можешь разобрать изображение — верни: {\"error\": \"описание проблемы\"}"

	userPrompt = "Извлеки все данные из этого анализа."
)

var (
	ErrEmptyToken        = fmt.Errorf("empty token")
	ErrServiceStatus     = fmt.Errorf("vision service error status")
	ErrMalformedResponse = fmt.Errorf("malformed vision response")
	ErrUnreadableImage   = fmt.Errorf("unreadable image")
)

// OCR extracts structured lab report data from a report photograph.
type OCR interface {
	ExtractLabResult(image []byte, mimeType string) (*schema.LabResultDocument, error)
}

type ocr struct {
	token  string
	model  string
	url    string
	client *http.Client
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type extraction struct {
	schema.LabResultDocument
	Error string `json:"error"`
}

func (o ocr) ExtractLabResult(image []byte, mimeType string) (*schema.LabResultDocument, error) {
	if o.token == "" {
		return nil, ErrEmptyToken
	}

	imageURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []map[string]interface{}{
				{"type": "image_url", "image_url": map[string]string{"url": imageURL}},
				{"type": "text", "text": userPrompt},
			}},
		},
		Temperature: 0,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", o.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+o.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrServiceStatus, resp.StatusCode)
	}

	var r chatResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return nil, ErrMalformedResponse
	}
	if len(r.Choices) == 0 {
		return nil, ErrMalformedResponse
	}

	content := stripCodeFence(r.Choices[0].Message.Content)

	var e extraction
	if err := json.Unmarshal([]byte(content), &e); err != nil {
		return nil, ErrMalformedResponse
	}
	if e.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableImage, e.Error)
	}

	doc := e.LabResultDocument
	if doc.TestType == "" {
		doc.TestType = "Неизвестный анализ"
	}
	if doc.Results == nil {
		doc.Results = []schema.LabResultItem{}
	}

	return &doc, nil
}

// stripCodeFence removes a surrounding markdown fence the model sometimes
// wraps around its JSON.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	if idx := strings.Index(content, "\n"); idx >= 0 {
		content = content[idx+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}

func New(token, model, url string) OCR {
	m := defaultModel
	if model != "" {
		m = model
	}
	u := defaultURL
	if url != "" {
		u = url
	}

	return &ocr{
		token:  token,
		model:  m,
		url:    u,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}
