// Package api содержит HTTP-клиент для взаимодействия с сервером рецептов.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя методы для отправки JSON-запросов (POST/GET/PUT/DELETE).
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - Токен кладётся в заголовок как есть, без схемы "Bearer": так его ждёт сервер.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - При ошибочных ответах (не 2xx) возвращается *APIError с текстом из {"message": ...}.
//
// ВНИМАНИЕ: NewClient включает InsecureSkipVerify=true (TLS сертификат не проверяется).
// Это допустимо только для разработки и локального окружения.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAuthHeader — заголовок, в котором сервер ждёт токен.
const DefaultAuthHeader = "Authorization"

// Client реализует HTTP-клиент для общения с сервером рецептов.
type Client struct {
	baseURL    string
	authHeader string
	http       *http.Client
}

// APIError — ответ сервера с кодом не 2xx.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// ВНИМАНИЕ: InsecureSkipVerify=true отключает проверку сертификата и делает TLS
// уязвимым для MITM. Использовать только для локальной разработки/тестов.
func NewClient(baseURL string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: DefaultAuthHeader,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// WithAuthHeader меняет заголовок для токена (auth.header на сервере).
// Пустое имя игнорируется.
func (c *Client) WithAuthHeader(name string) *Client {
	if name != "" {
		c.authHeader = name
	}
	return c
}

// readAPIErrorBody читает тело ответа сервера и возвращает *APIError.
//
// Сервер отвечает {"message": "..."}; если тело другое, в Message
// попадает текст тела целиком, а если тело пустое, то res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var body struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		msg = body.Message
	}
	if msg == "" {
		msg = res.Status
	}
	return &APIError{StatusCode: res.StatusCode, Message: msg}
}

// decodeJSONOrOK декодирует JSON из r в resp.
// resp == nil или пустое тело ошибкой не считаются.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do отправляет запрос и разбирает ответ.
//
// req == nil — тело не отправляется и Content-Type не ставится.
// authToken пустой — заголовок авторизации не ставится.
func (c *Client) do(method, path string, req, resp any, authToken string) error {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
		body = &buf
	}

	r, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set(c.authHeader, authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос, сериализуя req в JSON, и декодирует ответ в resp.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPost, path, req, resp, authToken)
}

// GetJSON выполняет GET-запрос и декодирует JSON-ответ в resp.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodGet, path, nil, resp, authToken)
}

// PutJSON выполняет PUT-запрос, сериализуя req в JSON, и декодирует ответ в resp.
func (c *Client) PutJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPut, path, req, resp, authToken)
}

// DeleteJSON выполняет DELETE-запрос и декодирует JSON-ответ в resp.
func (c *Client) DeleteJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodDelete, path, nil, resp, authToken)
}
