// Пакет streetsapi - клиент открытого API улиц (CKAN datastore_search).
package streetsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
)

var _ ports.StreetSource = (*Client)(nil)

var (
	// ErrNoStreets - API вернуло пустой список записей.
	ErrNoStreets = errors.New("no streets found")
	// ErrAPI - API ответило ошибкой (HTTP-статус или success=false).
	ErrAPI = errors.New("streets api error")
)

const (
	defaultLimit   = 100000
	defaultTimeout = 60 * time.Second
	maxErrBody     = 512
)

// Config - параметры клиента.
type Config struct {
	URL        string
	ResourceID string
	Limit      int
	Timeout    time.Duration
}

// Client - клиент datastore_search. Безопасен для конкурентного использования.
type Client struct {
	http *http.Client
	cfg  Config
	now  func() time.Time
}

// NewClient - конструктор. Пустые URL или ResourceID - ошибка конфигурации.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("streets api: url is empty")
	}
	if strings.TrimSpace(cfg.ResourceID) == "" {
		return nil, errors.New("streets api: resource id is empty")
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg: cfg,
		now: time.Now,
	}, nil
}

type searchRequest struct {
	ResourceID string         `json:"resource_id"`
	Filters    map[string]any `json:"filters"`
	Limit      int            `json:"limit"`
}

type searchResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Records []apiStreet `json:"records"`
	} `json:"result"`
	Error json.RawMessage `json:"error,omitempty"`
}

// apiStreet - запись в формате источника.
type apiStreet struct {
	ID               int64  `json:"_id"`
	RegionCode       int64  `json:"region_code"`
	RegionName       string `json:"region_name"`
	CityCode         int64  `json:"city_code"`
	CityName         string `json:"city_name"`
	StreetCode       int64  `json:"street_code"`
	StreetName       string `json:"street_name"`
	StreetNameStatus string `json:"street_name_status"`
	OfficialCode     int64  `json:"official_code"`
}

// StreetsInCity - все улицы города; cityName - значение city_name в источнике (на иврите).
func (c *Client) StreetsInCity(ctx context.Context, cityName string) ([]domain.Street, error) {
	records, err := c.search(ctx, map[string]any{"city_name": cityName}, c.cfg.Limit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: city=%q", ErrNoStreets, cityName)
	}

	now := c.now().UTC()
	out := make([]domain.Street, 0, len(records))
	for i := range records {
		out = append(out, records[i].toStreet(now))
	}
	return out, nil
}

// StreetByID - одна запись по _id.
func (c *Client) StreetByID(ctx context.Context, id int64) (*domain.Street, error) {
	records, err := c.search(ctx, map[string]any{"_id": id}, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: id=%d", ErrNoStreets, id)
	}
	street := records[0].toStreet(c.now().UTC())
	return &street, nil
}

func (c *Client) search(ctx context.Context, filters map[string]any, limit int) ([]apiStreet, error) {
	body, err := json.Marshal(searchRequest{ResourceID: c.cfg.ResourceID, Filters: filters, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("streets api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, fmt.Errorf("%w: status=%d body=%q", ErrAPI, resp.StatusCode, snippet)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		return nil, fmt.Errorf("%w: success=false error=%s", ErrAPI, out.Error)
	}
	return out.Result.Records, nil
}

// toStreet - перевод записи источника в доменную модель.
// Служебные поля источника уходят в additionalMeta.
func (a *apiStreet) toStreet(now time.Time) domain.Street {
	return domain.Street{
		CityCode:   a.CityCode,
		CityName:   strings.TrimSpace(a.CityName),
		StreetCode: a.StreetCode,
		StreetName: a.StreetName,
		Region:     strings.TrimSpace(a.RegionName),
		AdditionalMeta: map[string]any{
			"officialCode":     a.OfficialCode,
			"streetNameStatus": a.StreetNameStatus,
			"regionCode":       a.RegionCode,
			"apiId":            a.ID,
		},
		UpdatedAt: now,
		CreatedAt: now,
	}
}
