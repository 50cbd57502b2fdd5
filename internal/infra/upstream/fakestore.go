package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"dealstream/internal/domain/offer"
	"dealstream/internal/pkg/config"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("infra/upstream")

// StatusError is returned when the product API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("product api returned %s", e.Status)
}

type ProductClient struct {
	http      *resty.Client
	sourceURL string
}

func NewProductClient(cfg config.IngestConfig) *ProductClient {
	client := resty.New()
	client.SetTimeout(cfg.HTTPTimeout)
	client.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &ProductClient{
		http:      client,
		sourceURL: cfg.SourceURL,
	}
}

// FetchAll retrieves the full product list in one request, preserving upstream order.
func (c *ProductClient) FetchAll(ctx context.Context) ([]offer.RemoteRecord, error) {
	ctx, span := tracer.Start(ctx, "FetchAll")
	defer span.End()
	span.SetAttributes(attribute.String("url", c.sourceURL))

	started := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		Get(c.sourceURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("request product list: %w", err)
	}
	span.SetAttributes(
		attribute.Int("status_code", res.StatusCode()),
		attribute.Int64("duration_ms", time.Since(started).Milliseconds()),
	)

	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299 {
		err := &StatusError{StatusCode: res.StatusCode(), Status: res.Status()}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	records, err := decodeProducts(res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

// productID accepts numeric and string ids.
type productID string

func (p *productID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = productID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*p = productID(n.String())
	return nil
}

// decodeProducts fails only when the body is not a JSON array. Items that are
// not objects are dropped; a field of the wrong type decodes as nil.
func decodeProducts(body []byte) ([]offer.RemoteRecord, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode product list: %w", err)
	}

	records := make([]offer.RemoteRecord, 0, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			slog.Warn("dropping product list item that is not an object", "index", i)
			continue
		}

		var id productID
		if raw, ok := fields["id"]; ok {
			if err := id.UnmarshalJSON(raw); err != nil {
				id = ""
			}
		}

		records = append(records, offer.RemoteRecord{
			ID:          string(id),
			Title:       optionalString(fields["title"]),
			Description: optionalString(fields["description"]),
			Price:       optionalPrice(fields["price"]),
			Category:    optionalString(fields["category"]),
			Image:       optionalString(fields["image"]),
		})
	}
	return records, nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func optionalString(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// optionalPrice accepts a JSON number or a numeric string.
func optionalPrice(raw json.RawMessage) *float64 {
	if isAbsent(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
