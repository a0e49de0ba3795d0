package listing

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/api/shared/dto"
	"github.com/hoofledger/hoofledger/internal/logger"
)

// recordAPIClient saves completed listings through the REST facade
type recordAPIClient struct {
	baseURL string
	http    adapter.HTTPClient
	json    adapter.JSON
}

// NewRecordAPIClient creates a RecordSink posting to POST /cattle-records
func NewRecordAPIClient(baseURL string, httpClient adapter.HTTPClient, json adapter.JSON) RecordSink {
	return &recordAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		json:    json,
	}
}

func (c *recordAPIClient) SaveRecord(ctx context.Context, form *Form, result *Result) error {
	req := dto.CreateCattleRecordRequest{
		Name:      form.Name,
		Breed:     form.Breed,
		Color:     form.Color,
		BirthDate: form.BirthDate,
		Sire:      form.Sire,
		Dam:       form.Dam,
		Vaccines:  form.Vaccines,
		Feeding:   form.Feeding,
		PhotoURI:  result.PhotoURI,
	}
	if form.Weight.IsPositive() {
		w := form.Weight
		req.Weight = &w
	}

	body, err := c.json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode cattle record: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/cattle-records", "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to save cattle record: %w", err)
	}

	var created dto.CattleRecordResponse
	if err := c.json.Unmarshal(resp, &created); err != nil {
		return fmt.Errorf("failed to decode cattle record: %w", err)
	}

	logger.InfoCtx(ctx, "Saved cattle record", zap.String("id", created.ID), zap.String("tokenID", result.TokenID.String()))
	return nil
}
