// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
	"github.com/MKhiriev/go-exam-drafts/models"
)

const (
	saveDraftPath = "/api/user/draft/save"
	loadDraftPath = "/api/user/draft/load"

	// HashHeader carries the hex HMAC-SHA256 of the request body.
	HashHeader = "HashSHA256"

	defaultRequestTimeout = 5 * time.Second
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the HTTP implementation of [DraftServerAdapter].
// A zero RequestTimeout falls back to 5s. When appCfg.HashKey is set every
// request body is signed in the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (DraftServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	a := &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}
	a.SetToken(adapterCfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SaveDraft(ctx context.Context, draft models.DraftRecord) error {
	req, err := h.jsonRequest(ctx, draft)
	if err != nil {
		return err
	}

	resp, err := req.Post(saveDraftPath)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("func", "httpServerAdapter.SaveDraft").
			Str("exam_id", draft.ExamID).
			Str("problem_id", draft.ProblemID).
			Msg("save draft request failed")
		return fmt.Errorf("%w: save draft request: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) LoadDraft(ctx context.Context, loadReq models.LoadDraftRequest) (string, error) {
	req, err := h.jsonRequest(ctx, loadReq)
	if err != nil {
		return "", err
	}

	resp, err := req.Post(loadDraftPath)
	if err != nil {
		return "", fmt.Errorf("%w: load draft request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	// the body is decoded whatever Content-Type the server sent
	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return "", ErrNotFound
	}
	var result models.LoadDraftResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: decode load draft response: %w", ErrRemoteUnavailable, err)
	}

	if result.Code == "" {
		return "", ErrNotFound
	}

	return result.Code, nil
}

// jsonRequest marshals body once so that the integrity hash covers exactly
// the bytes sent.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashHex(payload))
	}

	return req, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
