// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
)

func TestCheckHash(t *testing.T) {
	const (
		hashKey = "integrity-key"
		body    = `{"exam_id":"e1","problem_id":"p1","language":"C","code":"blob"}`
	)

	utils.InitHasherPool(hashKey)
	validHash := utils.HashHex([]byte(body))

	tests := []struct {
		name       string
		serverKey  string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{name: "check disabled on server", serverKey: "", header: "deadbeef", wantStatus: http.StatusOK, wantNext: true},
		{name: "no header", serverKey: hashKey, wantStatus: http.StatusOK, wantNext: true},
		{name: "valid hash", serverKey: hashKey, header: validHash, wantStatus: http.StatusOK, wantNext: true},
		{name: "wrong hash", serverKey: hashKey, header: strings.Repeat("0", 64), wantStatus: http.StatusBadRequest},
		{name: "not hex", serverKey: hashKey, header: "zz", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{hashKey: tt.serverKey, logger: logger.Nop()}

			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// тело должно остаться доступным для обработчика
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, body, string(got))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, saveDraftPath, strings.NewReader(body))
			if tt.header != "" {
				req.Header.Set(HashHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.checkHash(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
