// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertLocalDraft = `
		INSERT INTO local_drafts (storage_key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (storage_key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	getLocalDraft = `
		SELECT value
		FROM local_drafts
		WHERE storage_key = ?;`
)
