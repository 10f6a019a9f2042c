// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the exam client: the terminal editor on top of the
// draft services, with the autosave job pushing code drafts while the user
// types.
package client
