// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qr-studio/models"
)

const webhookEventsTable = "webhook_events"

// psql builds Postgres statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func buildInsertWebhookEventQuery(event models.WebhookEvent) (string, []any, error) {
	return psql.
		Insert(webhookEventsTable).
		Columns("event_id", "type", "session_id", "paid", "product", "created_at").
		Values(event.ID, event.Type, event.SessionID, event.Paid, string(event.Product), event.CreatedAt.UTC()).
		ToSql()
}

func buildPruneWebhookEventsQuery(before time.Time) (string, []any, error) {
	return psql.
		Delete(webhookEventsTable).
		Where(squirrel.Lt{"received_at": before.UTC()}).
		ToSql()
}
