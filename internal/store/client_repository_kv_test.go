// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) (KeyValueRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	return NewKeyValueRepository(&DB{DB: db, logger: l}, l), mock, db
}

func TestKeyValueRepository_Get(t *testing.T) {
	kv, mock, db := newTestKV(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getValue)).
		WithArgs(HistoryKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	got, err := kv.Get(context.Background(), HistoryKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Get_NotFound(t *testing.T) {
	kv, mock, db := newTestKV(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getValue)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := kv.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKeyValueRepository_Get_Error(t *testing.T) {
	kv, mock, db := newTestKV(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getValue)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := kv.Get(context.Background(), HistoryKey)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKeyValueRepository_Put(t *testing.T) {
	kv, mock, db := newTestKV(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(putValue)).
		WithArgs(HistoryKey, `[{"id":"1"}]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Put(context.Background(), HistoryKey, `[{"id":"1"}]`))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Put_Error(t *testing.T) {
	kv, mock, db := newTestKV(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(putValue)).
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, kv.Put(context.Background(), HistoryKey, "[]"), ErrExecutingStatement)
}

func TestKeyValueRepository_Delete(t *testing.T) {
	kv, mock, db := newTestKV(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(deleteValue)).
		WithArgs(HistoryKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Delete(context.Background(), HistoryKey))
	require.NoError(t, mock.ExpectationsWereMet())
}
