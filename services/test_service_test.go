package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResultScoreRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewTestService(db)
	g := createGenerus(t, db, "Ahmad", "A1")

	var verr *ValidationError
	_, err := svc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "tilawati", Score: 101})
	require.ErrorAs(t, err, &verr)
	_, err = svc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "tilawati", Score: -1})
	require.ErrorAs(t, err, &verr)

	row, err := svc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "tilawati", Score: 100, Date: "2024-01-07"})
	require.NoError(t, err)
	assert.EqualValues(t, 100, row.Score)
}

func TestRecordResultUnknownGenerus(t *testing.T) {
	db := newTestDB(t)
	_, err := NewTestService(db).RecordResult(TestResultInput{GenerusID: 999, Category: "tilawati", Score: 75})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAverageForGenerus(t *testing.T) {
	db := newTestDB(t)
	svc := NewTestService(db)
	g := createGenerus(t, db, "Ahmad", "A1")

	avg, err := svc.AverageForGenerus(g.ID)
	require.NoError(t, err)
	assert.Nil(t, avg)

	_, err = svc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "tilawati", Score: 70, Date: "2024-01-07"})
	require.NoError(t, err)
	_, err = svc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "hafalan", Score: 80, Date: "2024-01-14"})
	require.NoError(t, err)

	avg, err = svc.AverageForGenerus(g.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 75.0, *avg, 0.001)

	list, err := svc.ListByGenerus(g.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
