package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
)

var seedTime = time.Date(2024, time.July, 7, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(DemoAlerts(seedTime), WithClock(func() time.Time { return seedTime }))
}

func TestListAllNewestFirst(t *testing.T) {
	svc := newTestService()

	all := svc.List("", TabAll)
	require.Len(t, all, 6)
	assert.Equal(t, "alert-001", all[0].ID)
	assert.Equal(t, "alert-006", all[5].ID)
}

func TestListTabPartitions(t *testing.T) {
	svc := newTestService()

	active := svc.List("", TabActive)
	require.Len(t, active, 5)
	for _, a := range active {
		assert.Equal(t, StatusActive, a.Status)
	}

	resolved := svc.List("", TabResolved)
	require.Len(t, resolved, 1)
	assert.Equal(t, "alert-006", resolved[0].ID)
}

func TestListQuerySearchesTitleMessageCategory(t *testing.T) {
	svc := newTestService()

	byTitle := svc.List("consolidation", TabAll)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "alert-001", byTitle[0].ID)

	byMessage := svc.List("roadrunner", TabAll)
	require.Len(t, byMessage, 1)
	assert.Equal(t, "alert-004", byMessage[0].ID)

	byCategory := svc.List("compliance", TabAll)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "alert-003", byCategory[0].ID)

	assert.Empty(t, svc.List("no such alert", TabAll))
}

func TestListQueryAndTabCombine(t *testing.T) {
	svc := newTestService()

	// alert-006 matches "invoice" but sits in the resolved partition.
	assert.Empty(t, svc.List("invoice", TabActive))
	assert.Len(t, svc.List("invoice", TabResolved), 1)
}

func TestResolveStampsResolvedAt(t *testing.T) {
	svc := newTestService()

	resolved, err := svc.Resolve("alert-001")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, seedTime, *resolved.ResolvedAt)

	stored, err := svc.Get("alert-001")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, stored.Status)
}

func TestDismissDoesNotStampResolvedAt(t *testing.T) {
	svc := newTestService()

	dismissed, err := svc.Dismiss("alert-002")
	require.NoError(t, err)
	assert.Equal(t, StatusDismissed, dismissed.Status)
	assert.Nil(t, dismissed.ResolvedAt)
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	svc := newTestService()

	_, err := svc.Resolve("alert-006")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	_, err = svc.Dismiss("alert-006")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	_, err = svc.Dismiss("alert-001")
	require.NoError(t, err)
	_, err = svc.Resolve("alert-001")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
}

func TestTransitionUnknownAlert(t *testing.T) {
	svc := newTestService()

	_, err := svc.Resolve("alert-999")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestCountsNow(t *testing.T) {
	svc := newTestService()

	counts := svc.CountsNow()
	assert.Equal(t, Counts{Active: 5, High: 3, Resolved: 1, Total: 6}, counts)

	_, err := svc.Resolve("alert-001")
	require.NoError(t, err)

	counts = svc.CountsNow()
	assert.Equal(t, Counts{Active: 4, High: 2, Resolved: 2, Total: 6}, counts)
}

func TestDismissedOnlyVisibleInAll(t *testing.T) {
	svc := newTestService()

	_, err := svc.Dismiss("alert-002")
	require.NoError(t, err)

	assert.Len(t, svc.List("", TabActive), 4)
	assert.Len(t, svc.List("", TabResolved), 1)
	assert.Len(t, svc.List("", TabAll), 6)
}
