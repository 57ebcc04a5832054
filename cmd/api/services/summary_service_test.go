package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biorxiv-calendar/summaries"
)

const testDOI = "10.1101/2026.09.01.000001"

func TestSummarizeSuccess(t *testing.T) {
	calls := 0
	svc := NewSummaryService(summaries.NewStore())
	svc.summarizeFn = func(ctx context.Context, abstract string) (string, error) {
		calls++
		return "- finding one\n- finding two\n- finding three", nil
	}

	out, err := svc.Summarize(context.Background(), testDOI, "abstract text")
	require.NoError(t, err)
	assert.Equal(t, "ready", out.Status)
	assert.Equal(t, []string{"finding one", "finding two", "finding three"}, out.Bullets)
	assert.Equal(t, 1, calls)
}

func TestSummarizeServesCachedResultWithoutSecondCall(t *testing.T) {
	calls := 0
	svc := NewSummaryService(summaries.NewStore())
	svc.summarizeFn = func(ctx context.Context, abstract string) (string, error) {
		calls++
		return "- cached", nil
	}

	_, err := svc.Summarize(context.Background(), testDOI, "abstract")
	require.NoError(t, err)
	out, err := svc.Summarize(context.Background(), testDOI, "abstract")
	require.NoError(t, err)

	assert.Equal(t, "ready", out.Status)
	assert.Equal(t, []string{"cached"}, out.Bullets)
	assert.Equal(t, 1, calls)
}

func TestSummarizeFailureIsRecordedAndRetryable(t *testing.T) {
	fail := true
	svc := NewSummaryService(summaries.NewStore())
	svc.summarizeFn = func(ctx context.Context, abstract string) (string, error) {
		if fail {
			return "", errors.New("provider exploded")
		}
		return "- recovered", nil
	}

	out, err := svc.Summarize(context.Background(), testDOI, "abstract")
	require.NoError(t, err)
	assert.Equal(t, "failed", out.Status)
	assert.Equal(t, "summarization failed", out.Error)

	// re-triggering the same action retries
	fail = false
	out, err = svc.Summarize(context.Background(), testDOI, "abstract")
	require.NoError(t, err)
	assert.Equal(t, "ready", out.Status)
	assert.Equal(t, []string{"recovered"}, out.Bullets)
}

func TestSummarizeInFlightIsRefused(t *testing.T) {
	store := summaries.NewStore()
	store.Begin(testDOI)

	svc := NewSummaryService(store)
	svc.summarizeFn = func(ctx context.Context, abstract string) (string, error) {
		t.Fatal("must not call the provider while a request is in flight")
		return "", nil
	}

	out, err := svc.Summarize(context.Background(), testDOI, "abstract")
	assert.ErrorIs(t, err, ErrSummaryInFlight)
	assert.Equal(t, "loading", out.Status)
}

func TestSummarizeEmptyTextIsReadyNotFailed(t *testing.T) {
	svc := NewSummaryService(summaries.NewStore())
	svc.summarizeFn = func(ctx context.Context, abstract string) (string, error) {
		return "", nil
	}

	out, err := svc.Summarize(context.Background(), testDOI, "abstract")
	require.NoError(t, err)
	assert.Equal(t, "ready", out.Status)
	assert.Empty(t, out.Bullets)
}

func TestGetAndClear(t *testing.T) {
	svc := NewSummaryService(summaries.NewStore())
	svc.summarizeFn = func(ctx context.Context, abstract string) (string, error) {
		return "- one", nil
	}

	assert.Equal(t, "not_requested", svc.Get(testDOI).Status)

	_, err := svc.Summarize(context.Background(), testDOI, "abstract")
	require.NoError(t, err)
	assert.Equal(t, "ready", svc.Get(testDOI).Status)

	svc.Clear(testDOI)
	assert.Equal(t, "not_requested", svc.Get(testDOI).Status)
}
