package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usvmap/usvmap/internal/core/domain"
)

type fakeSubscriber struct {
	summaries []domain.DatasetSummary
	err       error
}

func (f *fakeSubscriber) SubscribeDatasetLoaded(ctx context.Context, handler func(ctx context.Context, summary domain.DatasetSummary) error) error {
	if f.err != nil {
		return f.err
	}
	for _, s := range f.summaries {
		if err := handler(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func TestFollow_PrintsEachVersion(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sub := &fakeSubscriber{summaries: []domain.DatasetSummary{
		{Source: domain.FileIdentity{Path: "data/usv.csv"}, Placed: 12, Dropped: 1, Countries: 7, Encoding: "utf-8", LoadedAt: at},
		{Source: domain.FileIdentity{Path: "data/usv.csv"}, Placed: 13, Countries: 8, Encoding: "windows-1252", LoadedAt: at},
	}}

	var out bytes.Buffer
	require.NoError(t, follow(context.Background(), sub, &out))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "placed=12 dropped=1 countries=7 encoding=utf-8")
	assert.Contains(t, string(lines[1]), "placed=13 dropped=0 countries=8 encoding=windows-1252")
	assert.Contains(t, string(lines[0]), "data/usv.csv")
}

func TestFollow_SubscribeError(t *testing.T) {
	sub := &fakeSubscriber{err: errors.New("no stream")}
	err := follow(context.Background(), sub, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscribe: no stream")
}
