package listingapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/core/domain"
)

func TestSearchSession_SingleSearchIsNotStale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[],"pagination":{"page":1,"limit":20,"total":0,"totalPages":1}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	session := NewSearchSession(client)

	result, stale, err := session.Search(context.Background(), domain.SearchQuery{})
	require.NoError(t, err)
	assert.False(t, stale)
	require.NotNil(t, result)
	assert.Empty(t, result.Listings)
}

func TestSearchSession_SupersededSearchIsStale(t *testing.T) {
	slowArrived := make(chan struct{})
	releaseSlow := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "slow" {
			close(slowArrived)
			<-releaseSlow
		}
		w.Write([]byte(`{"success":true,"data":[],"pagination":{"page":1,"limit":20,"total":0,"totalPages":1}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	session := NewSearchSession(client)

	type outcome struct {
		result *domain.ResultPage
		stale  bool
		err    error
	}
	slowDone := make(chan outcome, 1)
	go func() {
		result, stale, err := session.Search(context.Background(), domain.SearchQuery{Q: "slow"})
		slowDone <- outcome{result, stale, err}
	}()

	// Ждем, пока первый запрос займет свой порядковый номер
	<-slowArrived

	result, stale, err := session.Search(context.Background(), domain.SearchQuery{Q: "fast"})
	require.NoError(t, err)
	assert.False(t, stale)
	assert.NotNil(t, result)

	close(releaseSlow)
	slow := <-slowDone

	// Обогнанный запрос помечен устаревшим и не несет результата
	assert.True(t, slow.stale)
	assert.Nil(t, slow.result)
	assert.NoError(t, slow.err)
}
