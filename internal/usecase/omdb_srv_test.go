package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movielist/pkg/apperr"
	"movielist/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOmdbSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards query and api key", func(t *testing.T) {
		var gotQuery, gotKey string
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("s")
			gotKey = r.URL.Query().Get("apikey")
			w.Write([]byte(`{"Response":"True"}`))
		}))
		defer upstream.Close()

		svc := NewOmdbService(utils.OMDbConfig{APIURL: upstream.URL, APIKey: "k123"}, testLogger())

		body, err := svc.Search(ctx, "inception")
		require.NoError(t, err)

		assert.Equal(t, "inception", gotQuery)
		assert.Equal(t, "k123", gotKey)
		assert.JSONEq(t, `{"Response":"True"}`, string(body))
	})

	t.Run("blank query is invalid", func(t *testing.T) {
		svc := NewOmdbService(utils.OMDbConfig{APIURL: "http://unused", APIKey: "k"}, testLogger())

		_, err := svc.Search(ctx, "  ")
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	})

	t.Run("missing api key fails closed", func(t *testing.T) {
		svc := NewOmdbService(utils.OMDbConfig{APIURL: "http://unused"}, testLogger())

		_, err := svc.Search(ctx, "inception")
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})

	t.Run("upstream failure is internal", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer upstream.Close()

		svc := NewOmdbService(utils.OMDbConfig{APIURL: upstream.URL, APIKey: "k"}, testLogger())

		_, err := svc.Search(ctx, "inception")
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestOmdbDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("requests full plot by imdb id", func(t *testing.T) {
		var gotID, gotPlot string
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = r.URL.Query().Get("i")
			gotPlot = r.URL.Query().Get("plot")
			w.Write([]byte(`{"Title":"Inception"}`))
		}))
		defer upstream.Close()

		svc := NewOmdbService(utils.OMDbConfig{APIURL: upstream.URL, APIKey: "k"}, testLogger())

		_, err := svc.Details(ctx, "tt1375666")
		require.NoError(t, err)

		assert.Equal(t, "tt1375666", gotID)
		assert.Equal(t, "full", gotPlot)
	})

	t.Run("blank id is invalid", func(t *testing.T) {
		svc := NewOmdbService(utils.OMDbConfig{APIURL: "http://unused", APIKey: "k"}, testLogger())

		_, err := svc.Details(ctx, "")
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	})
}
