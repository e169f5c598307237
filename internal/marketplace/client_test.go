package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resale/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentListsSendsFiltersAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/me/offer-lists", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "selling", r.URL.Query().Get("filter[type]"))
		assert.Equal(t, "3,9", r.URL.Query().Get("filter[id:in]"))
		_, _ = w.Write([]byte(`{"results":[{"id":3,"size":"9","local_price":120,"product":{"id":7}}]}`))
	}))
	defer srv.Close()

	lists, err := NewClient(srv.URL+"/api").CurrentLists(context.Background(), "tok", []int64{3, 9})
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, int64(3), lists[0].ID)
	assert.Equal(t, int64(7), lists[0].Product.ID)
	assert.Equal(t, 120.0, lists[0].LocalPrice)
}

func TestEditListsPutsBody(t *testing.T) {
	var got EditListsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/me/offer-lists/lists-edit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req := EditListsRequest{
		Lists:      []EditedList{{ID: 1, Size: "10", ProductID: 2, NewPrice: 150, OldPrice: 140}},
		Expiration: 30,
	}
	require.NoError(t, NewClient(srv.URL).EditLists(context.Background(), "tok", req))
	assert.Equal(t, req, got)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusNotFound, domain.IsNotFound},
		{http.StatusUnprocessableEntity, domain.IsValidation},
		{http.StatusConflict, domain.IsConflict},
		{http.StatusBadGateway, domain.IsUnavailable},
		{http.StatusMultipleChoices, domain.IsInternal},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
		}))
		_, err := NewClient(srv.URL).ProductOfferLists(context.Background(), 5)
		srv.Close()
		assert.Truef(t, tc.check(err), "status %d: %v", tc.status, err)
	}
}

func TestUnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).CurrentLists(context.Background(), "tok", nil)
	assert.True(t, domain.IsUnavailable(err), "got %v", err)
}

func TestValidationErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"price too low"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).EditLists(context.Background(), "tok", EditListsRequest{})
	require.Error(t, err)
	assert.Equal(t, "price too low", err.Error())
}
