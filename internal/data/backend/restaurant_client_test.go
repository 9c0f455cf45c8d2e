package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRestaurantClient_List(t *testing.T) {
	t.Run("serializes only the filters that carry a value", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"data": {"content": [], "totalPages": 0, "totalElements": 0}}`))
		}))
		defer srv.Close()

		rc := NewRestaurantClient(NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop()), zap.NewNop())

		_, err := rc.List(context.Background(), request.RestaurantListQuery{
			PageQuery:          request.PageQuery{Page: 1, Size: 10},
			VerificationStatus: "pending",
		})

		require.NoError(t, err)
		assert.Equal(t, "page=1&size=10&verificationStatus=pending", gotQuery)
	})

	t.Run("missing content decodes as empty slice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"totalPages": 0, "totalElements": 0}}`))
		}))
		defer srv.Close()

		rc := NewRestaurantClient(NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop()), zap.NewNop())

		page, err := rc.List(context.Background(), request.RestaurantListQuery{
			PageQuery: request.PageQuery{Page: 0, Size: 20},
		})

		require.NoError(t, err)
		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
	})
}

func TestRestaurantClient_Pending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/restaurants/pending", r.URL.Path)
		w.Write([]byte(`{"data": [
			{"restaurantId": "r-1", "name": "Warung Padang", "verificationStatus": "pending"},
			{"restaurantId": "r-2", "name": "Bakso Malang", "verificationStatus": "pending"},
			{"restaurantId": "r-3", "name": "Sate Madura", "verificationStatus": "pending"}
		]}`))
	}))
	defer srv.Close()

	rc := NewRestaurantClient(NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop()), zap.NewNop())

	pending, err := rc.Pending(context.Background())

	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "r-1", pending[0].RestaurantID)
	assert.Equal(t, entity.VerificationPending, pending[0].VerificationStatus)
}

func TestRestaurantClient_UpdateVerification(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data": {"restaurantId": "r-1", "verificationStatus": "verified"}}`))
	}))
	defer srv.Close()

	rc := NewRestaurantClient(NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop()), zap.NewNop())

	restaurant, err := rc.UpdateVerification(context.Background(), "r-1", "verified")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/admin/restaurants/r-1/verification", gotPath)
	assert.Equal(t, "status=verified", gotQuery)
	assert.Equal(t, entity.VerificationVerified, restaurant.VerificationStatus)
}
