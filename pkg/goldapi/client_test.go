package goldapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/pkg/goldapi"
)

func newTestServer(t *testing.T) (*httptest.Server, *goldapi.Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /gold-prices", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.GoldPrice{
			{ID: 1, Source: model.SourceSJC},
			{ID: 2, Source: model.SourceDOJI},
		})
	})
	mux.HandleFunc("GET /gold-prices/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.GoldPrice{ID: 1, Source: model.SourceSJC})
	})
	mux.HandleFunc("GET /gold-prices/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	mux.HandleFunc("GET /gold-prices/source/SJC", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.GoldPrice{{ID: 1, Source: model.SourceSJC}})
	})
	mux.HandleFunc("GET /gold-prices/source/BTMC", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Source not supported"}`))
	})
	mux.HandleFunc("POST /gold-prices", func(w http.ResponseWriter, r *http.Request) {
		var fields goldapi.Fields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		if fields.Source == nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.GoldPrice{ID: 3, Source: *fields.Source, GoldType: fields.GoldType})
	})
	mux.HandleFunc("PUT /gold-prices/1", func(w http.ResponseWriter, r *http.Request) {
		var fields goldapi.Fields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		_ = json.NewEncoder(w).Encode(model.GoldPrice{ID: 1, Source: model.SourceSJC, GoldType: fields.GoldType})
	})
	mux.HandleFunc("DELETE /gold-prices/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Deleted"}`))
	})
	mux.HandleFunc("DELETE /gold-prices/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, goldapi.New(srv.URL, srv.Client())
}

func Test_Client_Fetch(t *testing.T) {
	ctx := context.Background()
	_, client := newTestServer(t)

	t.Run("should fetch every quote and clear the error flag", func(t *testing.T) {
		rows := client.GetAll(ctx)
		require.Len(t, rows, 2)
		require.Empty(t, client.Err())
		require.False(t, client.Loading())
	})

	t.Run("should fetch one quote by id", func(t *testing.T) {
		row := client.GetByID(ctx, 1)
		require.NotNil(t, row)
		require.Equal(t, int64(1), row.ID)
		require.Empty(t, client.Err())
	})

	t.Run("should record a message and return nil when the id is unknown", func(t *testing.T) {
		row := client.GetByID(ctx, 404)
		require.Nil(t, row)
		require.Equal(t, "Failed to fetch by ID", client.Err())
	})

	t.Run("should fetch quotes of one vendor", func(t *testing.T) {
		rows := client.GetBySource(ctx, "SJC")
		require.Len(t, rows, 1)
		require.Empty(t, client.Err())
	})

	t.Run("should record a message and return an empty slice for a rejected vendor", func(t *testing.T) {
		rows := client.GetBySource(ctx, "BTMC")
		require.NotNil(t, rows)
		require.Empty(t, rows)
		require.Equal(t, "Failed to fetch by source", client.Err())
	})

	t.Run("should clear the previous failure on the next success", func(t *testing.T) {
		_ = client.GetByID(ctx, 404)
		require.Equal(t, "Failed to fetch by ID", client.Err())

		rows := client.GetAll(ctx)
		require.Len(t, rows, 2)
		require.Empty(t, client.Err())
	})
}

func Test_Client_Mutations(t *testing.T) {
	ctx := context.Background()
	_, client := newTestServer(t)

	t.Run("should create and return the stored quote", func(t *testing.T) {
		row := client.Create(ctx, goldapi.Fields{
			Source:   goldapi.String("SJC"),
			GoldType: goldapi.String("Vàng SJC 1L"),
		})
		require.NotNil(t, row)
		require.Equal(t, int64(3), row.ID)
		require.Equal(t, "Vàng SJC 1L", *row.GoldType)
		require.Empty(t, client.Err())
	})

	t.Run("should record a message when the create is rejected", func(t *testing.T) {
		row := client.Create(ctx, goldapi.Fields{})
		require.Nil(t, row)
		require.Equal(t, "Failed to create", client.Err())
	})

	t.Run("should update and return the patched quote", func(t *testing.T) {
		row := client.Update(ctx, 1, goldapi.Fields{GoldType: goldapi.String("Nhẫn 9999")})
		require.NotNil(t, row)
		require.Equal(t, "Nhẫn 9999", *row.GoldType)
		require.Empty(t, client.Err())
	})

	t.Run("should confirm a delete", func(t *testing.T) {
		require.True(t, client.Remove(ctx, 1))
		require.Empty(t, client.Err())
	})

	t.Run("shouldn't confirm a delete the API refused", func(t *testing.T) {
		require.False(t, client.Remove(ctx, 404))
		require.Equal(t, "Failed to delete", client.Err())
	})
}

func Test_Client_Unreachable(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := goldapi.New(srv.URL, nil)

	t.Run("should fall back to safe defaults when the API is down", func(t *testing.T) {
		rows := client.GetAll(ctx)
		require.NotNil(t, rows)
		require.Empty(t, rows)
		require.Equal(t, "Failed to fetch all", client.Err())

		require.Nil(t, client.Update(ctx, 1, goldapi.Fields{}))
		require.Equal(t, "Failed to update", client.Err())
	})
}
