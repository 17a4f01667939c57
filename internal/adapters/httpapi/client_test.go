package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/atelier/internal/adapters/httpapi"
	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/fakeapi"
	"github.com/example/atelier/internal/ports/secondary"
)

type fixture struct {
	api      *fakeapi.Server
	client   *httpapi.Client
	buyer    string
	seller   string
	typeID   int
	sellerID int
}

func setup(t *testing.T, stageToken string) *fixture {
	t.Helper()

	api := fakeapi.New(stageToken)
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	sellerID := api.AddAccount(fakeapi.Account{Email: "mara@example.com", Password: "pw", Username: "mara", Role: "Seller", City: "Cebu", Bio: "ink"})
	api.AddAccount(fakeapi.Account{Email: "ben@example.com", Password: "pw", Username: "ben", Role: "Buyer"})
	typeID := api.AddCommissionType(sellerID, "Portrait", "1500")

	return &fixture{
		api:      api,
		client:   httpapi.NewClient(srv.URL, httpapi.WithStageToken(stageToken)),
		buyer:    api.TokenFor("ben@example.com"),
		seller:   api.TokenFor("mara@example.com"),
		typeID:   typeID,
		sellerID: sellerID,
	}
}

func TestLogin(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := context.Background()

	rec, err := f.client.Login(ctx, "ben@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, f.buyer, rec.Token)
	assert.Equal(t, "Buyer", rec.UserType)

	_, err = f.client.Login(ctx, "ben@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.True(t, secondary.IsUnauthorized(err))
}

func TestCreateCommission_CopiesTypeFields(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)

	rec, err := f.client.CreateCommission(context.Background(), f.buyer, secondary.CreateCommissionRecord{
		CommissionTypeID: f.typeID,
		Description:      "sketch please",
	})
	require.NoError(t, err)

	assert.NotZero(t, rec.ID)
	assert.Equal(t, "Pending", rec.Stage)
	assert.Nil(t, rec.Rating)
	assert.Equal(t, "Portrait", rec.Title)
	assert.True(t, decimal.RequireFromString("1500").Equal(rec.Price))
	assert.Equal(t, "sketch please", rec.Description)
	assert.Equal(t, f.sellerID, rec.SellerID)
}

func TestCreateCommission_UnknownType(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)

	_, err := f.client.CreateCommission(context.Background(), f.buyer, secondary.CreateCommissionRecord{CommissionTypeID: 999})
	require.Error(t, err)
	assert.True(t, secondary.IsNotFound(err))
	assert.Equal(t, "Commission type not found", err.Error())
}

func TestListCommissions(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := context.Background()

	created, err := f.client.CreateCommission(ctx, f.buyer, secondary.CreateCommissionRecord{CommissionTypeID: f.typeID})
	require.NoError(t, err)

	buyerView, err := f.client.ListCommissions(ctx, f.buyer, "buyer")
	require.NoError(t, err)
	require.Len(t, buyerView, 1)
	assert.Equal(t, created.ID, buyerView[0].ID)
	assert.Equal(t, "mara", buyerView[0].SellerUsername)
	assert.Equal(t, "1500", buyerView[0].Price.String())

	sellerView, err := f.client.ListCommissions(ctx, f.seller, "seller")
	require.NoError(t, err)
	require.Len(t, sellerView, 1)
	assert.Equal(t, "ben", sellerView[0].BuyerUsername)
}

func TestListCommissions_PriceAsNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"commissions":[{"commission_id":3,"title":"Chibi","price":750.5,"stage":"InProgress","description":null,"rating":null}]}`))
	}))
	defer srv.Close()

	recs, err := httpapi.NewClient(srv.URL).ListCommissions(context.Background(), "tok", "buyer")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].ID)
	assert.Equal(t, "750.5", recs[0].Price.String())
	assert.Equal(t, "", recs[0].Description)
}

func TestUpdateStage(t *testing.T) {
	for _, mode := range []string{httpapi.StageTokenTarget, httpapi.StageTokenCurrent} {
		t.Run(mode, func(t *testing.T) {
			f := setup(t, mode)
			ctx := context.Background()

			created, err := f.client.CreateCommission(ctx, f.buyer, secondary.CreateCommissionRecord{CommissionTypeID: f.typeID})
			require.NoError(t, err)

			rec, err := f.client.UpdateStage(ctx, f.seller, created.ID, "Pending", "InProgress")
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, "InProgress", rec.Stage)

			rec, err = f.client.UpdateStage(ctx, f.buyer, created.ID, "InProgress", "Completed")
			require.NoError(t, err)
			assert.Equal(t, "Completed", rec.Stage)
			assert.Equal(t, "Completed", f.api.Commission(created.ID).Stage)
		})
	}
}

func TestUpdateStage_PathSegment(t *testing.T) {
	tests := []struct {
		mode     string
		wantPath string
	}{
		{httpapi.StageTokenTarget, "/commission/InProgress/4"},
		{httpapi.StageTokenCurrent, "/commission/Pending/4"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var gotPath, gotMethod string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath, gotMethod = r.URL.Path, r.Method
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			rec, err := httpapi.NewClient(srv.URL, httpapi.WithStageToken(tt.mode)).
				UpdateStage(context.Background(), "tok", 4, "Pending", "InProgress")
			require.NoError(t, err)
			assert.Nil(t, rec)
			assert.Equal(t, http.MethodPatch, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestUpdateStage_WrongActorRejected(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := context.Background()

	created, err := f.client.CreateCommission(ctx, f.buyer, secondary.CreateCommissionRecord{CommissionTypeID: f.typeID})
	require.NoError(t, err)

	_, err = f.client.UpdateStage(ctx, f.buyer, created.ID, "Pending", "InProgress")
	require.Error(t, err)
	assert.Equal(t, "Not allowed to change this commission", err.Error())
	assert.Equal(t, "Pending", f.api.Commission(created.ID).Stage)
}

func TestRateCommission(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := context.Background()

	created, err := f.client.CreateCommission(ctx, f.buyer, secondary.CreateCommissionRecord{CommissionTypeID: f.typeID})
	require.NoError(t, err)
	_, err = f.client.UpdateStage(ctx, f.seller, created.ID, "Pending", "InProgress")
	require.NoError(t, err)
	_, err = f.client.UpdateStage(ctx, f.buyer, created.ID, "InProgress", "Completed")
	require.NoError(t, err)

	rec, err := f.client.RateCommission(ctx, f.buyer, created.ID, 4)
	require.NoError(t, err)
	require.NotNil(t, rec.Rating)
	assert.Equal(t, 4, *rec.Rating)

	_, err = f.client.RateCommission(ctx, f.buyer, created.ID, 2)
	require.Error(t, err)
	assert.Equal(t, "Commission already rated", err.Error())
	assert.Equal(t, 4, *f.api.Commission(created.ID).Rating)
}

func TestCatalog(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := context.Background()

	types, err := f.client.ListCommissionTypes(ctx, "mara")
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Portrait", types[0].Title)
	assert.Equal(t, "1500.00", types[0].Price.StringFixed(2))

	err = f.client.UpdateCommissionType(ctx, f.seller, &secondary.CommissionTypeRecord{
		ID:    f.typeID,
		Title: "Full Portrait",
		Price: decimal.RequireFromString("1800"),
	})
	require.NoError(t, err)

	own, err := f.client.ListOwnCommissionTypes(ctx, f.seller)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Full Portrait", own[0].Title)

	require.NoError(t, f.client.DeleteCommissionType(ctx, f.seller, f.typeID))

	types, err = f.client.ListCommissionTypes(ctx, "mara")
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)
}

func TestCatalog_UnknownArtist(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)

	_, err := f.client.ListCommissionTypes(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, secondary.IsNotFound(err))
	assert.Equal(t, "Artist not found", err.Error())
}

func TestArtists(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := context.Background()

	artists, err := f.client.ListArtists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "mara", artists[0].Username)
	assert.Equal(t, "Cebu", artists[0].City)

	profile, err := f.client.GetArtist(ctx, "mara")
	require.NoError(t, err)
	assert.Equal(t, "ink", profile.Bio)
	assert.Equal(t, "", profile.AvatarURL)
}

func TestHeaders(t *testing.T) {
	f := setup(t, httpapi.StageTokenTarget)
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")

	_, err := f.client.ListCommissions(ctx, f.buyer, "buyer")
	require.NoError(t, err)
	_, err = f.client.ListArtists(context.Background())
	require.NoError(t, err)

	reqs := f.api.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "req-123", reqs[0].RequestID)
	assert.Equal(t, "Bearer "+f.buyer, reqs[0].Authorization)
	assert.NotEmpty(t, reqs[1].RequestID, "a request id is generated when the context has none")
	assert.Empty(t, reqs[1].Authorization)
}

func TestErrors(t *testing.T) {
	t.Run("error body kept verbatim", func(t *testing.T) {
		f := setup(t, httpapi.StageTokenTarget)
		f.api.FailNext(http.StatusUnprocessableEntity, "Seller is on vacation")

		_, err := f.client.ListArtists(context.Background())
		var apiErr *secondary.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "Seller is on vacation", apiErr.Message)
		assert.NotEmpty(t, apiErr.RequestID)
	})

	t.Run("error without body", func(t *testing.T) {
		f := setup(t, httpapi.StageTokenTarget)
		f.api.FailNext(http.StatusInternalServerError, "")

		_, err := f.client.ListArtists(context.Background())
		require.Error(t, err)
		assert.Equal(t, "request failed: 500 Internal Server Error", err.Error())
		assert.False(t, secondary.IsTransport(err))
	})

	t.Run("no response", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := httpapi.NewClient(url).ListArtists(context.Background())
		require.Error(t, err)
		assert.True(t, secondary.IsTransport(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		_, err := httpapi.NewClient(srv.URL).ListArtists(context.Background())
		require.Error(t, err)
		assert.True(t, secondary.IsTransport(err))
	})
}
