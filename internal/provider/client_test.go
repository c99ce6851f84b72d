package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:      srv.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})
}

func serveToken(w http.ResponseWriter, expiresIn int) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"access_token": "test-token", "token_type": "Bearer", "expires_in": %d}`, expiresIn)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"success": true, "data": []}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClientPostsNormalizedPayload(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		fmt.Fprint(w, `{"success": true, "data": []}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	req := validRequest()
	req.ReturnDate = strPtr("2026-09-22")
	req.Adults = 2
	req.CabinClass = "BUSINESS"

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "CGK", gotBody["originSkyId"])
	assert.Equal(t, "DPS", gotBody["destinationSkyId"])
	assert.Equal(t, "95673506", gotBody["originEntityId"])
	assert.Equal(t, "2026-09-15", gotBody["departureDate"])
	assert.Equal(t, "2026-09-22", gotBody["returnDate"])
	assert.Equal(t, "business", gotBody["cabinClass"])
	assert.Equal(t, "2", gotBody["adults"])
	assert.Equal(t, "best", gotBody["sortBy"])
	assert.Equal(t, "en-US", gotBody["market"])
}

func TestClientTokenRequestForm(t *testing.T) {
	var gotContentType string
	var gotForm url.Values

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = r.ParseForm()
		gotForm = r.PostForm
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "data": []}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "client_credentials", gotForm.Get("grant_type"))
	assert.Equal(t, "client-id", gotForm.Get("client_id"))
	assert.Equal(t, "client-secret", gotForm.Get("client_secret"))
}

func TestClientReusesFreshToken(t *testing.T) {
	tokenRequests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "data": []}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, tokenRequests)
}

func TestClientRefreshesExpiringToken(t *testing.T) {
	tokenRequests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		// Expires inside the refresh buffer, so every call refetches.
		serveToken(w, 30)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "data": []}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, tokenRequests)
}

func TestClientRejectedCredentials(t *testing.T) {
	apiRequests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "invalid client credentials"}`)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		apiRequests++
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	resp, err := client.SearchFlights(context.Background(), validRequest())
	assert.Nil(t, resp)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid client credentials", authErr.Message)
	assert.Equal(t, 0, apiRequests)
}

func TestClientTokenEndpointFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message": "oauth backend down"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, http.StatusInternalServerError, searchErr.StatusCode)
	assert.Equal(t, "oauth backend down", searchErr.Message)
}

func TestClientUnauthorizedAPICall(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "token revoked"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "token revoked", authErr.Message)
}

func TestClientUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message": "search backend unavailable"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, http.StatusInternalServerError, searchErr.StatusCode)
	assert.Equal(t, "search backend unavailable", searchErr.Message)
}

func TestClientUpstreamFailureWithoutMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "upstream returned HTTP 503 (Service Unavailable)", searchErr.Message)
}

func TestClientValidationSkipsNetwork(t *testing.T) {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	req := validRequest()
	req.DestinationEntityID = ""

	client := newTestClient(srv)
	resp, err := client.SearchFlights(context.Background(), req)
	assert.Nil(t, resp)

	var fieldErr *models.MissingFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, 0, requests)
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv)
	_, err := client.SearchFlights(context.Background(), validRequest())

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, 0, searchErr.StatusCode)
	assert.Error(t, searchErr.Unwrap())
}

func TestClientSearchFlightsShapesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "count": 7, "data": [
			{"id": "offer-1", "price": {"total": 85, "currency": "USD"}}
		]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	resp, err := client.SearchFlights(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "offer-1", resp.Offers[0].ID)
	assert.NotNil(t, resp.Dictionaries.Locations)
}

func TestClientSearchAirports(t *testing.T) {
	var gotQuery, gotLocale string

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/search-airports", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotLocale = r.URL.Query().Get("locale")
		fmt.Fprint(w, `{"success": true, "data": [
			{"skyId": "CGK", "entityId": "95673506", "name": "Soekarno-Hatta International", "city": "Jakarta", "country": "Indonesia"},
			{"skyId": "HLP", "entityId": "95673449", "name": "Halim Perdanakusuma", "city": "Jakarta", "country": "Indonesia"}
		]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	airports, err := client.SearchAirports(context.Background(), "jakarta", "")
	require.NoError(t, err)

	assert.Equal(t, "jakarta", gotQuery)
	assert.Equal(t, "en-US", gotLocale)
	require.Len(t, airports, 2)
	assert.Equal(t, "CGK", airports[0].SkyID)
	assert.Equal(t, "HLP", airports[1].SkyID)
}

func TestClientSearchAirportsEmptyQuery(t *testing.T) {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := newTestClient(srv)
	airports, err := client.SearchAirports(context.Background(), "   ", "en-US")
	assert.Nil(t, airports)

	var fieldErr *models.MissingFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "query", fieldErr.Field)
	assert.Equal(t, 0, requests)
}

func TestClientNearbyAirports(t *testing.T) {
	var gotLat, gotLng, gotLocale string

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		serveToken(w, 3600)
	})
	mux.HandleFunc("/flights/nearby-airports", func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("lat")
		gotLng = r.URL.Query().Get("lng")
		gotLocale = r.URL.Query().Get("locale")
		fmt.Fprint(w, `{"success": true, "data": {
			"current": {"skyId": "CGK", "entityId": "95673506", "name": "Soekarno-Hatta International", "city": "Jakarta", "country": "Indonesia"},
			"nearby": [
				{"skyId": "HLP", "entityId": "95673449", "name": "Halim Perdanakusuma", "city": "Jakarta", "country": "Indonesia"}
			]
		}}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	nearby, err := client.NearbyAirports(context.Background(), -6.2, 106.816666, "id-ID")
	require.NoError(t, err)

	assert.Equal(t, "-6.2", gotLat)
	assert.Equal(t, "106.816666", gotLng)
	assert.Equal(t, "id-ID", gotLocale)
	require.NotNil(t, nearby.Current)
	assert.Equal(t, "CGK", nearby.Current.SkyID)
	require.Len(t, nearby.Nearby, 1)
}
