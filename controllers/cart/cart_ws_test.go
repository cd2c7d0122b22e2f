package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/state"
)

func newSocketServer(t *testing.T, store *state.CartStore, cat *catalog.Client, userID string) (*gin.Engine, *httptest.Server) {
	t.Helper()
	r := newRouter(store, cat, userID)
	r.GET("/user/cart/ws", CartWebSocketHandler(store, cat))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return r, srv
}

func dialCartSocket(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/user/cart/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	// Registration happens on the server after the handshake returns.
	require.Eventually(t, func() bool { return hasClients(userID) }, time.Second, 10*time.Millisecond)
	return conn
}

func readSummary(t *testing.T, conn *websocket.Conn) state.Summary {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var summary state.Summary
	require.NoError(t, conn.ReadJSON(&summary))
	return summary
}

func TestCartSocketPushesSummaryAfterAdd(t *testing.T) {
	store := state.NewCartStore()
	cat := newCatalogServer(t)
	r, srv := newSocketServer(t, store, cat, "u1")

	conn := dialCartSocket(t, srv, "u1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", AddCartItemInput{ProductID: 1, Size: "M", Color: "Red", Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)

	summary := readSummary(t, conn)
	require.Equal(t, 20.0, summary.Subtotal)
	require.Equal(t, 10.0, summary.ShippingCost)
	require.Equal(t, 30.0, summary.Total)
}

func TestSummaryNotifierPushesToOpenSockets(t *testing.T) {
	store := state.NewCartStore()
	cat := newCatalogServer(t)
	_, srv := newSocketServer(t, store, cat, "u2")

	conn := dialCartSocket(t, srv, "u2")

	// Checkout empties the cart through the store and then calls the
	// notifier; the socket should see the re-priced (empty) summary.
	store.Add("u2", 2, "42", "Black", 1)
	store.ClearUser("u2")
	SummaryNotifier(store, cat)("u2")

	require.Equal(t, state.Summary{}, readSummary(t, conn))
}
