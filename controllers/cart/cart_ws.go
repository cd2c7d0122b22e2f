package cartControllers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/state"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]string) // conn -> user id
)

// GET /user/cart/ws
//
// The client keeps this socket open while the cart screen is visible; after
// every cart mutation it receives the freshly priced summary.
func CartWebSocketHandler(store *state.CartStore, cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		wsMu.Lock()
		wsClients[conn] = userID
		wsMu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				wsMu.Lock()
				delete(wsClients, conn)
				wsMu.Unlock()
				break
			}
		}
	}
}

// SummaryNotifier wraps the summary push in a plain callback so packages that
// mutate the cart from outside (checkout) can broadcast without depending on
// the websocket internals.
func SummaryNotifier(store *state.CartStore, cat *catalog.Client) func(userID string) {
	return func(userID string) {
		go pushSummary(cat, store, userID)
	}
}

func hasClients(userID string) bool {
	wsMu.Lock()
	defer wsMu.Unlock()
	for _, uid := range wsClients {
		if uid == userID {
			return true
		}
	}
	return false
}

func pushSummary(cat *catalog.Client, store *state.CartStore, userID string) {
	if !hasClients(userID) {
		return
	}

	products, err := cat.Products(context.Background())
	if err != nil {
		return
	}
	summary := state.Summarize(store.ItemsFor(userID), state.LookupFromProducts(products)).Rounded()

	wsMu.Lock()
	defer wsMu.Unlock()
	for conn, uid := range wsClients {
		if uid != userID {
			continue
		}
		if err := conn.WriteJSON(summary); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
