package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"dailyReflectAPI/internal/auth"
	"dailyReflectAPI/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// Subscribe upgrades to a websocket and streams collection snapshots. The
// first snapshot arrives right after the upgrade; later ones follow each
// confirmed mutation.
func (h *FeedHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentUser(r.Context())
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	collection := mux.Vars(r)["collection"]
	if !h.feedService.HasCollection(collection) {
		respondWithError(w, http.StatusNotFound, "Unknown collection")
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Could not upgrade connection: %v", err)
		return
	}

	client := h.feedService.NewClient(ws, id.ClerkID, collection)
	h.feedService.Register(r.Context(), client)

	go client.WritePump()
	go client.ReadPump()
}
