package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// checkoutSession mirrors the fields of a Stripe checkout session that the
// service reads.
type checkoutSession struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Mode   string `json:"mode"`
	URL    string `json:"url"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	port := ":12111"
	http.HandleFunc("/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		id := fmt.Sprintf("cs_test_mock_%d", time.Now().UnixNano())
		resp := checkoutSession{
			ID:     id,
			Object: "checkout.session",
			Mode:   r.PostForm.Get("mode"),
			URL:    "https://checkout.stripe.com/c/pay/" + id,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)

		log.Info().
			Str("session_id", id).
			Str("unit_amount", r.PostForm.Get("line_items[0][price_data][unit_amount]")).
			Str("currency", r.PostForm.Get("line_items[0][price_data][currency]")).
			Msg("Processed mock checkout session")
	})

	log.Info().Str("addr", port).Msg("Mock Stripe server starting")
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatal().Err(err).Msg("mock server stopped")
	}
}
