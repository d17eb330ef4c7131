package mux

import (
	"errors"
	"net/http"

	"winninghands/pkg/deck"
)

type winnersRequest struct {
	Hands []string `json:"hands"`
}

type winnersResponse struct {
	Winners  []string `json:"winners"`
	Category string   `json:"category,omitempty"`
}

func (m *Mux) postWinners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload winnersRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		results, err := m.evaluator.Winners(r.Context(), payload.Hands)
		if err != nil {
			writeEvaluationError(w, r, err)
			return
		}

		resp := winnersResponse{
			Winners: make([]string, len(results)),
		}

		for i, result := range results {
			resp.Winners[i] = result.Hand
		}

		if len(results) > 0 {
			resp.Category = results[0].Category.String()
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type classifyRequest struct {
	Hand string `json:"hand"`
}

type classifyResponse struct {
	Hand     string   `json:"hand"`
	Category string   `json:"category"`
	Strength int      `json:"strength"`
	Cards    []string `json:"cards"`
	Wheel    bool     `json:"wheel"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload classifyRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		result, err := m.evaluator.Evaluate(payload.Hand)
		if err != nil {
			writeEvaluationError(w, r, err)
			return
		}

		cards := result.Analyzer.GetCards()
		resp := classifyResponse{
			Hand:     result.Hand,
			Category: result.Category.String(),
			Strength: result.Strength,
			Cards:    make([]string, len(cards)),
			Wheel:    result.Analyzer.IsWheel(),
		}

		for i, card := range cards {
			resp.Cards[i] = deck.CardToString(card)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// hands that cannot be parsed are the client's fault, anything else is ours
func writeEvaluationError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, deck.ErrInvalidRank) || errors.Is(err, deck.ErrInvalidSuit) || errors.Is(err, deck.ErrWrongCardCount) {
		writeJSONError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, r, http.StatusInternalServerError, err)
}
