package rest

import (
	"encoding/json"
	"net/http"

	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
)

type analyzeRequest struct {
	Board tictactoe.Board `json:"board"`
}

type analyzeResponse struct {
	Turn     tictactoe.Mark  `json:"turn"`
	Terminal bool            `json:"terminal"`
	Winner   tictactoe.Mark  `json:"winner,omitempty"`
	Utility  *int            `json:"utility,omitempty"`
	BestMove *tictactoe.Move `json:"best_move,omitempty"`
}

// analyzeHandler - evaluates a position: whose turn it is, whether the game
// is over, and the optimal move when it is not.
func analyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var request analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	response := analyzeResponse{
		Turn: tictactoe.Turn(request.Board),
	}

	if tictactoe.IsTerminal(request.Board) {
		response.Terminal = true
		response.Winner = tictactoe.Winner(request.Board)

		utility := tictactoe.Utility(request.Board)
		response.Utility = &utility
	} else if move, ok := tictactoe.BestMove(request.Board); ok {
		response.BestMove = &move
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
