// visualize.go - Console rendering of a game in progress.

package match

import (
	"fmt"
	"strings"

	"github.com/brensch/rendezvous/game"
)

// FormatRound renders the board after a round together with what each
// player did.
func FormatRound(state *game.State, actions [game.NumPlayers]game.Action) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== Round %d ===\n", state.Round))
	sb.WriteString(state.Render())
	sb.WriteString(fmt.Sprintf("A=%s B=%s X=%s\n", actions[game.GoodyA], actions[game.GoodyB], actions[game.TheBaddy]))
	return sb.String()
}
