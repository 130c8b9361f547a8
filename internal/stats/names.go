package stats

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/whistkeeper/internal/models"
)

// SortPlayersByName orders players alphabetically using Danish collation,
// so Æ, Ø and Å sort after Z.
func SortPlayersByName(players []models.Player) []models.Player {
	sorted := make([]models.Player, len(players))
	copy(sorted, players)

	c := collate.New(language.Danish, collate.IgnoreCase)
	names := make([]string, len(sorted))
	for i, p := range sorted {
		names[i] = p.Name
	}
	c.Sort(playerSorter{players: sorted, names: names})
	return sorted
}

// playerSorter adapts a player slice to collate.Lister.
type playerSorter struct {
	players []models.Player
	names   []string
}

func (s playerSorter) Len() int { return len(s.players) }

func (s playerSorter) Swap(i, j int) {
	s.players[i], s.players[j] = s.players[j], s.players[i]
	s.names[i], s.names[j] = s.names[j], s.names[i]
}

func (s playerSorter) Bytes(i int) []byte {
	return []byte(s.names[i])
}
