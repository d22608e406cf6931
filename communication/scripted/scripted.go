package scripted

import (
	"battle/game"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var ErrNoProposal = errors.New("no proposal left")

// Communicator replays a fixed list of proposals per player, in order.
type Communicator struct {
	proposals map[string][]game.Composition
	players   []string
	next      map[string]int
	Rejected  map[string][]error
	Accepted  map[string]game.Composition
}

func NewCommunicator() *Communicator {
	return &Communicator{
		proposals: make(map[string][]game.Composition),
		next:      make(map[string]int),
		Rejected:  make(map[string][]error),
		Accepted:  make(map[string]game.Composition),
	}
}

// Add queues proposals for a player after any already queued.
func (c *Communicator) Add(player string, comps ...game.Composition) *Communicator {
	if _, ok := c.proposals[player]; !ok {
		c.players = append(c.players, player)
	}
	c.proposals[player] = append(c.proposals[player], comps...)
	return c
}

// Players lists the scripted players in the order they were first added.
func (c *Communicator) Players() []string {
	return slices.Clone(c.players)
}

func (c *Communicator) ProposeComposition(player string, budget int) (game.Composition, error) {
	i := c.next[player]
	queued := c.proposals[player]
	if i >= len(queued) {
		return game.Composition{}, fmt.Errorf("%w for player %s", ErrNoProposal, player)
	}
	c.next[player] = i + 1
	return queued[i], nil
}

func (c *Communicator) RejectComposition(player string, reason error) {
	c.Rejected[player] = append(c.Rejected[player], reason)
}

func (c *Communicator) AcceptComposition(player string, comp game.Composition) {
	c.Accepted[player] = comp
}

type armyFile struct {
	Players []playerEntry `yaml:"players"`
}

type playerEntry struct {
	Name             string `yaml:"name"`
	game.Composition `yaml:",inline"`
}

// Parse reads an army file. A player listed more than once gets one proposal
// per entry, tried in file order.
func Parse(data []byte) (*Communicator, error) {
	var f armyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse army file: %w", err)
	}

	c := NewCommunicator()
	for i, entry := range f.Players {
		if entry.Name == "" {
			return nil, fmt.Errorf("army file entry %d has no player name", i)
		}
		c.Add(entry.Name, entry.Composition)
	}
	return c, nil
}

func Load(path string) (*Communicator, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read army file: %w", err)
	}
	return Parse(b)
}
