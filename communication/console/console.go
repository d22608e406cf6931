package console

import (
	"battle/game"
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Communicator reads compositions typed as "<soldiers> <archers> <cavalry>".
type Communicator struct {
	in  *bufio.Reader
	out io.Writer
}

func NewCommunicator(in io.Reader, out io.Writer) *Communicator {
	return &Communicator{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Communicator) ProposeComposition(player string, budget int) (game.Composition, error) {
	fmt.Fprintf(c.out, "Player %s choose your army as ", player)

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
		if err == io.EOF {
			fmt.Fprintln(c.out)
		}
		return game.Composition{}, err
	}
	return parse(line)
}

func parse(line string) (game.Composition, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Composition{}, fmt.Errorf("%w: expected 3 numbers, got %q",
			game.ErrInvalidArmyComposition, strings.TrimSpace(line))
	}

	counts := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return game.Composition{}, fmt.Errorf("%w: %q is not a number",
				game.ErrInvalidArmyComposition, field)
		}
		counts[i] = n
	}
	return game.Composition{Soldiers: counts[0], Archers: counts[1], Cavalry: counts[2]}, nil
}

func (c *Communicator) RejectComposition(player string, reason error) {
	fmt.Fprintln(c.out, "Invalid number of units, try again")
}

func (c *Communicator) AcceptComposition(player string, comp game.Composition) {
	fmt.Fprintf(c.out, "Where %d is the number of soldiers\n", comp.Soldiers)
	fmt.Fprintf(c.out, "      %d is the number of archers\n", comp.Archers)
	fmt.Fprintf(c.out, "      %d is the number of cavalries\n", comp.Cavalry)
}
