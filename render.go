package main

import (
	"battle/experiments"
	"battle/game"
	"battle/gamemaster"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	drawColor    = color.New(color.FgYellow, color.Bold)
)

func printReport(w io.Writer, outcome game.Outcome, report gamemaster.Report) {
	titleColor.Fprintf(w, "\n%s battle\n", report.Armies[0].Formation)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Player", "Soldiers", "Archers", "Cavalry", "Cost", "Survivors (s/a/c)"}),
	)
	for i, player := range report.Players {
		c := report.Compositions[i]
		left := report.Armies[i].Roster()
		table.Append([]string{
			player,
			strconv.Itoa(c.Soldiers),
			strconv.Itoa(c.Archers),
			strconv.Itoa(c.Cavalry),
			strconv.Itoa(c.Cost()),
			fmt.Sprintf("%d/%d/%d", left.Soldiers, left.Archers, left.Cavalry),
		})
	}
	table.Render()

	for i, army := range report.Armies {
		if army.IsDefeated() {
			continue
		}
		fmt.Fprintf(w, "\nRemaining units of player %s:\n%s\n", report.Players[i], army)
	}

	fmt.Fprintln(w)
	switch outcome {
	case game.Player1:
		successColor.Fprintf(w, "Player %s wins after %d rounds\n", report.Players[0], report.Metric.Rounds)
	case game.Player2:
		successColor.Fprintf(w, "Player %s wins after %d rounds\n", report.Players[1], report.Metric.Rounds)
	default:
		drawColor.Fprintf(w, "Draw after %d rounds\n", report.Metric.Rounds)
	}
}

func printSummary(w io.Writer, result experiments.Result) {
	s := result.Summary
	titleColor.Fprintf(w, "\n%d %s battles\n", s.Battles, result.Setup.Formation)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Draws", "Player 1", "Player 2", "Mean rounds", "Max rounds"}),
	)
	table.Append([]string{
		strconv.Itoa(s.Draws),
		strconv.Itoa(s.Player1),
		strconv.Itoa(s.Player2),
		fmt.Sprintf("%.1f", s.MeanRounds),
		strconv.Itoa(s.MaxRounds),
	})
	table.Render()

	if result.Dir != "" {
		fmt.Fprintf(w, "\nRecords stored in %s\n", result.Dir)
	}
}
