package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/awaisrafeeq/chesstutor/internal/board"
	"github.com/awaisrafeeq/chesstutor/internal/engine"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to analyze")
	square := flag.String("square", "", "also report on the piece on this square, e.g. e4")
	flag.Parse()

	eng, err := engine.NewFromFEN(*fen)
	if err != nil {
		log.Fatalf("bad FEN: %v", err)
	}
	snap, err := eng.Snapshot()
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	fmt.Print(eng.Position())
	fmt.Printf("Status: %s\n", snap.Status)
	if snap.InCheck {
		fmt.Printf("Check from: %s\n", strings.Join(snap.Checkers, " "))
	}
	for _, opt := range snap.Castling {
		fmt.Printf("Castle %s: right=%v allowed=%v (king to %s, rook to %s)\n",
			opt.Side, opt.Right, opt.Allowed, opt.KingTo, opt.RookTo)
	}
	if snap.EnPassant.Target != "" {
		fmt.Printf("En passant on %s, capturers: %s\n",
			snap.EnPassant.Target, strings.Join(snap.EnPassant.Capturers, " "))
	}
	if snap.InsufficientMaterial {
		fmt.Println("Insufficient material: neither side can force mate")
	}
	if snap.FiftyMoveDraw {
		fmt.Println("Fifty-move rule: draw can be claimed")
	}

	sans := make([]string, len(snap.LegalMoves))
	for i, m := range snap.LegalMoves {
		sans[i] = m.SAN
	}
	fmt.Printf("Legal moves (%d): %s\n", len(sans), strings.Join(sans, " "))

	if *square != "" {
		report, err := eng.InspectSquare(*square)
		if err != nil {
			log.Fatalf("inspect %s: %v", *square, err)
		}
		fmt.Printf("\n%s: %s %s\n", report.Square, report.Color, report.Type)
		fmt.Printf("  attacks:      %s\n", strings.Join(report.Attacks, " "))
		fmt.Printf("  destinations: %s\n", strings.Join(report.Destinations, " "))
		if len(report.AttackedBy) > 0 {
			fmt.Printf("  attacked by:  %s\n", strings.Join(report.AttackedBy, " "))
		}
	}
}
