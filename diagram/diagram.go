// Package diagram renders a Board as an SVG board diagram, for
// debugging and inspection. It is never on the search hot path.
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	chess "github.com/barakmich/gochess"
)

const (
	squareSize = 45
	boardSize  = squareSize * 8
)

var (
	lightColor = "fill:#f0d9b5"
	darkColor  = "fill:#b58863"
)

// pieceGlyph is the Unicode chess glyph for a piece, used as SVG text
// rather than a sprite sheet.
var pieceGlyph = map[chess.PieceType]map[chess.Color]string{
	chess.Pawn:   {chess.White: "♙", chess.Black: "♟"},
	chess.Knight: {chess.White: "♘", chess.Black: "♞"},
	chess.Bishop: {chess.White: "♗", chess.Black: "♝"},
	chess.Rook:   {chess.White: "♖", chess.Black: "♜"},
	chess.Queen:  {chess.White: "♕", chess.Black: "♛"},
	chess.King:   {chess.White: "♔", chess.Black: "♚"},
}

// Render writes an SVG rendering of b to w, rank 8 at the top, file a
// on the left, matching the orientation of Board.String's FEN rank
// ordering.
func Render(w io.Writer, b *chess.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			style := lightColor
			if (file+rank)%2 == 0 {
				style = darkColor
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			p := b.PieceAt(sq)
			if p == chess.NoPiece {
				continue
			}
			glyph, ok := pieceGlyph[p.Type()][p.Color()]
			if !ok {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+squareSize/4, glyph,
				"text-anchor:middle;font-size:32px")
		}
	}
}
