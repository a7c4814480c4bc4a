package token

import "strconv"

// Pos locates a token by byte offset in the input expression.
type Pos struct {
	Offset int
}

func (p Pos) String() string {
	return "offset " + strconv.Itoa(p.Offset)
}
