package gamemath

import cfg "github.com/automoto/cloudcat/config"

// RowForVector returns the facing row for a movement vector. Diagonals are
// resolved before the pure axes; a zero vector keeps current.
func RowForVector(x, y float64, current cfg.Row) cfg.Row {
	switch {
	case x < 0:
		if y < 0 {
			return cfg.RowUpLeft
		}
		if y > 0 {
			return cfg.RowDownLeft
		}
		return cfg.RowLeft
	case x > 0:
		if y < 0 {
			return cfg.RowUpRight
		}
		if y > 0 {
			return cfg.RowDownRight
		}
		return cfg.RowRight
	case y < 0:
		return cfg.RowUp
	case y > 0:
		return cfg.RowDown
	}
	return current
}
