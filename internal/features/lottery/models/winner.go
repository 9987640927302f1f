package models

// Winner records the contestant drawn for one game.
type Winner struct {
	ID         string `json:"id"`
	GameName   string `json:"game_name"`
	WinnerName string `json:"winner_name"`
	DrawDate   string `json:"draw_date"`
}

// HasWinner reports whether a name was drawn. Games charged with nobody
// eligible produce an entry without one.
func (w Winner) HasWinner() bool {
	return w.WinnerName != ""
}
