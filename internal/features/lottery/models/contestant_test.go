package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAlexander() *Contestant {
	return NewContestant(ContestantInfo{
		FirstName:        "Alexander",
		LastName:         "Aigades",
		Age:              28,
		StateOfResidence: "CO",
		SpendingMoney:    10,
	})
}

func TestNewContestant(t *testing.T) {
	c := newAlexander()

	assert.Equal(t, "Alexander Aigades", c.FullName())
	assert.Equal(t, "Alexander", c.FirstName())
	assert.Equal(t, "Aigades", c.LastName())
	assert.Equal(t, 28, c.Age())
	assert.Equal(t, "CO", c.StateOfResidence())
	assert.Equal(t, 10, c.SpendingMoney())
	assert.Empty(t, c.GameInterests())
}

func TestContestant_AddGameInterest(t *testing.T) {
	c := newAlexander()
	c.AddGameInterest("Pick 4")
	c.AddGameInterest("Mega Millions")
	c.AddGameInterest("Pick 4")

	assert.Equal(t, []string{"Pick 4", "Mega Millions", "Pick 4"}, c.GameInterests())
	assert.True(t, c.IsInterestedIn("Mega Millions"))
	assert.False(t, c.IsInterestedIn("Cash 5"))
	assert.False(t, c.IsInterestedIn("pick 4"))

	interests := c.GameInterests()
	interests[0] = "Cash 5"
	assert.Equal(t, "Pick 4", c.GameInterests()[0], "interests copy must not alias contestant state")
}

func TestContestant_IsOutOfState(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  bool
	}{
		{name: "colorado resident", state: "CO", want: false},
		{name: "pennsylvania resident", state: "PA", want: true},
		{name: "lowercase code differs", state: "co", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContestant(ContestantInfo{FirstName: "A", LastName: "B", Age: 30, StateOfResidence: tt.state})
			assert.Equal(t, tt.want, c.IsOutOfState())
			assert.Equal(t, !tt.want, c.IsResidentOf(HomeState))
		})
	}
}

func TestContestant_Charge(t *testing.T) {
	c := newAlexander()

	assert.Equal(t, 8, c.Charge(2))
	assert.Equal(t, 8, c.SpendingMoney())

	t.Run("allows a negative balance", func(t *testing.T) {
		assert.Equal(t, -2, c.Charge(10))
		assert.Equal(t, -2, c.SpendingMoney())
	})
}

func TestNewGame(t *testing.T) {
	pick4 := NewGame("Pick 4", 2)
	assert.Equal(t, "Pick 4", pick4.Name())
	assert.Equal(t, 2, pick4.Cost())
	assert.False(t, pick4.IsNationalDrawing())

	mega := NewGame("Mega Millions", 5, true)
	assert.True(t, mega.IsNationalDrawing())

	assert.NotSame(t, NewGame("Pick 4", 2), pick4, "games with equal fields are distinct instances")
}

func TestWinner_HasWinner(t *testing.T) {
	assert.True(t, Winner{GameName: "Pick 4", WinnerName: "Grace Hopper"}.HasWinner())
	assert.False(t, Winner{GameName: "Pick 4"}.HasWinner())
}
