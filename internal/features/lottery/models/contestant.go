package models

import "slices"

// HomeState is the residence code of contestants who can enter any game.
const HomeState = "CO"

// ContestantInfo holds the details a contestant is created from.
type ContestantInfo struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Age              int    `json:"age"`
	StateOfResidence string `json:"state_of_residence"`
	SpendingMoney    int    `json:"spending_money"`
}

// Contestant is a person taking part in the lottery.
// The full name is fixed at creation; the balance only changes through Charge.
type Contestant struct {
	fullName         string
	firstName        string
	lastName         string
	age              int
	stateOfResidence string
	spendingMoney    int
	gameInterests    []string
}

func NewContestant(info ContestantInfo) *Contestant {
	return &Contestant{
		fullName:         info.FirstName + " " + info.LastName,
		firstName:        info.FirstName,
		lastName:         info.LastName,
		age:              info.Age,
		stateOfResidence: info.StateOfResidence,
		spendingMoney:    info.SpendingMoney,
		gameInterests:    []string{},
	}
}

func (c *Contestant) FullName() string         { return c.fullName }
func (c *Contestant) FirstName() string        { return c.firstName }
func (c *Contestant) LastName() string         { return c.lastName }
func (c *Contestant) Age() int                 { return c.age }
func (c *Contestant) StateOfResidence() string { return c.stateOfResidence }
func (c *Contestant) SpendingMoney() int       { return c.spendingMoney }

// GameInterests returns the declared interests in the order they were added.
func (c *Contestant) GameInterests() []string {
	return slices.Clone(c.gameInterests)
}

// AddGameInterest appends a game name. Duplicates are kept.
func (c *Contestant) AddGameInterest(gameName string) {
	c.gameInterests = append(c.gameInterests, gameName)
}

// IsInterestedIn reports whether gameName was declared as an interest.
func (c *Contestant) IsInterestedIn(gameName string) bool {
	return slices.Contains(c.gameInterests, gameName)
}

// IsResidentOf reports whether the contestant lives in state.
func (c *Contestant) IsResidentOf(state string) bool {
	return c.stateOfResidence == state
}

// IsOutOfState reports whether the contestant lives outside HomeState.
func (c *Contestant) IsOutOfState() bool {
	return !c.IsResidentOf(HomeState)
}

// Charge subtracts amount and returns the new balance.
// There is no floor: charging more than the balance leaves it negative.
func (c *Contestant) Charge(amount int) int {
	c.spendingMoney -= amount
	return c.spendingMoney
}
