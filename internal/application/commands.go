package application

type CreateCycleCommand struct {
	Task          string
	MinutesAmount int
}
