package core

// ---- GPIO handles ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is the subset of machine.Pin the HAL drives directly.
type GPIOPin interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(bool)
	Get() bool
	Toggle()
}

// PinFactory supplies GPIO pins by Arduino digital number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}
