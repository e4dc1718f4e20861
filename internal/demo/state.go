package demo

import (
	"github.com/mesh-intelligence/patternbook/pkg/state"
)

func stateMusicPlayer(r *Runner) error {
	r.banner("State Pattern - Music Player Example")

	player := state.NewPlayer(r.Out)

	r.println("1. Click Play (Stopped -> Playing)")
	player.ClickPlay()
	r.println()

	r.println("2. Click Next (Playing -> Next Track)")
	player.ClickNext()
	r.println()

	r.println("3. Click Lock (Playing -> Locked)")
	player.ClickLock()
	r.println()

	r.println("4. Click Play (Locked -> Do nothing)")
	player.ClickPlay()
	r.println()

	r.println("5. Click Lock (Locked -> Playing)")
	player.ClickLock()
	r.println()

	r.println("6. Click Play (Playing -> Stopped)")
	player.ClickPlay()
	r.println()

	r.footer(
		"Key Benefit: Object behavior changes based on its internal state,",
		"avoiding massive if-else statements!",
	)
	return nil
}

func stateVendingMachine(r *Runner) error {
	r.banner("State Pattern - Vending Machine Example")

	machine := state.NewMachine(r.Out)
	machine.Status()

	r.println()
	r.step("1. Attempting to select product without money:")
	machine.SelectProduct("Coke")
	r.println()

	r.step("2. Inserting money:")
	machine.InsertMoney(2.00)
	machine.Status()
	r.println()

	r.step("3. Selecting product:")
	machine.SelectProduct("Coke")
	machine.Status()
	r.println()

	r.step("4. Dispensing product:")
	machine.Dispense()
	machine.Status()
	r.println()

	r.step("5. Another purchase:")
	machine.InsertMoney(1.50)
	machine.SelectProduct("Pepsi")
	machine.Dispense()
	machine.Status()
	r.println()

	r.step("6. Attempting to buy out-of-stock product:")
	machine.InsertMoney(1.00)
	machine.SelectProduct("Candy")
	machine.Dispense()
	machine.Status()
	r.println()

	r.step("7. Insufficient funds scenario:")
	machine.InsertMoney(1.00)
	machine.SelectProduct("Chips")
	machine.Status()
	r.println()

	r.footer(
		"Key Benefit: State-specific behavior is encapsulated in",
		"separate types, making state management clear and maintainable!",
	)
	return nil
}

func stateTrafficLight(r *Runner) error {
	r.banner("State Pattern - Traffic Light Example")

	light := state.NewLight(r.Out)
	light.Run(2)

	r.println()
	r.footer(
		"Key Benefit: Each state knows its own behavior and",
		"next state, making state transitions clear and maintainable!",
	)
	return nil
}
