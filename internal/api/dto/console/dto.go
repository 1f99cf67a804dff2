package console

// Тексты консольной сессии
const (
	DepositPrompt  = "Enter a deposit amount: "
	DepositInvalid = "Invalid deposit amount, try again."

	LinesPrompt  = "Enter the number of lines to bet on (1-3): "
	LinesInvalid = "Invalid number of lines, try again."

	BetPrompt  = "Enter the bet per line: "
	BetInvalid = "Invalid bet, try again."

	ReplayPrompt = "Do you want to play again (y/n)?"
	ReplayYes    = "y"

	BalanceFormat  = "You have a balance of %s"
	WinningsFormat = "You won %s"
	OutOfMoney     = "You ran out of money!"
)
