package webpath

const (
	Health = "/health"

	Api          = "/api/auth"
	Register     = "/register"
	Login        = "/login"
	Profile      = "/profile"
	Search       = "/search"
	AddFood      = "/add-food"
	LogFood      = "/log-food"
	DailySummary = "/daily-summary"
)

