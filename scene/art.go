package scene

import "strings"

func art(lines ...string) string {
	return strings.Join(lines, "\n")
}

var titleSnake = art(
	"███████╗███╗   ██╗ █████╗ ██╗  ██╗███████╗",
	"██╔════╝████╗  ██║██╔══██╗██║ ██╔╝██╔════╝",
	"███████╗██╔██╗ ██║███████║█████╔╝ █████╗  ",
	"╚════██║██║╚██╗██║██╔══██║██╔═██╗ ██╔══╝  ",
	"███████║██║ ╚████║██║  ██║██║  ██╗███████╗",
	"╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝",
)

var titlePaused = art(
	"██████╗  █████╗ ██╗   ██╗███████╗███████╗██████╗ ",
	"██╔══██╗██╔══██╗██║   ██║██╔════╝██╔════╝██╔══██╗",
	"██████╔╝███████║██║   ██║███████╗█████╗  ██║  ██║",
	"██╔═══╝ ██╔══██║██║   ██║╚════██║██╔══╝  ██║  ██║",
	"██║     ██║  ██║╚██████╔╝███████║███████╗██████╔╝",
	"╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝╚═════╝ ",
)

var titleGameOver = art(
	" ██████╗  █████╗ ███╗   ███╗███████╗     ██████╗ ██╗   ██╗███████╗██████╗ ",
	"██╔════╝ ██╔══██╗████╗ ████║██╔════╝    ██╔═══██╗██║   ██║██╔════╝██╔══██╗",
	"██║  ███╗███████║██╔████╔██║█████╗      ██║   ██║██║   ██║█████╗  ██████╔╝",
	"██║   ██║██╔══██║██║╚██╔╝██║██╔══╝      ██║   ██║╚██╗ ██╔╝██╔══╝  ██╔══██╗",
	"╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗    ╚██████╔╝ ╚████╔╝ ███████╗██║  ██║",
	" ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝     ╚═════╝   ╚═══╝  ╚══════╝╚═╝  ╚═╝",
)

// Two coiled loops drawn under the main menu title
var backdrop = art(
	"   ▄▄████████▄▄             ▄▄█▀▀▀▀█▄▄   ",
	" ▄███▀▀    ▀▀███▄        ▄███▀      ▀██▄ ",
	"███▀          ▀███▄   ▄███▀           ██▌",
	"███             ▀███▄███▀             ██▌",
	"▀███▄          ▄██▀▀███▄            ▄██▀ ",
	"  ▀▀██████████▀▀      ▀▀██████████▀▀▀   ",
)
