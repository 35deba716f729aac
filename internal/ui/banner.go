package ui

const bannerArt = `
██╗    ██╗ █████╗ ███████╗███╗   ███╗    ██╗  ██╗██╗   ██╗██████╗
██║    ██║██╔══██╗██╔════╝████╗ ████║    ██║  ██║██║   ██║██╔══██╗
██║ █╗ ██║███████║███████╗██╔████╔██║    ███████║██║   ██║██████╔╝
██║███╗██║██╔══██║╚════██║██║╚██╔╝██║    ██╔══██║██║   ██║██╔══██╗
╚███╔███╔╝██║  ██║███████║██║ ╚═╝ ██║    ██║  ██║╚██████╔╝██████╔╝
 ╚══╝╚══╝ ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝    ╚═╝  ╚═╝ ╚═════╝ ╚═════╝
`

// Banner returns the styled ASCII banner printed by the help command.
func Banner() string {
	return bannerStyle.Render(bannerArt)
}
