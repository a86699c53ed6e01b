package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "" // browser/web
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconTrash   = "" // trash
	IconConfig  = "" // config
	IconHome    = "" // home
	IconZoom    = "" // magnifier plus
	IconCard    = "" // credit card
	IconAddress = "" // address book
	IconWindow  = "" // window
)
